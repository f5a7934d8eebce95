package i

// Logger is the levelled logger components write to.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
