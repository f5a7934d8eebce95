package i

import "context"

// SeedScore pairs a maze seed with the diameter it produced.
type SeedScore struct {
	Seed     int64
	Diameter int
}

// SeedStore shares maze seeds and diameter records between server instances.
type SeedStore interface {
	// DailySeed returns the seed stored for day, storing newSeed() first if the day has none.
	// Concurrent callers for the same day all receive the same seed.
	DailySeed(ctx context.Context, day string, newSeed func() int64) (int64, error)

	// RecordDiameter adds seed to the board, keeping its longest recorded diameter.
	RecordDiameter(ctx context.Context, board string, seed int64, diameter int) error

	// Longest returns up to limit seeds from board, longest diameter first.
	Longest(ctx context.Context, board string, limit int64) ([]SeedScore, error)
}
