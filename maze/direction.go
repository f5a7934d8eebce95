package maze

// Direction is one of the four compass directions a wall can face.
type Direction uint8

// Compass directions, ordered clockwise from North.
const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in enumeration order.
var Directions = [...]Direction{North, East, South, West}

var offsets = [...]CellPosition{
	North: {Row: -1, Col: 0},
	East:  {Row: 0, Col: 1},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
}

// Opposite returns the direction facing back: North↔South, East↔West.
func (d Direction) Opposite() Direction {
	return (d + 2) % Direction(len(Directions))
}

// Offset returns the unit (row, column) step taken when moving in d.
func (d Direction) Offset() (row, col int) {
	o := offsets[d]
	return o.Row, o.Col
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// DirectionFilter restricts neighbor lookup to the directions it accepts.
// A nil filter accepts every direction.
type DirectionFilter func(Direction) bool

// WallSet is the set of walls present around a cell.
type WallSet uint8

// allWalls has every direction present.
const allWalls WallSet = 1<<North | 1<<East | 1<<South | 1<<West

// Has reports whether the wall facing d is present.
func (w WallSet) Has(d Direction) bool {
	return w&(1<<d) != 0
}

// Len returns the number of walls present.
func (w WallSet) Len() int {
	n := 0
	for _, d := range Directions {
		if w.Has(d) {
			n++
		}
	}
	return n
}

// Directions returns the present walls in enumeration order.
func (w WallSet) Directions() []Direction {
	dirs := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if w.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (w WallSet) without(d Direction) WallSet {
	return w &^ (1 << d)
}
