// Package render draws mazes as text using heavy box-drawing characters.
package render

import (
	"errors"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

const (
	defaultCellWidth  = 5
	defaultCellHeight = 2
	defaultTerminus   = '●'

	horizontalWall = '━'
	verticalWall   = '┃'
	blank          = ' '
)

var ErrInvalidCellSize = errors.New("cell glyph block must be at least 1x1")

// arm flags for the wall segments meeting at a grid intersection.
const (
	armUp = 1 << iota
	armRight
	armDown
	armLeft
)

// corners maps every combination of wall arms to its intersection glyph.
var corners = [16]rune{
	0:                                   blank,
	armUp:                               '╹',
	armRight:                            '╺',
	armDown:                             '╻',
	armLeft:                             '╸',
	armUp | armDown:                     '┃',
	armLeft | armRight:                  '━',
	armUp | armRight:                    '┗',
	armRight | armDown:                  '┏',
	armDown | armLeft:                   '┓',
	armLeft | armUp:                     '┛',
	armUp | armRight | armDown:          '┣',
	armRight | armDown | armLeft:        '┳',
	armDown | armLeft | armUp:           '┫',
	armLeft | armUp | armRight:          '┻',
	armUp | armRight | armDown | armLeft: '╋',
}

// Options configures the glyph block drawn for each cell.
type Options struct {
	CellWidth     int  // Characters per cell, including the left wall column.
	CellHeight    int  // Lines per cell, including the top wall line.
	TerminusGlyph rune // Marker drawn at the centre of terminus cells.
}

// Text renders a maze into lines of box-drawing characters.
type Text struct {
	cells  [][]maze.Cell
	width  int
	height int
	opts   Options
}

// NewText prepares m for rendering. Zero option fields take their defaults.
func NewText(m *maze.Maze, opts *Options) (*Text, error) {
	o := Options{CellWidth: defaultCellWidth, CellHeight: defaultCellHeight, TerminusGlyph: defaultTerminus}
	if opts != nil {
		if opts.CellWidth != 0 {
			o.CellWidth = opts.CellWidth
		}
		if opts.CellHeight != 0 {
			o.CellHeight = opts.CellHeight
		}
		if opts.TerminusGlyph != 0 {
			o.TerminusGlyph = opts.TerminusGlyph
		}
	}
	if o.CellWidth < 1 || o.CellHeight < 1 {
		return nil, ErrInvalidCellSize
	}

	return &Text{
		cells:  m.Cells(),
		width:  m.Width(),
		height: m.Height(),
		opts:   o,
	}, nil
}

// horizontal reports a wall along the top edge of (row, col); row may equal the height.
func (t *Text) horizontal(row, col int) bool {
	if col < 0 || col >= t.width {
		return false
	}
	if row == t.height {
		return t.cells[row-1][col].Walls().Has(maze.South)
	}
	return t.cells[row][col].Walls().Has(maze.North)
}

// vertical reports a wall along the left edge of (row, col); col may equal the width.
func (t *Text) vertical(row, col int) bool {
	if row < 0 || row >= t.height {
		return false
	}
	if col == t.width {
		return t.cells[row][col-1].Walls().Has(maze.East)
	}
	return t.cells[row][col].Walls().Has(maze.West)
}

// corner picks the glyph for the intersection at the top-left of (row, col).
func (t *Text) corner(row, col int) rune {
	arms := 0
	if t.vertical(row-1, col) {
		arms |= armUp
	}
	if t.horizontal(row, col) {
		arms |= armRight
	}
	if t.vertical(row, col) {
		arms |= armDown
	}
	if t.horizontal(row, col-1) {
		arms |= armLeft
	}
	return corners[arms]
}

// wallLine draws the intersections and horizontal walls along the top of row.
func (t *Text) wallLine(row int) string {
	var line strings.Builder
	for col := 0; col < t.width; col++ {
		line.WriteRune(t.corner(row, col))
		fill := blank
		if t.horizontal(row, col) {
			fill = horizontalWall
		}
		line.WriteString(strings.Repeat(string(fill), t.opts.CellWidth-1))
	}
	line.WriteRune(t.corner(row, t.width))
	return line.String()
}

// bodyLine draws the vertical walls crossing row; marked puts terminus glyphs in the interiors.
func (t *Text) bodyLine(row int, marked bool) string {
	var line strings.Builder
	for col := 0; col <= t.width; col++ {
		if t.vertical(row, col) {
			line.WriteRune(verticalWall)
		} else {
			line.WriteRune(blank)
		}
		if col == t.width {
			break
		}

		interior := []rune(strings.Repeat(string(blank), t.opts.CellWidth-1))
		if marked && len(interior) > 0 && t.cells[row][col].IsTerminus() {
			interior[(len(interior)-1)/2] = t.opts.TerminusGlyph
		}
		line.WriteString(string(interior))
	}
	return line.String()
}

// Lines returns the rendered maze, one string per text line.
func (t *Text) Lines() []string {
	lines := make([]string, 0, t.height*t.opts.CellHeight+1)
	middle := (t.opts.CellHeight - 2) / 2
	for row := 0; row < t.height; row++ {
		lines = append(lines, t.wallLine(row))
		for i := 0; i < t.opts.CellHeight-1; i++ {
			lines = append(lines, t.bodyLine(row, i == middle))
		}
	}
	return append(lines, t.wallLine(t.height))
}

// String returns the rendered maze as newline-terminated lines.
func (t *Text) String() string {
	return strings.Join(t.Lines(), "\n") + "\n"
}
