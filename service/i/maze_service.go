package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// GenerateRequest describes a maze to build and how to render it.
type GenerateRequest struct {
	Width      int
	Height     int
	Seed       *int64             // nil picks a fresh seed
	Start      *maze.CellPosition // nil starts the carve at a random cell
	CellWidth  int                // 0 uses the service default
	CellHeight int                // 0 uses the service default
}

// Generated is a built maze with its rendering.
type Generated struct {
	ID    uuid.UUID
	Seed  int64
	Maze  *maze.Maze
	Lines []string
}

// MazeGenerator builds mazes for callers.
type MazeGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (*Generated, error)
	Daily(ctx context.Context, width, height int) (*Generated, error)
	Longest(ctx context.Context, width, height int, limit int64) ([]SeedScore, error)
}
