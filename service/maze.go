package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 100
	defaultCellWidth    = 5
	defaultCellHeight   = 2
	dayLayout           = "2006-01-02"
	boardKeyFmt         = "%dx%d"
)

var (
	ErrDimensionTooLarge = errors.New("maze dimension exceeds the configured maximum")
	ErrNoSeedStore       = errors.New("no seed store configured")
	ErrInvalidLimit      = errors.New("limit must be positive")
)

// Options configures a MazeService.
type Options struct {
	MaxDimension int
	CellWidth    int
	CellHeight   int
	Now          func() time.Time
	NewSeed      func() int64
}

// MazeService builds and renders mazes, sharing seeds and diameter records through a SeedStore.
type MazeService struct {
	seeds  i.SeedStore
	logger i.Logger
	opts   *Options
}

var _ i.MazeGenerator = &MazeService{}

// NewMazeService creates a MazeService. A nil store disables the daily maze and the leaderboard.
func NewMazeService(store i.SeedStore, logger i.Logger, opts *Options) (*MazeService, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	if opts.CellWidth <= 0 {
		opts.CellWidth = defaultCellWidth
	}

	if opts.CellHeight <= 0 {
		opts.CellHeight = defaultCellHeight
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.NewSeed == nil {
		opts.NewSeed = func() int64 { return time.Now().UnixNano() }
	}

	return &MazeService{
		seeds:  store,
		logger: logger,
		opts:   opts,
	}, nil
}

// Generate builds the requested maze, renders it and records its diameter.
func (s *MazeService) Generate(ctx context.Context, req i.GenerateRequest) (*i.Generated, error) {
	if max(req.Width, req.Height) > s.opts.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, req.Width, req.Height, s.opts.MaxDimension)
	}

	seed := s.opts.NewSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	m, err := maze.Build(req.Width, req.Height, rand.New(rand.NewSource(seed)), &maze.Options{Start: req.Start})
	if err != nil {
		return nil, err
	}

	cellWidth, cellHeight := s.opts.CellWidth, s.opts.CellHeight
	if req.CellWidth != 0 {
		cellWidth = req.CellWidth
	}
	if req.CellHeight != 0 {
		cellHeight = req.CellHeight
	}
	text, err := render.NewText(m, &render.Options{CellWidth: cellWidth, CellHeight: cellHeight})
	if err != nil {
		return nil, err
	}

	generated := &i.Generated{
		ID:    uuid.New(),
		Seed:  seed,
		Maze:  m,
		Lines: text.Lines(),
	}
	s.logger.Info(fmt.Sprintf("Built maze: ID=%s Size=%dx%d Seed=%d Diameter=%d", generated.ID, m.Width(), m.Height(), seed, m.Diameter()))

	if s.seeds != nil {
		if err := s.seeds.RecordDiameter(ctx, boardKey(m.Width(), m.Height()), seed, m.Diameter()); err != nil {
			s.logger.Warning(fmt.Sprintf("Recording diameter for seed %d: %s", seed, err))
		}
	}

	return generated, nil
}

// Daily builds the maze of the current UTC day for the given size.
// Every caller on the same day gets the same seed.
func (s *MazeService) Daily(ctx context.Context, width, height int) (*i.Generated, error) {
	if s.seeds == nil {
		return nil, ErrNoSeedStore
	}

	day := s.opts.Now().UTC().Format(dayLayout)
	seed, err := s.seeds.DailySeed(ctx, day, s.opts.NewSeed)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Fetching daily seed for %s: %s", day, err))
		return nil, fmt.Errorf("daily seed: %w", err)
	}

	return s.Generate(ctx, i.GenerateRequest{Width: width, Height: height, Seed: &seed})
}

// Longest returns the recorded seeds with the longest diameters for the given size.
func (s *MazeService) Longest(ctx context.Context, width, height int, limit int64) ([]i.SeedScore, error) {
	if s.seeds == nil {
		return nil, ErrNoSeedStore
	}

	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	return s.seeds.Longest(ctx, boardKey(width, height), limit)
}

func boardKey(width, height int) string {
	return fmt.Sprintf(boardKeyFmt, width, height)
}
