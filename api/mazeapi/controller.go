package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	defaultLongestLimit = 10
	storeTimeout        = 500 * time.Millisecond
)

// MazeController serves generated mazes.
type MazeController struct {
	generator i.MazeGenerator
}

// NewMazeController initializes a MazeController.
func NewMazeController(g i.MazeGenerator) (*MazeController, error) {
	if g == nil {
		return nil, errors.New("maze generator is required")
	}
	return &MazeController{generator: g}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", mc.generate)
		mazes.GET("/daily", mc.daily)
		mazes.GET("/longest", mc.longest)
	}
}

// generate builds a maze from the query parameters.
func (mc *MazeController) generate(ctx *gin.Context) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := i.GenerateRequest{
		Width:      query.Width,
		Height:     query.Height,
		Seed:       query.Seed,
		CellWidth:  query.CellWidth,
		CellHeight: query.CellHeight,
	}
	if query.StartRow != nil || query.StartCol != nil {
		if query.StartRow == nil || query.StartCol == nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "start_row and start_col must be given together"})
			return
		}
		req.Start = &maze.CellPosition{Row: *query.StartRow, Col: *query.StartCol}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	generated, err := mc.generator.Generate(timeoutCtx, req)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	respond(ctx, query.Format, generated)
}

// daily serves the maze of the day.
func (mc *MazeController) daily(ctx *gin.Context) {
	var query DailyQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	generated, err := mc.generator.Daily(timeoutCtx, query.Width, query.Height)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	respond(ctx, query.Format, generated)
}

// longest lists the seeds with the longest diameters for a size.
func (mc *MazeController) longest(ctx *gin.Context) {
	var query LongestQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if query.Limit == 0 {
		query.Limit = defaultLongestLimit
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	scores, err := mc.generator.Longest(timeoutCtx, query.Width, query.Height, query.Limit)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	response := make([]SeedScoreResponse, 0, len(scores))
	for _, s := range scores {
		response = append(response, SeedScoreResponse{Seed: s.Seed, Diameter: s.Diameter})
	}
	ctx.JSON(http.StatusOK, response)
}

func respond(ctx *gin.Context, format string, g *i.Generated) {
	if format == "text" {
		ctx.String(http.StatusOK, strings.Join(g.Lines, "\n")+"\n")
		return
	}

	termini := make([]Position, 0, 2)
	for _, c := range g.Maze.Termini() {
		termini = append(termini, Position{Row: c.Row(), Col: c.Col()})
	}

	ctx.JSON(http.StatusOK, &MazeResponse{
		ID:       g.ID,
		Width:    g.Maze.Width(),
		Height:   g.Maze.Height(),
		Seed:     g.Seed,
		Termini:  termini,
		Diameter: g.Maze.Diameter(),
		Lines:    g.Lines,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrStartOutOfBounds),
		errors.Is(err, service.ErrDimensionTooLarge),
		errors.Is(err, service.ErrInvalidLimit):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNoSeedStore):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
