// Command textmaze prints a random perfect maze to the terminal.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
)

func main() {
	width := flag.Int("width", config.Envs.MazeWidth, "maze width in cells")
	height := flag.Int("height", config.Envs.MazeHeight, "maze height in cells")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	cellWidth := flag.Int("cell-width", config.Envs.CellWidth, "characters per cell")
	cellHeight := flag.Int("cell-height", config.Envs.CellHeight, "lines per cell")
	fixedStart := flag.Bool("fixed-start", false, "start carving at the top-left cell")
	flag.Parse()

	appLogger, _ := logger.New("TEXTMAZE", config.ColorMagenta, os.Stderr)

	opts := &maze.Options{}
	if *fixedStart {
		opts.Start = &maze.CellPosition{Row: 0, Col: 0}
	}

	m, err := maze.Build(*width, *height, rand.New(rand.NewSource(*seed)), opts)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Building maze: %v", err))
		os.Exit(1)
	}

	text, err := render.NewText(m, &render.Options{CellWidth: *cellWidth, CellHeight: *cellHeight})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Rendering maze: %v", err))
		os.Exit(1)
	}

	appLogger.With("seed", *seed).With("diameter", m.Diameter()).Info("Maze built")
	for _, line := range text.Lines() {
		fmt.Println(line)
	}
}
