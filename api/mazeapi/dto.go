// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import "github.com/google/uuid"

// MazeQuery is the query string of a maze generation request.
type MazeQuery struct {
	Width      int    `form:"width" binding:"required,min=1"`
	Height     int    `form:"height" binding:"required,min=1"`
	Seed       *int64 `form:"seed"`
	StartRow   *int   `form:"start_row" binding:"omitempty,min=0"`
	StartCol   *int   `form:"start_col" binding:"omitempty,min=0"`
	CellWidth  int    `form:"cell_width" binding:"omitempty,min=1,max=16"`
	CellHeight int    `form:"cell_height" binding:"omitempty,min=1,max=16"`
	Format     string `form:"format" binding:"omitempty,oneof=json text"`
}

// DailyQuery is the query string of a daily maze request.
type DailyQuery struct {
	Width  int    `form:"width" binding:"required,min=1"`
	Height int    `form:"height" binding:"required,min=1"`
	Format string `form:"format" binding:"omitempty,oneof=json text"`
}

// LongestQuery is the query string of a leaderboard request.
type LongestQuery struct {
	Width  int   `form:"width" binding:"required,min=1"`
	Height int   `form:"height" binding:"required,min=1"`
	Limit  int64 `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Position is a cell coordinate in a response.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MazeResponse describes a generated maze.
type MazeResponse struct {
	ID       uuid.UUID  `json:"id"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Seed     int64      `json:"seed"`
	Termini  []Position `json:"termini"`
	Diameter int        `json:"diameter"`
	Lines    []string   `json:"lines"`
}

// SeedScoreResponse is one leaderboard entry.
type SeedScoreResponse struct {
	Seed     int64 `json:"seed"`
	Diameter int   `json:"diameter"`
}
