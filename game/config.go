package game

import (
	"time"

	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// Config holds the fixed parameters of a game. They are not meant to change
// while the program runs; DefaultConfig is what the binary uses.
type Config struct {
	Grid           types.Grid
	Start          types.Point
	StartDirection types.Direction
	Speed          manager.SpeedConfig
	WallEnabled    bool // initial wall mode, kept across restarts afterwards
}

func DefaultConfig() Config {
	return Config{
		Grid:           types.Grid{Width: types.GridWidth, Height: types.GridHeight},
		Start:          types.Point{X: 5, Y: 5},
		StartDirection: types.Right,
		Speed: manager.SpeedConfig{
			Initial: 100 * time.Millisecond,
			Min:     20 * time.Millisecond,
			Step:    10 * time.Millisecond,
			Every:   types.SpeedUpEvery,
		},
		WallEnabled: true,
	}
}
