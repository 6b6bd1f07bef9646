package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// Command is a player action, independent of the front-end that read it.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdRestart
	CmdToggleWall
	CmdQuit
)

// Controller is the part of the game the controls drive.
type Controller interface {
	SetDirection(types.Direction)
	Reset()
	ToggleWall()
}

// Apply forwards cmd to c. It returns false when the player asked to quit.
func Apply(c Controller, cmd Command) bool {
	switch cmd {
	case CmdUp:
		c.SetDirection(types.Up)
	case CmdDown:
		c.SetDirection(types.Down)
	case CmdLeft:
		c.SetDirection(types.Left)
	case CmdRight:
		c.SetDirection(types.Right)
	case CmdRestart:
		c.Reset()
	case CmdToggleWall:
		c.ToggleWall()
	case CmdQuit:
		return false
	}
	return true
}

// hudText is the status line shown with the grid.
func hudText(snap game.Snapshot) string {
	best := snap.BestScore
	if snap.Score > best {
		best = snap.Score
	}
	walls := "off"
	if snap.WallEnabled {
		walls = "on"
	}
	return fmt.Sprintf("Score: %d  Best: %d  Avg: %.1f  Walls: %s", snap.Score, best, snap.AverageScore, walls)
}

// overlayLines is the centered message over a finished round.
func overlayLines(snap game.Snapshot) []string {
	if !snap.GameOver {
		return nil
	}
	if snap.Cleared {
		return []string{"You Win!", "Press R to Restart"}
	}
	return []string{"Game Over!", fmt.Sprintf("Hit the %s", causeText(snap)), "Press R to Restart"}
}

func causeText(snap game.Snapshot) string {
	if snap.Collision == manager.WallCollision {
		return "wall"
	}
	return "tail"
}
