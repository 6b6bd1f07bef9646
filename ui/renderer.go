package ui

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/game"
	"snake-classic/game/types"
)

const (
	hudFontSize     = 14
	titleFontSize   = 40
	subtextFontSize = 20
)

// rayKeys maps raylib key codes to commands.
var rayKeys = []struct {
	key int32
	cmd Command
}{
	{rl.KeyUp, CmdUp},
	{rl.KeyDown, CmdDown},
	{rl.KeyLeft, CmdLeft},
	{rl.KeyRight, CmdRight},
	{rl.KeyR, CmdRestart},
	{rl.KeyW, CmdToggleWall},
	{rl.KeyQ, CmdQuit},
}

// Renderer draws the game in a raylib window. raylib must be driven from
// the goroutine that created the window, so Run belongs on the main
// goroutine.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(grid types.Grid) *Renderer {
	return &Renderer{
		cellSize:     types.CellSize,
		screenWidth:  int32(grid.Width) * types.CellSize,
		screenHeight: int32(grid.Height) * types.CellSize,
	}
}

// Run opens the window and renders until it is closed, the player quits or
// ctx is done.
func (r *Renderer) Run(ctx context.Context, g *game.Game) error {
	rl.InitWindow(r.screenWidth, r.screenHeight, "Snake Game")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		for _, k := range rayKeys {
			if rl.IsKeyPressed(k.key) && !Apply(g, k.cmd) {
				return nil
			}
		}
		r.Draw(g.Snapshot())
	}
	return nil
}

func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.Black)

	// Grid lines
	for i := int32(0); i <= int32(snap.Grid.Width); i++ {
		rl.DrawLine(i*r.cellSize, 0, i*r.cellSize, r.screenHeight, rl.DarkGray)
	}
	for i := int32(0); i <= int32(snap.Grid.Height); i++ {
		rl.DrawLine(0, i*r.cellSize, r.screenWidth, i*r.cellSize, rl.DarkGray)
	}

	if !snap.Cleared {
		half := r.cellSize / 2
		x, y := r.cellOrigin(snap.Food)
		rl.DrawCircle(x+half, y+half, float32(half), rl.Red)
	}

	for i, p := range snap.Snake {
		x, y := r.cellOrigin(p)
		color := rl.Green
		if i == 0 {
			color = rl.Lime
		}
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
		rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.DarkGreen)
	}

	rl.DrawText(hudText(snap), 10, 10, hudFontSize, rl.White)

	lines := overlayLines(snap)
	if len(lines) == 0 {
		return
	}
	y := r.screenHeight/2 - titleFontSize
	for i, line := range lines {
		size := int32(subtextFontSize)
		color := rl.White
		if i == 0 {
			size = titleFontSize
			color = rl.Red
		}
		width := rl.MeasureText(line, size)
		rl.DrawText(line, (r.screenWidth-width)/2, y, size, color)
		y += size + 8
	}
}

func (r *Renderer) cellOrigin(p types.Point) (int32, int32) {
	return int32(p.X) * r.cellSize, int32(p.Y) * r.cellSize
}
