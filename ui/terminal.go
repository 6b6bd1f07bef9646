package ui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-classic/game"
	"snake-classic/game/types"
)

const frameInterval = time.Second / 60

var (
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSnake    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead     = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleFood     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// canvas is the drawing surface; tcell.Screen satisfies it.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// screen is the part of tcell.Screen the terminal front-end drives.
type screen interface {
	canvas
	Init() error
	Fini()
	HideCursor()
	PollEvent() tcell.Event
	Clear()
	Show()
	Sync()
}

// Terminal renders the game with tcell. Each grid cell is two columns wide
// so cells look roughly square.
type Terminal struct {
	screen screen
}

func NewTerminal(s tcell.Screen) *Terminal {
	return &Terminal{screen: s}
}

// Run takes over the terminal until the player quits or ctx is done.
func (t *Terminal) Run(ctx context.Context, g *game.Game) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	t.screen.HideCursor()

	// Fini unblocks PollEvent, done unblocks a pending send.
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	defer func() {
		close(done)
		t.screen.Fini()
		wg.Wait()
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !Apply(g, keyCommand(ev.Key(), ev.Rune())) {
					return nil
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-ticker.C:
			t.screen.Clear()
			drawGame(t.screen, g.Snapshot())
			t.screen.Show()
		}
	}
}

func keyCommand(key tcell.Key, r rune) Command {
	switch key {
	case tcell.KeyUp:
		return CmdUp
	case tcell.KeyDown:
		return CmdDown
	case tcell.KeyLeft:
		return CmdLeft
	case tcell.KeyRight:
		return CmdRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyRune:
		switch r {
		case 'r', 'R':
			return CmdRestart
		case 'w', 'W':
			return CmdToggleWall
		case 'q', 'Q':
			return CmdQuit
		}
	}
	return CmdNone
}

// cellPos maps a grid cell to the left column and row of its on-screen
// glyph pair, inside the one-cell border.
func cellPos(p types.Point) (int, int) {
	return 1 + 2*p.X, 1 + p.Y
}

func drawGame(c canvas, snap game.Snapshot) {
	width := 2*snap.Grid.Width + 2
	height := snap.Grid.Height + 2

	// Solid border with walls on, dotted when the grid wraps.
	horizontal, vertical := '┄', '┆'
	if snap.WallEnabled {
		horizontal, vertical = '█', '█'
	}
	for x := 0; x < width; x++ {
		c.SetContent(x, 0, horizontal, nil, styleBorder)
		c.SetContent(x, height-1, horizontal, nil, styleBorder)
	}
	for y := 0; y < height; y++ {
		c.SetContent(0, y, vertical, nil, styleBorder)
		c.SetContent(width-1, y, vertical, nil, styleBorder)
	}

	if !snap.Cleared {
		x, y := cellPos(snap.Food)
		c.SetContent(x, y, '●', nil, styleFood)
	}

	for i, p := range snap.Snake {
		x, y := cellPos(p)
		style := styleSnake
		if i == 0 {
			style = styleHead
		}
		c.SetContent(x, y, '█', nil, style)
		c.SetContent(x+1, y, '█', nil, style)
	}

	drawText(c, 0, height, hudText(snap), styleHUD)

	lines := overlayLines(snap)
	top := height/2 - len(lines)/2
	for i, line := range lines {
		style := styleHUD
		if i == 0 {
			style = styleGameOver
		}
		drawText(c, (width-len([]rune(line)))/2, top+i, line, style)
	}
}

func drawText(c canvas, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		c.SetContent(x+i, y, r, nil, style)
	}
}
