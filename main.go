package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"snake-classic/audio"
	"snake-classic/game"
	"snake-classic/ui"
)

type options struct {
	ui      string
	seed    uint64
	mute    bool
	logFile string
	debug   bool
}

// frontend draws the game and feeds player input back into it. Run blocks
// until the player quits or ctx is done.
type frontend interface {
	Run(ctx context.Context, g *game.Game) error
}

func main() {
	var opts options
	flag.StringVar(&opts.ui, "ui", "raylib", "Front-end: raylib or terminal")
	flag.Uint64Var(&opts.seed, "seed", 0, "Seed for food placement (0 picks one from the clock)")
	flag.BoolVar(&opts.mute, "mute", false, "Disable sound effects")
	flag.StringVar(&opts.logFile, "log", "", "Write logs to this file")
	flag.BoolVar(&opts.debug, "debug", false, "Log every tick")
	flag.Parse()

	logger, closeLog, err := newLogger(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(opts, logger); err != nil {
		logger.Error("Exiting", "error", err)
		closeLog()
		os.Exit(1)
	}
}

// newLogger picks the log destination. The terminal front-end owns the tty,
// so without -log its logs are dropped.
func newLogger(opts options) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case opts.logFile != "":
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case opts.ui == "terminal":
		w = io.Discard
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}

func newFrontend(opts options, cfg game.Config) (frontend, error) {
	switch opts.ui {
	case "raylib":
		return ui.NewRenderer(cfg.Grid), nil
	case "terminal":
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create terminal screen: %w", err)
		}
		return ui.NewTerminal(screen), nil
	}
	return nil, fmt.Errorf("unknown front-end %q", opts.ui)
}

func run(opts options, logger *slog.Logger) error {
	cfg := game.DefaultConfig()

	front, err := newFrontend(opts, cfg)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("Starting", "ui", opts.ui, "seed", seed)

	g := game.NewGame(cfg, rand.New(rand.NewSource(seed)), logger)

	sounds := audio.NewSoundManager(logger)
	sounds.SetMuted(opts.mute)
	if !opts.mute {
		if err := sounds.Initialize(); err != nil {
			logger.Warn("Sound disabled", "error", err)
		}
	}
	defer sounds.Cleanup()

	driver := game.NewDriver(g, logger, sounds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg.Go(func() error {
		return driver.Run(ctx)
	})

	// The front-end stays on the main goroutine; raylib requires it.
	frontErr := front.Run(ctx, g)
	cancel()

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	for _, r := range g.Stats() {
		logger.Debug("Round",
			"round", r.ID,
			"score", r.Score,
			"collision", r.Collision,
			"cleared", r.Cleared,
			"duration", r.Duration())
	}

	sum := g.Summary()
	logger.Info("Session finished",
		"rounds", sum.Rounds,
		"best", sum.BestScore,
		"average", sum.AverageScore,
		"median", sum.MedianScore,
		"avg_duration", sum.AverageDuration,
		"ticks", driver.Ticks())

	return frontErr
}
