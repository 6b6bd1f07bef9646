package game

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// StepResult tells the presentation layer what happened during one tick.
type StepResult struct {
	Moved        bool
	AteFood      bool
	Collided     bool
	Collision    manager.CollisionType
	Cleared      bool // the snake filled the grid
	SpeedChanged bool
	Score        int
	Speed        time.Duration
	RoundID      string
}

// Snapshot is a copy of the game state for one render frame.
type Snapshot struct {
	RoundID      string
	Grid         types.Grid
	Snake        []types.Point
	Food         types.Point
	Direction    types.Direction
	Score        int
	Speed        time.Duration
	WallEnabled  bool
	GameOver     bool
	Collision    manager.CollisionType
	Cleared      bool
	BestScore    int
	AverageScore float64
	Rounds       int
}

// Game owns the whole simulation. Every exported method holds mu for its
// full duration, so input handlers and the tick driver may call them from
// different goroutines.
type Game struct {
	mu sync.Mutex

	cfg    Config
	logger *slog.Logger
	now    func() time.Time

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	stats        *SessionStats

	wallEnabled   bool
	gameOver      bool
	cleared       bool
	lastCollision manager.CollisionType
	roundID       string
	startTime     time.Time
}

// NewGame builds a game and starts the first round. rng drives food
// placement; pass a seeded source for reproducible games.
func NewGame(cfg Config, rng manager.Source, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g := &Game{
		cfg:          cfg,
		logger:       logger,
		now:          time.Now,
		collisionMgr: manager.NewCollisionManager(cfg.Grid),
		foodMgr:      manager.NewFoodManager(cfg.Grid, rng),
		stateMgr:     manager.NewStateManager(cfg.Speed),
		stats:        NewSessionStats(),
		wallEnabled:  cfg.WallEnabled,
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
	return g
}

// Reset starts a new round. Wall mode is a player preference and survives.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.gameOver && g.roundID != "" {
		g.endRound()
	}
	g.reset()
}

func (g *Game) reset() {
	g.snake = entity.NewSnake(g.cfg.Start, g.cfg.StartDirection)
	g.stateMgr.Reset()
	g.gameOver = false
	g.cleared = false
	g.lastCollision = manager.NoCollision
	g.roundID = uuid.New().String()
	g.startTime = g.now()

	if _, err := g.foodMgr.Place(g.snake); err != nil {
		g.logger.Error("Could not place food", "round", g.roundID, "error", err)
	}

	g.logger.Info("Round started",
		"round", g.roundID,
		"walls", g.wallEnabled,
		"food", g.foodMgr.Food())
}

// SetDirection queues a new heading. A request for the exact reverse of the
// current heading is dropped. Requests are accepted after game over too;
// they just have no effect until the next round.
func (g *Game) SetDirection(dir types.Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.snake.SetDirection(dir) {
		g.logger.Debug("Direction changed", "round", g.roundID, "direction", dir)
	}
}

func (g *Game) ToggleWall() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.wallEnabled = !g.wallEnabled
	g.logger.Info("Wall mode toggled", "round", g.roundID, "walls", g.wallEnabled)
}

// Step advances the game by one tick.
func (g *Game) Step() StepResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameOver {
		return StepResult{}
	}

	result := StepResult{RoundID: g.roundID}

	newHead, collision := g.collisionMgr.NextHead(g.snake, g.wallEnabled)
	if collision != manager.NoCollision {
		g.gameOver = true
		g.lastCollision = collision
		g.endRound()

		result.Collided = true
		result.Collision = collision
		result.Score = g.stateMgr.GetScore()
		result.Speed = g.stateMgr.GetSpeed()
		g.logger.Info("Round over",
			"round", g.roundID,
			"collision", collision,
			"score", result.Score)
		return result
	}

	g.snake.Move(newHead)
	result.Moved = true

	if g.collisionMgr.IsFoodCollision(newHead, g.foodMgr.Food()) {
		result.AteFood = true
		result.SpeedChanged = g.stateMgr.AddPoint()

		if _, err := g.foodMgr.Place(g.snake); err != nil {
			if !errors.Is(err, manager.ErrGridFull) {
				g.logger.Error("Could not place food", "round", g.roundID, "error", err)
			}
			g.gameOver = true
			g.cleared = true
			g.endRound()
			result.Cleared = true
			g.logger.Info("Grid cleared", "round", g.roundID, "score", g.stateMgr.GetScore())
		}
	} else {
		g.snake.RemoveTail()
	}

	result.Score = g.stateMgr.GetScore()
	result.Speed = g.stateMgr.GetSpeed()
	return result
}

// endRound files the current round with the session stats.
func (g *Game) endRound() {
	g.stats.AddRound(RoundRecord{
		ID:        g.roundID,
		StartTime: g.startTime,
		EndTime:   g.now(),
		Score:        g.stateMgr.GetScore(),
		Collision:    g.lastCollision.String(),
		Cleared:      g.cleared,
	})
}

// Speed returns the interval until the next tick.
func (g *Game) Speed() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateMgr.GetSpeed()
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Snapshot{
		RoundID:      g.roundID,
		Grid:         g.cfg.Grid,
		Snake:        g.snake.Cells(),
		Food:         g.foodMgr.Food(),
		Direction:    g.snake.Direction,
		Score:        g.stateMgr.GetScore(),
		Speed:        g.stateMgr.GetSpeed(),
		WallEnabled:  g.wallEnabled,
		GameOver:     g.gameOver,
		Collision:    g.lastCollision,
		Cleared:      g.cleared,
		BestScore:    g.stats.GetMaxScore(),
		AverageScore: g.stats.GetAverageScore(),
		Rounds:       g.stats.GetGamesPlayed(),
	}
}

// Stats returns the records of every finished round in this session.
func (g *Game) Stats() []RoundRecord {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stats.GetRounds()
}

// Summary aggregates the finished rounds of this session.
func (g *Game) Summary() SessionSummary {
	g.mu.Lock()
	defer g.mu.Unlock()

	return SessionSummary{
		Rounds:          g.stats.GetGamesPlayed(),
		BestScore:       g.stats.GetMaxScore(),
		AverageScore:    g.stats.GetAverageScore(),
		MedianScore:     g.stats.GetMedianScore(),
		AverageDuration: g.stats.GetAverageDuration(),
	}
}
