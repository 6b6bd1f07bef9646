package manager

import "time"

// SpeedConfig describes how the tick interval shrinks as the score grows.
type SpeedConfig struct {
	Initial time.Duration
	Min     time.Duration
	Step    time.Duration
	Every   int
}

// StateManager tracks the score and tick interval of the current round.
type StateManager struct {
	cfg   SpeedConfig
	score int
	speed time.Duration
}

func NewStateManager(cfg SpeedConfig) *StateManager {
	sm := &StateManager{cfg: cfg}
	sm.Reset()
	return sm
}

func (sm *StateManager) Reset() {
	sm.score = 0
	sm.speed = sm.cfg.Initial
}

// AddPoint records one eaten food. Every cfg.Every points the interval drops
// by cfg.Step, never below cfg.Min. It reports whether the speed changed.
func (sm *StateManager) AddPoint() bool {
	sm.score++
	if sm.cfg.Every <= 0 || sm.score%sm.cfg.Every != 0 || sm.speed <= sm.cfg.Min {
		return false
	}
	sm.speed -= sm.cfg.Step
	if sm.speed < sm.cfg.Min {
		sm.speed = sm.cfg.Min
	}
	return true
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetSpeed() time.Duration {
	return sm.speed
}
