package audio

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"snake-classic/game"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.4
)

// SoundType names the effects the game plays.
type SoundType int

const (
	SoundEat SoundType = iota
	SoundGameOver
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "gameover"
	}
	return "unknown"
}

// SoundManager plays game effects through the system speaker. Audio is
// optional: if the device can't be opened the manager stays silent and the
// game carries on.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	muted       bool
	logger      *slog.Logger

	// sink receives every effect to play; tests replace it.
	sink func(SoundType, beep.Streamer)
}

func NewSoundManager(logger *slog.Logger) *SoundManager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
		logger: logger,
	}
	sm.sink = sm.playOnSpeaker
	return sm
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetMuted silences or restores effects.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Play starts an effect. It never blocks on playback.
func (sm *SoundManager) Play(sound SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.muted {
		return
	}

	var streamer beep.Streamer
	switch sound {
	case SoundEat:
		streamer = CreateEatSound(sampleRate, sm.volume)
	case SoundGameOver:
		streamer = CreateGameOverSound(sampleRate, sm.volume)
	default:
		sm.logger.Warn("Unknown sound", "sound", int(sound))
		return
	}

	sm.sink(sound, streamer)
}

func (sm *SoundManager) playOnSpeaker(sound SoundType, s beep.Streamer) {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.logger.Debug("Playing sound", "sound", sound)
}

// OnStep maps tick results to effects: food eaten plays "eat", a collision
// plays "gameover".
func (sm *SoundManager) OnStep(result game.StepResult) {
	switch {
	case result.Collided:
		sm.Play(SoundGameOver)
	case result.AteFood:
		sm.Play(SoundEat)
	}
}

// Cleanup stops all sounds and closes the audio device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
