package game

import (
	"sort"
	"time"
)

// RoundRecord describes one finished round.
type RoundRecord struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Collision string // "none" when the round was restarted or cleared
	Cleared   bool
}

// Duration is how long the round lasted.
func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// SessionSummary is the aggregate view of a session's finished rounds.
type SessionSummary struct {
	Rounds          int
	BestScore       int
	AverageScore    float64
	MedianScore     float64
	AverageDuration time.Duration
}

// SessionStats collects the rounds played since the program started. It
// lives in memory only and is guarded by the owning Game's lock.
type SessionStats struct {
	rounds []RoundRecord
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		rounds: make([]RoundRecord, 0),
	}
}

func (s *SessionStats) AddRound(r RoundRecord) {
	s.rounds = append(s.rounds, r)
}

// GetRounds returns a copy of the recorded rounds, oldest first.
func (s *SessionStats) GetRounds() []RoundRecord {
	rounds := make([]RoundRecord, len(s.rounds))
	copy(rounds, s.rounds)
	return rounds
}

func (s *SessionStats) GetGamesPlayed() int {
	return len(s.rounds)
}

func (s *SessionStats) GetMaxScore() int {
	maxScore := 0
	for _, r := range s.rounds {
		if r.Score > maxScore {
			maxScore = r.Score
		}
	}
	return maxScore
}

func (s *SessionStats) GetAverageScore() float64 {
	if len(s.rounds) == 0 {
		return 0
	}

	total := 0
	for _, r := range s.rounds {
		total += r.Score
	}
	return float64(total) / float64(len(s.rounds))
}

// GetMedianScore returns the median round score.
func (s *SessionStats) GetMedianScore() float64 {
	if len(s.rounds) == 0 {
		return 0
	}

	scores := make([]int, len(s.rounds))
	for i, r := range s.rounds {
		scores[i] = r.Score
	}
	sort.Ints(scores)

	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (s *SessionStats) GetAverageDuration() time.Duration {
	if len(s.rounds) == 0 {
		return 0
	}

	var total time.Duration
	for _, r := range s.rounds {
		total += r.Duration()
	}
	return total / time.Duration(len(s.rounds))
}
