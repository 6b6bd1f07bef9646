package game

import (
	"testing"
	"time"

	"snake-classic/game/types"
)

func TestSessionStats(t *testing.T) {
	s := NewSessionStats()
	if s.GetGamesPlayed() != 0 || s.GetMaxScore() != 0 || s.GetAverageScore() != 0 || s.GetMedianScore() != 0 {
		t.Fatal("Empty stats should report zeros")
	}

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, score := range []int{3, 9, 1, 7} {
		s.AddRound(RoundRecord{
			ID:        string(rune('a' + i)),
			StartTime: start,
			EndTime:   start.Add(time.Duration(i+1) * time.Second),
			Score:     score,
		})
	}

	if got := s.GetGamesPlayed(); got != 4 {
		t.Errorf("GamesPlayed = %d, want 4", got)
	}
	if got := s.GetMaxScore(); got != 9 {
		t.Errorf("MaxScore = %d, want 9", got)
	}
	if got := s.GetAverageScore(); got != 5 {
		t.Errorf("AverageScore = %v, want 5", got)
	}
	if got := s.GetMedianScore(); got != 5 {
		t.Errorf("MedianScore = %v, want 5", got)
	}
	if got := s.GetAverageDuration(); got != 2500*time.Millisecond {
		t.Errorf("AverageDuration = %v, want 2.5s", got)
	}

	rounds := s.GetRounds()
	rounds[0].Score = 100
	if s.GetMaxScore() != 9 {
		t.Error("GetRounds must return a copy")
	}
}

func TestGameRecordsFinishedRounds(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	g.Reset()

	// Run straight into the right wall.
	for !g.Snapshot().GameOver {
		g.Step()
	}

	rounds := g.Stats()
	// The round restarted by Reset above plus the one that hit the wall.
	if len(rounds) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(rounds))
	}
	last := rounds[1]
	if last.Collision != "wall" {
		t.Errorf("Collision = %q, want wall", last.Collision)
	}
	if last.ID != g.Snapshot().RoundID {
		t.Error("Last record should belong to the current round")
	}
	if last.Duration() <= 0 {
		t.Errorf("Expected positive duration, got %v", last.Duration())
	}
}

func TestSummaryAggregatesRounds(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	g.Reset()
	setWall(g, true)

	// Two meals along the right edge, then into the wall.
	setState(t, g, types.Right, types.Point{X: 28, Y: 5}, types.Point{X: 27, Y: 5})
	g.Step()
	g.mu.Lock()
	placeFood(t, g, types.Point{X: 29, Y: 5})
	g.mu.Unlock()
	g.Step()
	if res := g.Step(); !res.Collided || res.Score != 2 {
		t.Fatalf("Expected a wall collision with score 2, got %+v", res)
	}

	// Abandon a scoreless round.
	g.Reset()
	g.Reset()

	sum := g.Summary()
	// The first round abandoned by Reset, the scoring one, the abandoned one.
	if sum.Rounds != 3 || sum.BestScore != 2 {
		t.Fatalf("Summary = %+v, want 3 rounds best 2", sum)
	}
	if want := 2.0 / 3; sum.AverageScore != want {
		t.Errorf("AverageScore = %v, want %v", sum.AverageScore, want)
	}
	if sum.MedianScore != 0 {
		t.Errorf("MedianScore = %v, want 0", sum.MedianScore)
	}
	if sum.AverageDuration <= 0 {
		t.Errorf("Expected positive average duration, got %v", sum.AverageDuration)
	}

	snap := g.Snapshot()
	if snap.AverageScore != sum.AverageScore || snap.BestScore != 2 || snap.Rounds != 3 {
		t.Errorf("Snapshot stats = avg %v best %d rounds %d", snap.AverageScore, snap.BestScore, snap.Rounds)
	}
}
