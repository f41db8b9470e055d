package game

import (
	"testing"

	"github.com/decker502/invaders/pkg/config"
)

func newTestLedger() *GameState {
	return NewGameState(config.LivesConfig{Initial: 3, Max: 5})
}

func TestGameState_Lives(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		gain      int
		lose      int
		wantLives int
	}{
		{"gain capped at max", 3, 5, 0, 5},
		{"lose saturates at zero", 3, 0, 10, 0},
		{"last alien with one life", 1, 1, 0, 2},
		{"gain then lose", 4, 1, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestLedger()
			gs.Lives = tt.start
			for i := 0; i < tt.gain; i++ {
				gs.GainLife()
			}
			for i := 0; i < tt.lose; i++ {
				gs.LoseLife()
			}
			if gs.Lives != tt.wantLives {
				t.Errorf("Lives = %d, want %d", gs.Lives, tt.wantLives)
			}
		})
	}
}

func TestGameState_GainLifeReportsCap(t *testing.T) {
	gs := newTestLedger()
	gs.Lives = 5
	if gs.GainLife() {
		t.Error("GainLife() at max should return false")
	}
}

func TestGameState_ScoreAndReset(t *testing.T) {
	gs := newTestLedger()
	gs.AddScore(30)
	gs.AddScore(300)
	gs.AddScore(-50)
	if gs.Score != 330 {
		t.Errorf("Score = %d, want 330", gs.Score)
	}

	gs.LoseLife()
	gs.Reset()
	if gs.Score != 0 || gs.Lives != 3 {
		t.Errorf("after Reset: score=%d lives=%d, want 0/3", gs.Score, gs.Lives)
	}
}

func TestGameState_RecordBest(t *testing.T) {
	gs := newTestLedger()

	gs.AddScore(100)
	if !gs.RecordBest() {
		t.Error("first game should set a new best score")
	}
	if !gs.AlreadyPlayed {
		t.Error("AlreadyPlayed should be set after a game")
	}

	gs.Reset()
	gs.AddScore(40)
	if gs.RecordBest() {
		t.Error("lower score should not replace the best score")
	}
	if gs.BestScore != 100 {
		t.Errorf("BestScore = %d, want 100", gs.BestScore)
	}
}
