package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/types"
)

func TestPlayerSystem_Movement(t *testing.T) {
	tests := []struct {
		name  string
		held  heldKeys
		dt    float64
		wantX float64
	}{
		{"idle", heldKeys{}, 1, 400},
		{"left", heldKeys{types.ActionMoveLeft: true}, 0.5, 250},
		{"right", heldKeys{types.ActionMoveRight: true}, 0.5, 550},
		{"left wins over right", heldKeys{types.ActionMoveLeft: true, types.ActionMoveRight: true}, 0.5, 250},
		{"clamped left", heldKeys{types.ActionMoveLeft: true}, 10, 30},
		{"clamped right", heldKeys{types.ActionMoveRight: true}, 10, 770},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			id := entities.NewPlayerEntity(w)
			NewPlayerSystem(w, nopLogger).Update(tt.dt, tt.held)

			pos, _ := w.Positions.Get(id)
			if pos.X != tt.wantX {
				t.Errorf("x = %v, want %v", pos.X, tt.wantX)
			}
		})
	}
}

func TestPlayerSystem_SingleShot(t *testing.T) {
	w := newTestWorld(t)
	entities.NewPlayerEntity(w)
	sys := NewPlayerSystem(w, nopLogger)
	fire := heldKeys{types.ActionFire: true}

	for i := 0; i < 10; i++ {
		sys.Update(testDT, fire)
		if n := len(w.PlayerLasers()); n != 1 {
			t.Fatalf("tick %d: %d player lasers, want 1", i, n)
		}
	}

	clips := pendingClips(w)
	if len(clips) != 1 || clips[0] != types.ClipShoot {
		t.Errorf("expected a single shoot sound, got %v", clips)
	}
}

func TestPlayerSystem_NoPlayerIsNoop(t *testing.T) {
	w := newTestWorld(t)
	NewPlayerSystem(w, nopLogger).Update(testDT, heldKeys{types.ActionFire: true})
	if len(w.PlayerLasers()) != 0 {
		t.Error("no laser expected without a player")
	}
}
