package systems

import (
	"math"
	"testing"

	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/events"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/round"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/world"
)

func hitAlien(w *world.World, state *game.SimulationState, id ecs.EntityID) {
	a, _ := w.Aliens.Get(id)
	p, _ := w.Positions.Get(id)
	state.Events.AlienHits.Emit(events.AlienHit{Type: a.Type, Alien: id, Position: p.Vec()})
}

func TestHitSystem_ScoreValues(t *testing.T) {
	tests := []struct {
		alienType types.AlienType
		want      int
	}{
		{types.AlienYellow, 30},
		{types.AlienGreen, 20},
		{types.AlienRed, 10},
		{types.AlienUfo, 300},
	}

	for _, tt := range tests {
		t.Run(tt.alienType.String(), func(t *testing.T) {
			w := newTestWorld(t)
			state := newTestState(w, nil)
			entities.NewAlienEntity(w, types.AlienRed, 100, 300) // 保证编队不为空
			var id ecs.EntityID
			if tt.alienType == types.AlienUfo {
				id = entities.NewUfoEntity(w, entities.UfoSpawnFor(w, 0.9))
			} else {
				id = entities.NewAlienEntity(w, tt.alienType, 400, 300)
			}

			hitAlien(w, state, id)
			if _, ok := NewHitSystem(w, nopLogger).Update(state); ok {
				t.Error("no terminal outcome expected")
			}

			if state.Ledger.Score != tt.want {
				t.Errorf("score = %d, want %d", state.Ledger.Score, tt.want)
			}
			if w.EM.IsAlive(id) {
				t.Error("alien should be despawned")
			}
			if w.XpTexts.Count() != 1 {
				t.Error("expected an xp text")
			}
			if !containsClip(pendingClips(w), types.ClipInvaderKilled) {
				t.Error("expected invader killed sound")
			}
		})
	}
}

// 55 个外星人：先击杀 31 个红/绿外星人让剩余数降到 24，
// 再逐个击杀 11 个黄色外星人，周期应乘以 0.95^11
func TestHitSystem_AttritionSpeedUpScenario(t *testing.T) {
	w := newTestWorld(t)
	state := newTestState(w, nil)
	ids, _ := entities.NewAlienWave(w)
	sys := NewHitSystem(w, nopLogger)

	yellow := ids[:11]
	others := ids[11:]
	for _, id := range others[:31] {
		w.Despawn(id)
	}
	w.EM.RemoveMarkedEntities()
	if w.AliensRemaining() != 24 {
		t.Fatalf("setup: %d aliens remaining, want 24", w.AliensRemaining())
	}

	initial := state.Formation.Period()
	previous := initial
	for _, id := range yellow {
		hitAlien(w, state, id)
		sys.Update(state)
		if state.Formation.Period() >= previous {
			t.Fatalf("period did not decrease: %v -> %v", previous, state.Formation.Period())
		}
		previous = state.Formation.Period()
	}

	want := initial * math.Pow(0.95, 11)
	if math.Abs(state.Formation.Period()-want) > 1e-9 {
		t.Errorf("period = %v, want %v (≈0.561 × initial)", state.Formation.Period(), want)
	}
	if state.Ledger.Score != 11*30 {
		t.Errorf("score = %d, want 330", state.Ledger.Score)
	}
}

func TestHitSystem_NoSpeedUpAbove25(t *testing.T) {
	w := newTestWorld(t)
	state := newTestState(w, nil)
	ids, _ := entities.NewAlienWave(w)

	hitAlien(w, state, ids[0])
	NewHitSystem(w, nopLogger).Update(state)

	if state.Formation.Period() != w.Config.Aliens.TickDuration {
		t.Errorf("period changed with 54 aliens remaining: %v", state.Formation.Period())
	}
}

func TestHitSystem_LastAlienKilled(t *testing.T) {
	w := newTestWorld(t)
	state := newTestState(w, nil)
	state.Ledger.Lives = 1
	id := entities.NewAlienEntity(w, types.AlienRed, 100, 300)
	entities.NewUfoEntity(w, entities.UfoSpawnFor(w, 0.9)) // UFO 不计入剩余外星人

	hitAlien(w, state, id)
	outcome, ok := NewHitSystem(w, nopLogger).Update(state)

	if !ok || outcome != round.EventAliensKilled {
		t.Fatalf("outcome = %v/%v, want AliensKilled", outcome, ok)
	}
	if state.Ledger.Lives != 2 {
		t.Errorf("lives = %d, want 2", state.Ledger.Lives)
	}
}

func TestHitSystem_LastAlienKilledAtMaxLives(t *testing.T) {
	w := newTestWorld(t)
	state := newTestState(w, nil)
	state.Ledger.Lives = 5
	id := entities.NewAlienEntity(w, types.AlienRed, 100, 300)

	hitAlien(w, state, id)
	NewHitSystem(w, nopLogger).Update(state)

	if state.Ledger.Lives != 5 {
		t.Errorf("lives = %d, want 5 (capped)", state.Ledger.Lives)
	}
}

func TestHitSystem_PlayerHit(t *testing.T) {
	tests := []struct {
		name        string
		lives       int
		wantOutcome round.Event
		wantLives   int
	}{
		{"lives remain", 3, round.EventPlayerKilled, 2},
		{"last life", 1, round.EventGameOver, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			state := newTestState(w, nil)
			state.Ledger.Lives = tt.lives
			player := entities.NewPlayerEntity(w)

			// 同一 tick 两发激光命中，只扣一条命
			state.Events.PlayerHits.Emit(events.PlayerHit{Player: player})
			state.Events.PlayerHits.Emit(events.PlayerHit{Player: player})
			outcome, ok := NewHitSystem(w, nopLogger).Update(state)

			if !ok || outcome != tt.wantOutcome {
				t.Errorf("outcome = %v/%v, want %v", outcome, ok, tt.wantOutcome)
			}
			if state.Ledger.Lives != tt.wantLives {
				t.Errorf("lives = %d, want %d", state.Ledger.Lives, tt.wantLives)
			}
			if w.EM.IsAlive(player) {
				t.Error("player should be despawned")
			}
			if !containsClip(pendingClips(w), types.ClipExplosion) {
				t.Error("expected explosion sound")
			}
		})
	}
}

func TestHitSystem_OutcomePriority(t *testing.T) {
	w := newTestWorld(t)
	state := newTestState(w, nil)
	alien := entities.NewAlienEntity(w, types.AlienRed, 100, 300)
	player := entities.NewPlayerEntity(w)

	hitAlien(w, state, alien)
	state.Events.PlayerHits.Emit(events.PlayerHit{Player: player})
	outcome, _ := NewHitSystem(w, nopLogger).Update(state)
	if outcome != round.EventAliensKilled {
		t.Errorf("outcome = %v, want AliensKilled over PlayerKilled", outcome)
	}

	state.Events.GameOvers.Emit(events.GameOver{Reason: events.GameOverAlienLanded})
	entities.NewAlienEntity(w, types.AlienRed, 100, 300)
	state.Events.PlayerHits.Emit(events.PlayerHit{Player: entities.NewPlayerEntity(w)})
	outcome, _ = NewHitSystem(w, nopLogger).Update(state)
	if outcome != round.EventGameOver {
		t.Errorf("outcome = %v, want GameOver", outcome)
	}
}

func TestHitSystem_ShelterArmor(t *testing.T) {
	w := newTestWorld(t)
	state := newTestState(w, nil)
	shelter := entities.NewShelterEntity(w, 300, 150)
	s, _ := w.Shelters.Get(shelter)
	text := s.Text
	sys := NewHitSystem(w, nopLogger)

	for hit := 1; hit <= 20; hit++ {
		if !w.EM.IsAlive(shelter) {
			t.Fatalf("shelter despawned early after %d hits", hit-1)
		}
		state.Events.ShelterHits.Emit(events.ShelterHit{Shelter: shelter})
		sys.Update(state)

		if s.Armor != 100-5*hit {
			t.Fatalf("hit %d: armor = %d", hit, s.Armor)
		}
		if s.Armor < 0 {
			t.Fatalf("armor below zero: %d", s.Armor)
		}
	}

	if w.EM.IsAlive(shelter) || w.EM.IsAlive(text) {
		t.Error("shelter and its text should despawn when armor reaches 0")
	}

	// 已销毁的掩体再次被击中不产生任何效果
	state.Events.ShelterHits.Emit(events.ShelterHit{Shelter: shelter})
	sys.Update(state)
	if s.Armor != 0 {
		t.Errorf("armor = %d after destroyed shelter hit", s.Armor)
	}
}

func TestHitSystem_ArmorTextUpdated(t *testing.T) {
	w := newTestWorld(t)
	state := newTestState(w, nil)
	shelter := entities.NewShelterEntity(w, 300, 150)

	state.Events.ShelterHits.Emit(events.ShelterHit{Shelter: shelter})
	NewHitSystem(w, nopLogger).Update(state)

	s, _ := w.Shelters.Get(shelter)
	text, _ := w.ArmorTexts.Get(s.Text)
	if text.Text != "95" {
		t.Errorf("armor text = %q, want 95", text.Text)
	}
}
