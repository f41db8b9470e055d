package sim

import (
	"testing"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/round"
	"github.com/decker502/invaders/pkg/types"
)

const dt = 1.0 / 60

// constant 永远返回同一个随机数
func constant(v float64) func() float64 {
	return func() float64 { return v }
}

// newTestSim 默认随机数 0.99：外星人不开火，UFO 不出现
func newTestSim(t *testing.T, random func() float64) (*Simulation, *RecordingAudio, *ScriptedInput) {
	t.Helper()
	cfg, err := config.LoadGameConfig("../../data/game.yaml")
	if err != nil {
		t.Fatalf("load game config: %v", err)
	}
	if random == nil {
		random = constant(0.99)
	}
	audio := &RecordingAudio{}
	s, err := New(cfg, Options{Audio: audio, Random: random})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s, audio, NewScriptedInput()
}

func step(s *Simulation, in *ScriptedInput, n int) {
	for i := 0; i < n; i++ {
		s.Tick(dt, in)
		in.EndTick()
	}
}

// runUntil 推进直到条件成立，最多 limit 个 tick，返回用掉的 tick 数
func runUntil(t *testing.T, s *Simulation, in *ScriptedInput, limit int, cond func() bool) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		step(s, in, 1)
		if cond() {
			return i
		}
	}
	t.Fatalf("condition not reached within %d ticks (state %s)", limit, s.machine)
	return 0
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	if _, err := New(nil, Options{}); err == nil {
		t.Error("expected error for nil config")
	}
	cfg := &config.GameConfig{}
	if _, err := New(cfg, Options{}); err == nil {
		t.Error("expected error for empty config")
	}
}

func TestSimulation_StartsInMenu(t *testing.T) {
	s, _, in := newTestSim(t, nil)
	step(s, in, 10)

	if s.Mode() != round.ModeMenu {
		t.Errorf("mode = %s, want Menu", s.Mode())
	}
	if n := len(s.Snapshot().Entities); n != 0 {
		t.Errorf("menu has %d entities, want 0", n)
	}
}

func TestSimulation_StartGameResetsRound(t *testing.T) {
	s, audio, in := newTestSim(t, nil)
	s.State().Ledger.Score = 500
	s.StartGame()
	step(s, in, 1)

	snap := s.Snapshot()
	tests := []struct {
		kind types.SpriteKind
		want int
	}{
		{types.SpritePlayer, 1},
		{types.SpriteAlien, 55},
		{types.SpriteShelter, 4},
		{types.SpriteFloor, 1},
		{types.SpriteText, 4},
		{types.SpriteUfo, 0},
		{types.SpriteLaser, 0},
	}
	for _, tt := range tests {
		if got := snap.Count(tt.kind); got != tt.want {
			t.Errorf("%s count = %d, want %d", tt.kind, got, tt.want)
		}
	}

	if snap.Score != 0 || snap.Lives != 3 || snap.AliensRemaining != 55 {
		t.Errorf("ledger = score %d lives %d aliens %d, want 0/3/55", snap.Score, snap.Lives, snap.AliensRemaining)
	}
	if s.Mode() != round.ModeInGame || s.Phase() != round.PhaseRunning {
		t.Errorf("state = %s, want InGame/Running", s.machine)
	}
	if audio.Count(types.ClipMusic) != 1 {
		t.Errorf("music played %d times, want 1", audio.Count(types.ClipMusic))
	}

	// 游戏中再次调用无效
	s.StartGame()
	if s.World().AliensRemaining() != 55 {
		t.Error("StartGame during a round should be ignored")
	}
}

func TestSimulation_PlayerShootsAlien(t *testing.T) {
	s, audio, in := newTestSim(t, nil)
	s.StartGame()
	in.Hold(types.ActionFire)

	for i := 0; i < 30; i++ {
		step(s, in, 1)
		if n := len(s.World().PlayerLasers()); n > 1 {
			t.Fatalf("tick %d: %d player lasers on screen", i, n)
		}
	}

	snap := s.Snapshot()
	if snap.Score != 10 {
		t.Errorf("score = %d, want 10 (bottom red alien)", snap.Score)
	}
	if snap.AliensRemaining != 54 {
		t.Errorf("aliens remaining = %d, want 54", snap.AliensRemaining)
	}
	if audio.Count(types.ClipInvaderKilled) != 1 {
		t.Errorf("invader killed sound played %d times", audio.Count(types.ClipInvaderKilled))
	}
	if audio.Count(types.ClipShoot) < 2 {
		t.Errorf("shoot sound played %d times, want a refire after the hit", audio.Count(types.ClipShoot))
	}
}

func TestSimulation_AlienLaserCap(t *testing.T) {
	s, _, in := newTestSim(t, constant(0))
	s.StartGame()

	for i := 0; i < 120; i++ {
		step(s, in, 1)
		if n := len(s.World().AlienLasers()); n > 4 {
			t.Fatalf("tick %d: %d alien lasers, want at most 4", i, n)
		}
	}
}

func TestSimulation_PauseFreezesRound(t *testing.T) {
	s, audio, in := newTestSim(t, nil)
	s.StartGame()
	step(s, in, 1)

	in.Press(types.ActionPause)
	step(s, in, 1)
	if s.Phase() != round.PhasePaused || !s.Snapshot().Paused {
		t.Fatalf("phase = %s, want Paused", s.Phase())
	}
	if !s.State().Formation.Timer.Paused() {
		t.Error("formation timer should be paused")
	}
	if len(audio.Active()) != 0 {
		t.Errorf("%d loop voices still playing while paused", len(audio.Active()))
	}

	before := s.Snapshot()
	in.Hold(types.ActionMoveLeft)
	step(s, in, 120)
	in.Release(types.ActionMoveLeft)
	after := s.Snapshot()
	for i := range before.Entities {
		if before.Entities[i].X != after.Entities[i].X || before.Entities[i].Y != after.Entities[i].Y {
			t.Fatalf("entity %d moved while paused", before.Entities[i].ID)
		}
	}

	in.Press(types.ActionPause)
	step(s, in, 1)
	if s.Phase() != round.PhaseRunning {
		t.Errorf("phase = %s, want Running", s.Phase())
	}
	if s.State().Formation.Timer.Paused() {
		t.Error("formation timer should resume")
	}
	if len(audio.Active()) != 1 {
		t.Errorf("music should resume, active voices = %d", len(audio.Active()))
	}
}

// shootPlayer 在玩家正上方放一发外星人激光，下一个 tick 命中
func shootPlayer(s *Simulation) {
	w := s.World()
	player, _ := w.Player()
	pos, _ := w.Positions.Get(player)
	entities.NewAlienLaser(w, types.AlienRed, types.Vec2{X: pos.X, Y: pos.Y + w.Config.Aliens.Size.Y/2})
}

func TestSimulation_PlayerKilledThenRespawned(t *testing.T) {
	s, audio, in := newTestSim(t, nil)
	s.StartGame()
	step(s, in, 1)

	shootPlayer(s)
	step(s, in, 1)

	if s.Phase() != round.PhaseTransition || s.Sub() != round.SubPlayerKilled {
		t.Fatalf("state = %s, want Transition/PlayerKilled", s.machine)
	}
	if s.Snapshot().Lives != 2 {
		t.Errorf("lives = %d, want 2", s.Snapshot().Lives)
	}
	if audio.Count(types.ClipExplosion) != 1 {
		t.Error("expected explosion sound")
	}

	// 转场期间暂停键无效
	in.Press(types.ActionPause)
	step(s, in, 1)
	if s.Phase() != round.PhaseTransition {
		t.Errorf("pause should be ignored during transition, phase = %s", s.Phase())
	}

	ticks := runUntil(t, s, in, 120, func() bool { return s.Phase() == round.PhaseRunning })
	if ticks < 55 {
		t.Errorf("transition finished after %d ticks, want about 1s", ticks)
	}

	snap := s.Snapshot()
	if snap.Count(types.SpritePlayer) != 1 {
		t.Error("player should respawn")
	}
	if snap.Count(types.SpriteLaser) != 0 {
		t.Error("lasers should be cleared")
	}
	if snap.AliensRemaining != 55 {
		t.Errorf("aliens remaining = %d, formation should survive a player death", snap.AliensRemaining)
	}
}

func TestSimulation_LastLifeEndsGame(t *testing.T) {
	s, audio, in := newTestSim(t, nil)
	s.StartGame()
	step(s, in, 1)
	s.State().Ledger.Lives = 1
	s.State().Ledger.Score = 120

	shootPlayer(s)
	step(s, in, 1)
	if s.Sub() != round.SubGameOver {
		t.Fatalf("sub = %s, want GameOver", s.Sub())
	}

	runUntil(t, s, in, 120, func() bool { return s.Mode() == round.ModeMenu })

	snap := s.Snapshot()
	if snap.BestScore != 120 || !snap.AlreadyPlayed {
		t.Errorf("best = %d played = %v, want 120/true", snap.BestScore, snap.AlreadyPlayed)
	}
	if len(snap.Entities) != 0 {
		t.Errorf("menu has %d entities, want 0", len(snap.Entities))
	}
	if len(audio.Active()) != 0 {
		t.Error("all loops should stop in the menu")
	}

	// 再开一局：得分清零，最高分保留
	s.StartGame()
	step(s, in, 1)
	snap = s.Snapshot()
	if snap.Score != 0 || snap.Lives != 3 || snap.BestScore != 120 {
		t.Errorf("replay ledger = %d/%d/%d, want 0/3/120", snap.Score, snap.Lives, snap.BestScore)
	}
}

func TestSimulation_AlienLandingEndsGame(t *testing.T) {
	s, _, in := newTestSim(t, nil)
	s.StartGame()
	step(s, in, 1)

	w := s.World()
	alien := w.FormationAliens()[0]
	pos, _ := w.Positions.Get(alien)
	pos.Y = w.Config.Floor.Height - 1

	step(s, in, 1)
	if s.Sub() != round.SubGameOver {
		t.Errorf("sub = %s, want GameOver", s.Sub())
	}
	if s.Snapshot().Lives != 3 {
		t.Error("landing should not consume lives")
	}
}

func TestSimulation_WaveClearedGrantsLife(t *testing.T) {
	s, _, in := newTestSim(t, nil)
	s.StartGame()
	step(s, in, 1)

	w := s.World()
	aliens := w.FormationAliens()
	last := aliens[len(aliens)-1]
	w.DespawnAll(aliens[:len(aliens)-1])
	s.State().Formation.SpeedUpOnEdge(2)

	pos, _ := w.Positions.Get(last)
	entities.NewPlayerLaser(w, types.Vec2{X: pos.X, Y: pos.Y - w.Config.Player.Size.Y/2})
	step(s, in, 1)

	if s.Sub() != round.SubAliensKilled {
		t.Fatalf("sub = %s, want AliensKilled", s.Sub())
	}
	if s.Snapshot().Lives != 4 {
		t.Errorf("lives = %d, want 4", s.Snapshot().Lives)
	}

	runUntil(t, s, in, 120, func() bool { return s.Phase() == round.PhaseRunning })
	if s.World().AliensRemaining() != 55 {
		t.Errorf("aliens remaining = %d, want a fresh wave", s.World().AliensRemaining())
	}
	if got := s.State().Formation.Period(); got != w.Config.Aliens.TickDuration {
		t.Errorf("formation period = %v, want reset to %v", got, w.Config.Aliens.TickDuration)
	}
}

func TestSimulation_Quit(t *testing.T) {
	tests := []struct {
		name  string
		start bool
	}{
		{"from menu", false},
		{"from game", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, in := newTestSim(t, nil)
			if tt.start {
				s.StartGame()
			}
			in.Press(types.ActionQuit)
			step(s, in, 1)
			if !s.Quitting() {
				t.Error("Quitting() = false after quit")
			}
		})
	}
}

func TestSimulation_UfoFlyby(t *testing.T) {
	// 第一次抽签命中刷新概率，第二次决定从左侧出现；之后不再刷新
	rolls := []float64{0.01, 0.1}
	i := 0
	random := func() float64 {
		if i < len(rolls) {
			i++
			return rolls[i-1]
		}
		return 0.99
	}

	s, audio, in := newTestSim(t, random)
	s.StartGame()

	// 清空编队，随机数只被 UFO 刷新使用
	step(s, in, 1)
	s.World().DespawnAll(s.World().FormationAliens())
	i = 0
	runUntil(t, s, in, 120, func() bool { return s.Snapshot().Count(types.SpriteUfo) == 1 })
	if audio.Count(types.ClipUfo) != 1 {
		t.Fatalf("ufo loop played %d times", audio.Count(types.ClipUfo))
	}

	runUntil(t, s, in, 600, func() bool { return s.Snapshot().Count(types.SpriteUfo) == 0 })
	for _, v := range audio.Voices {
		if v.Clip == types.ClipUfo && !v.Stopped {
			t.Error("ufo loop should stop when it leaves the screen")
		}
	}
}
