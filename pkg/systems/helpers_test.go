package systems

import (
	"testing"

	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/world"
)

const testDT = 1.0 / 60

func newTestWorld(t *testing.T) *world.World {
	t.Helper()
	cfg, err := config.LoadGameConfig("../../data/game.yaml")
	if err != nil {
		t.Fatalf("load game config: %v", err)
	}
	return world.New(cfg)
}

// sequence 依次返回给定的随机数，用完后一直返回最后一个
func sequence(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

// newTestState 默认随机源永远返回 0.99（不触发任何随机事件）
func newTestState(w *world.World, random func() float64) *game.SimulationState {
	if random == nil {
		random = sequence(0.99)
	}
	return game.NewSimulationState(w.Config, random)
}

var nopLogger = zap.NewNop()

// heldKeys 按住的动作集合
type heldKeys map[types.Action]bool

func (h heldKeys) IsHeld(a types.Action) bool      { return h[a] }
func (h heldKeys) JustPressed(a types.Action) bool { return h[a] }

// fakeVoice 记录播放状态
type fakeVoice struct {
	clip    types.SoundClip
	stopped bool
	paused  bool
}

func (v *fakeVoice) Stop()   { v.stopped = true }
func (v *fakeVoice) Pause()  { v.paused = true }
func (v *fakeVoice) Resume() { v.paused = false }

// fakeAudio 记录所有 Play 调用
type fakeAudio struct {
	voices []*fakeVoice
}

func (a *fakeAudio) Play(clip types.SoundClip, mode types.PlaybackMode) Voice {
	v := &fakeVoice{clip: clip}
	a.voices = append(a.voices, v)
	return v
}

func (a *fakeAudio) clips() []types.SoundClip {
	var out []types.SoundClip
	for _, v := range a.voices {
		out = append(out, v.clip)
	}
	return out
}

// pendingClips 尚未播放的发声实体
func pendingClips(w *world.World) []types.SoundClip {
	var out []types.SoundClip
	for _, id := range w.Sounds.Entities() {
		s, _ := w.Sounds.Get(id)
		if !s.Started {
			out = append(out, s.Clip)
		}
	}
	return out
}

func containsClip(clips []types.SoundClip, c types.SoundClip) bool {
	for _, x := range clips {
		if x == c {
			return true
		}
	}
	return false
}
