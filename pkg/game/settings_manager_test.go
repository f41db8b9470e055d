package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/invaders/pkg/types"
)

// openTestStorage 在临时 HOME 下打开 gdata 存储
func openTestStorage(t *testing.T, app string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	gm, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return gm
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if got := s.Gain(ChannelMusic); got != 0.5 {
		t.Errorf("music gain = %v, want 0.5", got)
	}
	if got := s.Gain(ChannelEffects); got != 0.8 {
		t.Errorf("effects gain = %v, want 0.8", got)
	}
	if s.Fullscreen {
		t.Error("fullscreen should default to false")
	}
}

func TestChannelOf(t *testing.T) {
	for _, clip := range types.AllClips {
		want := ChannelEffects
		if clip == types.ClipMusic {
			want = ChannelMusic
		}
		if got := ChannelOf(clip); got != want {
			t.Errorf("ChannelOf(%v) = %v, want %v", clip, got, want)
		}
	}
}

func TestSettingsManager_MemoryMode(t *testing.T) {
	sm := NewSettingsManager(nil, nil)
	if sm.Persistent() {
		t.Error("nil storage should not be persistent")
	}

	sm.SetVolume(ChannelMusic, 0.3)
	if err := sm.Toggle(ChannelEffects); err != nil {
		t.Fatalf("Toggle in memory mode: %v", err)
	}
	if got := sm.Gain(ChannelEffects); got != 0 {
		t.Errorf("disabled channel gain = %v, want 0", got)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save in memory mode: %v", err)
	}

	// 重新加载回到默认值
	if err := sm.Load(); err != nil {
		t.Fatalf("Load in memory mode: %v", err)
	}
	if got := sm.Gain(ChannelMusic); got != 0.5 {
		t.Errorf("music gain after reload = %v, want default 0.5", got)
	}
}

func TestSettingsManager_SetVolumeClamps(t *testing.T) {
	tests := []struct {
		input, want float64
	}{
		{0.5, 0.5},
		{0, 0},
		{1, 1},
		{-0.5, 0},
		{1.5, 1},
		{-100, 0},
		{100, 1},
	}

	sm := NewSettingsManager(nil, nil)
	for _, ch := range []Channel{ChannelMusic, ChannelEffects} {
		for _, tt := range tests {
			sm.SetVolume(ch, tt.input)
			if got := sm.Gain(ch); got != tt.want {
				t.Errorf("%v SetVolume(%v): gain %v, want %v", ch, tt.input, got, tt.want)
			}
		}
	}
}

func TestSettingsManager_Persist(t *testing.T) {
	gm := openTestStorage(t, "invaders_settings_test")

	sm := NewSettingsManager(gm, nil)
	if !sm.Persistent() {
		t.Fatal("gdata-backed manager should be persistent")
	}
	sm.SetVolume(ChannelEffects, 0.25)
	if err := sm.Toggle(ChannelMusic); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if err := sm.SetFullscreen(true); err != nil {
		t.Fatalf("SetFullscreen: %v", err)
	}

	reloaded := NewSettingsManager(gm, nil)
	s := reloaded.Settings()
	if s.Music.Enabled {
		t.Error("music should stay disabled after reload")
	}
	if got := reloaded.Gain(ChannelEffects); got != 0.25 {
		t.Errorf("effects gain after reload = %v, want 0.25", got)
	}
	if !s.Fullscreen {
		t.Error("fullscreen preference was not persisted")
	}
}

func TestSettingsManager_LoadClampsStoredVolume(t *testing.T) {
	gm := openTestStorage(t, "invaders_settings_clamp_test")
	blob := []byte("music:\n  volume: 3\n  enabled: true\neffects:\n  volume: -1\n  enabled: true\n")
	if err := gm.SaveObjectProp(settingsObject, settingsProperty, blob); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm := NewSettingsManager(gm, nil)
	if got := sm.Gain(ChannelMusic); got != 1 {
		t.Errorf("music gain = %v, want 1", got)
	}
	if got := sm.Gain(ChannelEffects); got != 0 {
		t.Errorf("effects gain = %v, want 0", got)
	}
}

func TestSettingsManager_CorruptBlobFallsBack(t *testing.T) {
	gm := openTestStorage(t, "invaders_settings_corrupt_test")
	if err := gm.SaveObjectProp(settingsObject, settingsProperty, []byte("music: [")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm := NewSettingsManager(gm, nil)
	if got := sm.Gain(ChannelMusic); got != 0.5 {
		t.Errorf("music gain = %v, want default 0.5", got)
	}
	if err := sm.Load(); err == nil {
		t.Error("Load should report the corrupt blob")
	}
}
