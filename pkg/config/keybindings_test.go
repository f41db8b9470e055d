package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/decker502/invaders/pkg/types"
)

func TestLoadKeyBindings_Builtin(t *testing.T) {
	kb, err := LoadKeyBindings("../../data/keybindings.toml")
	if err != nil {
		t.Fatalf("LoadKeyBindings() error = %v", err)
	}
	if !reflect.DeepEqual(kb, DefaultKeyBindings()) {
		t.Errorf("builtin key bindings differ from defaults: %+v", kb)
	}
}

func TestParseKeyBindings(t *testing.T) {
	tests := []struct {
		name    string
		toml    string
		action  types.Action
		want    []string
		wantErr bool
	}{
		{
			name:   "override single action",
			toml:   `fire = ["Z", "ControlLeft"]`,
			action: types.ActionFire,
			want:   []string{"Z", "ControlLeft"},
		},
		{
			name:   "missing action keeps default",
			toml:   `fire = ["Z"]`,
			action: types.ActionMoveLeft,
			want:   []string{"A", "ArrowLeft"},
		},
		{
			name:    "empty binding rejected",
			toml:    `pause = []`,
			wantErr: true,
		},
		{
			name:    "malformed toml",
			toml:    `fire = [`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb, err := ParseKeyBindings([]byte(tt.toml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKeyBindings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := kb.Keys(tt.action); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keys(%v) = %v, want %v", tt.action, got, tt.want)
			}
		})
	}
}

func TestLoadKeyBindings_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.toml")
	if err := os.WriteFile(path, []byte(`quit = ["Escape"]`), 0644); err != nil {
		t.Fatal(err)
	}
	kb, err := LoadKeyBindings(path)
	if err != nil {
		t.Fatalf("LoadKeyBindings() error = %v", err)
	}
	if got := kb.Keys(types.ActionQuit); len(got) != 1 || got[0] != "Escape" {
		t.Errorf("expected quit = [Escape], got %v", got)
	}
}
