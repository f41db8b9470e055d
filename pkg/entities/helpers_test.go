package entities

import (
	"testing"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/world"
)

// newTestWorld 使用内置玩法参数创建空世界
func newTestWorld(t *testing.T) *world.World {
	t.Helper()
	cfg, err := config.LoadGameConfig("../../data/game.yaml")
	if err != nil {
		t.Fatalf("load game config: %v", err)
	}
	return world.New(cfg)
}
