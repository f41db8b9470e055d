package entities

import (
	"image/color"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/world"
)

var (
	playerColor      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	playerLaserColor = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	floorColor       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// PlayerSpawnY 玩家出生高度：站在地面线上
func PlayerSpawnY(w *world.World) float64 {
	cfg := w.Config
	return cfg.Floor.Height + cfg.Player.Size.Y/2 + cfg.Floor.Thickness/2
}

// NewPlayerEntity 在屏幕底部中央创建玩家飞船
func NewPlayerEntity(w *world.World) ecs.EntityID {
	cfg := w.Config
	id := w.EM.CreateEntity()

	w.Positions.Set(id, &components.PositionComponent{X: w.Width / 2, Y: PlayerSpawnY(w)})
	w.Players.Set(id, &components.PlayerComponent{})
	w.Sprites.Set(id, &components.SpriteComponent{
		Kind:   types.SpritePlayer,
		Width:  cfg.Player.Size.X,
		Height: cfg.Player.Size.Y,
		Color:  playerColor,
	})

	return id
}

// NewFloorEntity 创建地面线
func NewFloorEntity(w *world.World) ecs.EntityID {
	cfg := w.Config
	id := w.EM.CreateEntity()

	w.Positions.Set(id, &components.PositionComponent{X: w.Width / 2, Y: cfg.Floor.Height})
	w.Floors.Set(id, &components.FloorComponent{})
	w.Sprites.Set(id, &components.SpriteComponent{
		Kind:   types.SpriteFloor,
		Width:  w.Width,
		Height: cfg.Floor.Thickness,
		Color:  floorColor,
	})

	return id
}
