package entities

import (
	"image/color"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/world"
)

// NewPlayerLaser 在玩家飞船顶端创建向上的激光
func NewPlayerLaser(w *world.World, playerPos types.Vec2) ecs.EntityID {
	cfg := w.Config
	return newLaser(w, playerPos.X, playerPos.Y+cfg.Player.Size.Y/2, &components.LaserComponent{
		Direction: types.DirectionUp,
		Speed:     cfg.Player.LaserSpeed,
		Owner:     components.FactionPlayer,
	}, playerLaserColor)
}

// NewAlienLaser 在外星人底部创建向下的激光，颜色与外星人相同
func NewAlienLaser(w *world.World, alienType types.AlienType, alienPos types.Vec2) ecs.EntityID {
	cfg := w.Config
	return newLaser(w, alienPos.X, alienPos.Y-cfg.Aliens.Size.Y/2, &components.LaserComponent{
		Direction: types.DirectionDown,
		Speed:     cfg.Aliens.LaserSpeed,
		Owner:     components.FactionAlien,
		AlienType: alienType,
	}, alienType.Color())
}

func newLaser(w *world.World, x, y float64, laser *components.LaserComponent, c color.RGBA) ecs.EntityID {
	cfg := w.Config
	id := w.EM.CreateEntity()

	w.Positions.Set(id, &components.PositionComponent{X: x, Y: y})
	w.Lasers.Set(id, laser)
	w.Sprites.Set(id, &components.SpriteComponent{
		Kind:   types.SpriteLaser,
		Width:  cfg.Laser.Size.X,
		Height: cfg.Laser.Size.Y,
		Color:  c,
	})

	return id
}
