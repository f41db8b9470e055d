package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/decker502/invaders/pkg/world"
)

var explosionColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

// NewExplosionEntity 在激光前端创建爆炸效果
// 爆炸位置沿激光飞行方向偏移半个激光长度
//
// 参数:
//   - w: 世界
//   - laserPos: 激光中心坐标
//   - dir: 激光飞行方向，只能是 Up 或 Down
func NewExplosionEntity(w *world.World, laserPos types.Vec2, dir types.Direction) ecs.EntityID {
	if dir.IsHorizontal() {
		panic(fmt.Sprintf("entities: laser should only go up or down, got %s", dir))
	}
	cfg := w.Config
	pos := laserPos.Add(dir.Mask().Scale(cfg.Laser.Size.Y / 2))

	id := w.EM.CreateEntity()
	w.Positions.Set(id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	w.Explosions.Set(id, &components.ExplosionComponent{
		Timer:     utils.NewTimer(cfg.Timing.Explosion, utils.TimerOnce),
		MinRadius: cfg.Timing.ExplosionMinRadius,
		MaxRadius: cfg.Timing.ExplosionMaxRadius,
	})
	w.Sprites.Set(id, &components.SpriteComponent{
		Kind:   types.SpriteExplosion,
		Width:  2 * cfg.Timing.ExplosionMinRadius,
		Height: 2 * cfg.Timing.ExplosionMinRadius,
		Color:  explosionColor,
	})

	return id
}

// XpText 击杀外星人后显示的得分文字
func XpText(value int) string {
	return fmt.Sprintf("+%dXP", value)
}

// NewXpTextEntity 在被击杀外星人的位置创建逐渐淡出的得分文字
func NewXpTextEntity(w *world.World, pos types.Vec2, value int) ecs.EntityID {
	cfg := w.Config
	id := w.EM.CreateEntity()

	w.Positions.Set(id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	w.XpTexts.Set(id, &components.XpTextComponent{
		Timer: utils.NewTimer(cfg.Timing.XpGain, utils.TimerOnce),
		Text:  XpText(value),
		Value: value,
	})
	w.Sprites.Set(id, &components.SpriteComponent{Kind: types.SpriteText, Color: textColor})

	return id
}

// NewSoundEntity 创建发声实体，由 AudioSystem 负责开始播放
func NewSoundEntity(w *world.World, clip types.SoundClip, mode types.PlaybackMode) ecs.EntityID {
	id := w.EM.CreateEntity()
	w.Sounds.Set(id, &components.SoundComponent{Clip: clip, Mode: mode})
	return id
}
