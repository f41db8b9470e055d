package entities

import (
	"fmt"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/world"
)

// NewAlienEntity 创建单个编队外星人
func NewAlienEntity(w *world.World, alienType types.AlienType, x, y float64) ecs.EntityID {
	cfg := w.Config
	id := w.EM.CreateEntity()

	w.Positions.Set(id, &components.PositionComponent{X: x, Y: y})
	w.Aliens.Set(id, &components.AlienComponent{Type: alienType})
	w.Sprites.Set(id, &components.SpriteComponent{
		Kind:   types.SpriteAlien,
		Width:  cfg.Aliens.Size.X,
		Height: cfg.Aliens.Size.Y,
		Color:  alienType.Color(),
	})

	return id
}

// NewAlienWave 创建一整波外星人
//
// 从左上角 (margin + 半个外星人宽, 高度 - margin) 开始，按配置的行序
// （1 行黄、2 行绿、2 行红）逐行排布。行与行之间蛇形前进：
// 每行最后一个外星人的位置直接下移一行作为下一行的起点，下一行反向排列。
//
// 返回:
//   - []ecs.EntityID: 按创建顺序排列的外星人ID
//   - error: 配置中的外星人类型无法识别时返回错误
func NewAlienWave(w *world.World) ([]ecs.EntityID, error) {
	cfg := w.Config
	perLine := cfg.Aliens.PerLine

	step := cfg.Aliens.Spacing.X + cfg.Aliens.Size.X
	x := cfg.Aliens.Margin + cfg.Aliens.Size.X/2
	y := w.Height - cfg.Aliens.Margin

	ids := make([]ecs.EntityID, 0, cfg.AlienCount())
	for _, row := range cfg.Aliens.Rows {
		alienType, err := config.ParseAlienType(row.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to spawn alien wave: %w", err)
		}
		for line := 0; line < row.Lines; line++ {
			for j := 0; j < perLine; j++ {
				ids = append(ids, NewAlienEntity(w, alienType, x, y))
				if j != perLine-1 {
					x += step
				}
			}
			step = -step
			y -= cfg.Aliens.Spacing.Y + cfg.Aliens.Size.Y
		}
	}

	return ids, nil
}

// UfoSpawn UFO 出生参数
type UfoSpawn struct {
	Direction types.Direction
	X         float64
	Y         float64
}

// UfoSpawnFor 根据随机数决定 UFO 的出生侧
// roll > 0.5 时从右侧屏幕外出现向左飞，否则从左侧出现向右飞
func UfoSpawnFor(w *world.World, roll float64) UfoSpawn {
	cfg := w.Config
	y := w.Height - cfg.Ufo.Size.Y
	if roll > 0.5 {
		return UfoSpawn{Direction: types.DirectionLeft, X: w.Width + cfg.Ufo.Size.X, Y: y}
	}
	return UfoSpawn{Direction: types.DirectionRight, X: -cfg.Ufo.Size.X, Y: y}
}

// NewUfoEntity 创建神秘飞船，并挂上循环播放的引擎声子实体
// 飞船被销毁时（击中或飞出屏幕）引擎声随之停止
func NewUfoEntity(w *world.World, spawn UfoSpawn) ecs.EntityID {
	cfg := w.Config
	id := w.EM.CreateEntity()

	w.Positions.Set(id, &components.PositionComponent{X: spawn.X, Y: spawn.Y})
	w.Aliens.Set(id, &components.AlienComponent{Type: types.AlienUfo})
	w.Ufos.Set(id, &components.UfoComponent{Direction: spawn.Direction})
	w.Sprites.Set(id, &components.SpriteComponent{
		Kind:   types.SpriteUfo,
		Width:  cfg.Ufo.Size.X,
		Height: cfg.Ufo.Size.Y,
		Color:  types.AlienUfo.Color(),
	})

	sound := NewSoundEntity(w, types.ClipUfo, types.PlayLoopUntilDespawn)
	w.EM.AddChild(id, sound)

	return id
}
