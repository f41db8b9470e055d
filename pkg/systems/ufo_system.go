package systems

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/world"
)

// UfoSystem 神秘飞船的刷新、飞行与离场
type UfoSystem struct {
	w      *world.World
	logger *zap.Logger
}

// NewUfoSystem 创建 UFO 系统
func NewUfoSystem(w *world.World, logger *zap.Logger) *UfoSystem {
	return &UfoSystem{w: w, logger: logger.Named("ufo")}
}

// Update 场上没有 UFO 时推进刷新计时器，到时以固定概率从随机一侧出现；
// 有 UFO 时水平飞行，飞出对侧屏幕外一段距离后销毁
func (s *UfoSystem) Update(dt float64, state *game.SimulationState) {
	cfg := s.w.Config

	id, ok := s.w.Ufo()
	if !ok {
		if !state.UfoTimer.Tick(dt).JustFinished() {
			return
		}
		if state.Random() >= cfg.Ufo.SpawnProbability {
			return
		}
		spawn := entities.UfoSpawnFor(s.w, state.Random())
		ufo := entities.NewUfoEntity(s.w, spawn)
		s.logger.Debug("ufo spawned",
			zap.Uint64("id", uint64(ufo)),
			zap.Stringer("direction", spawn.Direction))
		return
	}

	ufo, _ := s.w.Ufos.Get(id)
	if !ufo.Direction.IsHorizontal() {
		panic(fmt.Sprintf("systems: ufo must fly left or right, got %s", ufo.Direction))
	}
	pos, _ := s.w.Positions.Get(id)
	pos.Translate(ufo.Direction.Mask().Scale(cfg.Ufo.Speed * dt))

	limit := cfg.Ufo.Size.X + cfg.Ufo.DespawnMargin
	if pos.X >= s.w.Width+limit || pos.X <= -limit {
		s.w.Despawn(id)
		s.logger.Debug("ufo left the screen", zap.Uint64("id", uint64(id)))
	}
}
