package systems

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/events"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/world"
)

// FormationSystem 外星人编队步进
//
// 编队只在步进计时器到时时移动，所有外星人平移同一个向量：
// 水平步长为 1/4 外星人宽，下移步长为 1/2 外星人高。
// 下移之后航向翻转为下移前航向的反方向；水平步进后若有外星人贴边，
// 下一步改为下移，并把步进周期除以加速系数。
type FormationSystem struct {
	w      *world.World
	logger *zap.Logger
}

// NewFormationSystem 创建编队系统
func NewFormationSystem(w *world.World, logger *zap.Logger) *FormationSystem {
	return &FormationSystem{w: w, logger: logger.Named("formation")}
}

// Update 推进步进计时器，每到时一次移动编队一步
func (s *FormationSystem) Update(dt float64, state *game.SimulationState) {
	f := state.Formation
	steps := f.Timer.Tick(dt).TimesFinishedThisTick()
	for i := 0; i < steps; i++ {
		s.step(f)
	}
}

func (s *FormationSystem) step(f *game.FormationState) {
	cfg := s.w.Config
	step := types.Vec2{X: cfg.Aliens.Size.X / 4, Y: cfg.Aliens.Size.Y / 2}.Mul(f.Next.Mask())

	aliens := s.w.FormationAliens()
	for _, id := range aliens {
		pos, _ := s.w.Positions.Get(id)
		pos.Translate(step)
	}

	if len(aliens) > 0 {
		entities.NewSoundEntity(s.w, f.NextMarchClip(), types.PlayOnce)
	}

	if f.Next == types.DirectionDown {
		if !f.Previous.IsHorizontal() {
			panic(fmt.Sprintf("systems: formation previous heading must be Left or Right, got %s", f.Previous))
		}
		f.Next = f.Previous.Opposite()
		f.Previous = f.Next
		return
	}

	half := cfg.Aliens.Size.X / 2
	for _, id := range aliens {
		pos, _ := s.w.Positions.Get(id)
		if pos.X <= half || pos.X >= s.w.Width-half {
			f.Next = types.DirectionDown
			f.SpeedUpOnEdge(cfg.Aliens.EdgeSpeedUp)
			s.logger.Debug("formation reached edge",
				zap.Float64("x", pos.X),
				zap.Float64("period", f.Period()))
			break
		}
	}
}

// FloorSystem 检测外星人是否到达地面
type FloorSystem struct {
	w *world.World
}

// NewFloorSystem 创建地面检测系统
func NewFloorSystem(w *world.World) *FloorSystem {
	return &FloorSystem{w: w}
}

// Update 任一外星人低于地面高度时发出 GameOver（不经过生命数）
func (s *FloorSystem) Update(state *game.SimulationState) {
	for _, id := range s.w.FormationAliens() {
		pos, _ := s.w.Positions.Get(id)
		if pos.Y < s.w.Config.Floor.Height {
			state.Events.GameOvers.Emit(events.GameOver{Reason: events.GameOverAlienLanded})
			return
		}
	}
}
