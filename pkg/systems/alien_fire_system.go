package systems

import (
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/world"
)

// AlienFireSystem 外星人随机开火
type AlienFireSystem struct {
	w *world.World
}

// NewAlienFireSystem 创建外星人开火系统
func NewAlienFireSystem(w *world.World) *AlienFireSystem {
	return &AlienFireSystem{w: w}
}

// Update 每个编队外星人（不含 UFO）以固定概率独立开火，
// 场上外星人激光达到上限后停止扫描
func (s *AlienFireSystem) Update(state *game.SimulationState) {
	cfg := s.w.Config
	count := len(s.w.AlienLasers())

	for _, id := range s.w.FormationAliens() {
		if count >= cfg.Aliens.MaxLasers {
			break
		}
		if state.Random() >= cfg.Aliens.ShootProbability {
			continue
		}
		alien, _ := s.w.Aliens.Get(id)
		pos, _ := s.w.Positions.Get(id)
		entities.NewAlienLaser(s.w, alien.Type, pos.Vec())
		count++
	}
}
