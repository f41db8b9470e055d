package systems

import (
	"fmt"

	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/world"
)

// LaserSystem 激光直线运动与出界检测
type LaserSystem struct {
	w *world.World
}

// NewLaserSystem 创建激光系统
func NewLaserSystem(w *world.World) *LaserSystem {
	return &LaserSystem{w: w}
}

// Update 移动所有激光，出界的激光请求爆炸移除
//
// 出界条件（以激光底边计算）：高于窗口顶部减一个激光长度，或低于地面线
func (s *LaserSystem) Update(dt float64, state *game.SimulationState) {
	cfg := s.w.Config
	halfH := cfg.Laser.Size.Y / 2
	ceiling := s.w.Height - cfg.Laser.Size.Y
	floor := cfg.Floor.Height + cfg.Floor.Thickness/2

	for _, id := range s.w.Lasers.Entities() {
		laser, _ := s.w.Lasers.Get(id)
		pos, ok := s.w.Positions.Get(id)
		if !ok {
			continue
		}
		if laser.Direction.IsHorizontal() {
			panic(fmt.Sprintf("systems: laser %d is going the wrong way (%s)", id, laser.Direction))
		}

		pos.Translate(laser.Direction.Mask().Scale(laser.Speed * dt))

		bottom := pos.Y - halfH
		if bottom > ceiling || bottom < floor {
			state.Events.ExplodeLaser(id)
		}
	}
}
