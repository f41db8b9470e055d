package systems

import (
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/world"
)

// LifetimeSystem 管理限时存在的视觉效果：激光爆炸和得分文字
type LifetimeSystem struct {
	w *world.World
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(w *world.World) *LifetimeSystem {
	return &LifetimeSystem{w: w}
}

// HandleLaserExplosions 消费 LaserExplosion：在激光前端生成爆炸效果并移除激光
// 已被移除的激光直接跳过
func (s *LifetimeSystem) HandleLaserExplosions(state *game.SimulationState) {
	for _, e := range state.Events.LaserExplosions.Drain() {
		if !s.w.EM.IsAlive(e.Laser) {
			continue
		}
		laser, ok := s.w.Lasers.Get(e.Laser)
		if !ok {
			continue
		}
		pos, _ := s.w.Positions.Get(e.Laser)
		entities.NewExplosionEntity(s.w, pos.Vec(), laser.Direction)
		s.w.Despawn(e.Laser)
	}
}

// Update 推进爆炸和得分文字的计时器，到时的实体被销毁
// 转场期间也会运行，让效果自然消失
func (s *LifetimeSystem) Update(deltaTime float64) {
	for _, id := range s.w.Explosions.Entities() {
		explosion, _ := s.w.Explosions.Get(id)
		if explosion.Timer.Tick(deltaTime).Finished() {
			s.w.Despawn(id)
		}
	}

	for _, id := range s.w.XpTexts.Entities() {
		xp, _ := s.w.XpTexts.Get(id)
		if xp.Timer.Tick(deltaTime).Finished() {
			s.w.Despawn(id)
		}
	}
}
