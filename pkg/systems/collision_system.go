package systems

import (
	"github.com/decker502/invaders/pkg/events"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/world"
)

// CollisionSystem 激光命中检测
//
// 全部使用圆形距离判定（两点距离小于半径之和），不使用包围盒：
//   - 外星人激光 vs 玩家：半个玩家高 + 半个激光长
//   - 玩家激光 vs 外星人（含 UFO）：半个外星人高 + 半个激光长
//   - 任意激光 vs 掩体：半个掩体宽 + 半个激光宽（含边界）
//
// 命中的激光通过 LaserExplosion 移除，同一 tick 内已请求移除的激光不再参与判定。
type CollisionSystem struct {
	w *world.World
}

// NewCollisionSystem 创建碰撞检测系统
func NewCollisionSystem(w *world.World) *CollisionSystem {
	return &CollisionSystem{w: w}
}

// Update 依次执行三轮检测，产生命中事件
func (s *CollisionSystem) Update(state *game.SimulationState) {
	s.alienLasersVsPlayer(state)
	s.playerLaserVsAliens(state)
	s.lasersVsShelters(state)
}

func (s *CollisionSystem) alienLasersVsPlayer(state *game.SimulationState) {
	player, ok := s.w.Player()
	if !ok {
		return
	}
	cfg := s.w.Config
	playerPos, _ := s.w.Positions.Get(player)
	radius := cfg.Player.Size.Y/2 + cfg.Laser.Size.Y/2

	for _, laser := range s.w.AlienLasers() {
		if state.Events.Exploding(laser) {
			continue
		}
		pos, _ := s.w.Positions.Get(laser)
		if playerPos.Vec().Distance(pos.Vec()) < radius {
			state.Events.ExplodeLaser(laser)
			state.Events.PlayerHits.Emit(events.PlayerHit{Player: player})
		}
	}
}

// playerLaserVsAliens 场上最多只有一发玩家激光，因此每 tick 最多一次 AlienHit
func (s *CollisionSystem) playerLaserVsAliens(state *game.SimulationState) {
	for _, laser := range s.w.PlayerLasers() {
		if state.Events.Exploding(laser) {
			continue
		}
		cfg := s.w.Config
		radius := cfg.Aliens.Size.Y/2 + cfg.Laser.Size.Y/2
		laserPos, _ := s.w.Positions.Get(laser)

		for _, alien := range s.w.AllAliens() {
			pos, _ := s.w.Positions.Get(alien)
			if pos.Vec().Distance(laserPos.Vec()) < radius {
				a, _ := s.w.Aliens.Get(alien)
				state.Events.ExplodeLaser(laser)
				state.Events.AlienHits.Emit(events.AlienHit{
					Type:     a.Type,
					Alien:    alien,
					Position: pos.Vec(),
				})
				break
			}
		}
	}
}

func (s *CollisionSystem) lasersVsShelters(state *game.SimulationState) {
	cfg := s.w.Config
	radius := cfg.Shelters.Size.X/2 + cfg.Laser.Size.X/2
	shelters := s.w.Shelters.Entities()

	for _, laser := range s.w.Lasers.Entities() {
		if state.Events.Exploding(laser) {
			continue
		}
		laserPos, ok := s.w.Positions.Get(laser)
		if !ok {
			continue
		}
		for _, shelter := range shelters {
			pos, _ := s.w.Positions.Get(shelter)
			if pos.Vec().Distance(laserPos.Vec()) <= radius {
				state.Events.ExplodeLaser(laser)
				state.Events.ShelterHits.Emit(events.ShelterHit{Shelter: shelter, Laser: laser})
				break
			}
		}
	}
}
