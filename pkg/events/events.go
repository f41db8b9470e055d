package events

import (
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
)

// PlayerHit 玩家被外星人激光击中
type PlayerHit struct {
	Player ecs.EntityID
}

// AlienHit 外星人（含 UFO）被玩家激光击中
type AlienHit struct {
	Type     types.AlienType
	Alien    ecs.EntityID
	Position types.Vec2
}

// LaserExplosion 激光需要移除（命中或出界），移除前先播放爆炸效果
type LaserExplosion struct {
	Laser ecs.EntityID
}

// ShelterHit 掩体被任一阵营的激光击中
type ShelterHit struct {
	Shelter ecs.EntityID
	Laser   ecs.EntityID
}

// GameOverReason 游戏结束原因
type GameOverReason int

const (
	GameOverNoLives     GameOverReason = iota // 生命耗尽
	GameOverAlienLanded                       // 外星人到达地面
)

func (r GameOverReason) String() string {
	switch r {
	case GameOverNoLives:
		return "no lives left"
	case GameOverAlienLanded:
		return "alien reached the floor"
	}
	return "unknown"
}

// GameOver 游戏结束
type GameOver struct {
	Reason GameOverReason
}

// Mailboxes 一个 tick 内的全部事件信箱
type Mailboxes struct {
	PlayerHits      Queue[PlayerHit]
	AlienHits       Queue[AlienHit]
	LaserExplosions Queue[LaserExplosion]
	ShelterHits     Queue[ShelterHit]
	GameOvers       Queue[GameOver]

	exploding map[ecs.EntityID]bool
}

// ExplodeLaser 请求移除激光
// 同一激光在一个 tick 内只会产生一次 LaserExplosion，返回 false 表示已请求过
func (m *Mailboxes) ExplodeLaser(laser ecs.EntityID) bool {
	if m.exploding == nil {
		m.exploding = make(map[ecs.EntityID]bool)
	}
	if m.exploding[laser] {
		return false
	}
	m.exploding[laser] = true
	m.LaserExplosions.Emit(LaserExplosion{Laser: laser})
	return true
}

// Exploding 激光是否已在本 tick 被请求移除
// 已移除的激光不再参与后续碰撞
func (m *Mailboxes) Exploding(laser ecs.EntityID) bool {
	return m.exploding[laser]
}

// ClearAll tick 结束时清空全部信箱
func (m *Mailboxes) ClearAll() {
	m.PlayerHits.Clear()
	m.AlienHits.Clear()
	m.LaserExplosions.Clear()
	m.ShelterHits.Clear()
	m.GameOvers.Clear()
	clear(m.exploding)
}
