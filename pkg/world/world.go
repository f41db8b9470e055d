// Package world 持有全部存活实体及其组件表
package world

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

// World 实体注册表 + 各组件表 + 视口尺寸
type World struct {
	EM *ecs.EntityManager

	Positions  *ecs.Store[*components.PositionComponent]
	Aliens     *ecs.Store[*components.AlienComponent]
	Ufos       *ecs.Store[*components.UfoComponent]
	Players    *ecs.Store[*components.PlayerComponent]
	Lasers     *ecs.Store[*components.LaserComponent]
	Shelters   *ecs.Store[*components.ShelterComponent]
	ArmorTexts *ecs.Store[*components.ArmorTextComponent]
	Explosions *ecs.Store[*components.ExplosionComponent]
	XpTexts    *ecs.Store[*components.XpTextComponent]
	Sounds     *ecs.Store[*components.SoundComponent]
	Sprites    *ecs.Store[*components.SpriteComponent]
	Floors     *ecs.Store[*components.FloorComponent]

	Config *config.GameConfig
	Width  float64
	Height float64
}

// New 创建空世界
func New(cfg *config.GameConfig) *World {
	em := ecs.NewEntityManager()
	return &World{
		EM:         em,
		Positions:  ecs.NewStore[*components.PositionComponent](em),
		Aliens:     ecs.NewStore[*components.AlienComponent](em),
		Ufos:       ecs.NewStore[*components.UfoComponent](em),
		Players:    ecs.NewStore[*components.PlayerComponent](em),
		Lasers:     ecs.NewStore[*components.LaserComponent](em),
		Shelters:   ecs.NewStore[*components.ShelterComponent](em),
		ArmorTexts: ecs.NewStore[*components.ArmorTextComponent](em),
		Explosions: ecs.NewStore[*components.ExplosionComponent](em),
		XpTexts:    ecs.NewStore[*components.XpTextComponent](em),
		Sounds:     ecs.NewStore[*components.SoundComponent](em),
		Sprites:    ecs.NewStore[*components.SpriteComponent](em),
		Floors:     ecs.NewStore[*components.FloorComponent](em),
		Config:     cfg,
		Width:      cfg.Width(),
		Height:     cfg.Height(),
	}
}

// FormationAliens 编队中的外星人（不含 UFO 和激光）
func (w *World) FormationAliens() []ecs.EntityID {
	return ecs.Without(ecs.Query(w.Aliens, w.Positions), w.Ufos, w.Lasers)
}

// AliensRemaining 编队剩余外星人数量
func (w *World) AliensRemaining() int {
	return len(w.FormationAliens())
}

// AllAliens 所有可被玩家激光击中的外星人（含 UFO）
func (w *World) AllAliens() []ecs.EntityID {
	return ecs.Without(ecs.Query(w.Aliens, w.Positions), w.Lasers)
}

// PlayerLasers 玩家发射的激光
func (w *World) PlayerLasers() []ecs.EntityID {
	return w.lasersOf(components.FactionPlayer)
}

// AlienLasers 外星人发射的激光
func (w *World) AlienLasers() []ecs.EntityID {
	return w.lasersOf(components.FactionAlien)
}

func (w *World) lasersOf(owner components.Faction) []ecs.EntityID {
	var result []ecs.EntityID
	for _, id := range ecs.Query(w.Lasers, w.Positions) {
		if l, _ := w.Lasers.Get(id); l.Owner == owner {
			result = append(result, id)
		}
	}
	return result
}

// Player 唯一的玩家实体，不存在时返回 false
func (w *World) Player() (ecs.EntityID, bool) {
	return ecs.Single(ecs.Query(w.Players, w.Positions))
}

// Ufo 唯一的 UFO 实体，不存在时返回 false
func (w *World) Ufo() (ecs.EntityID, bool) {
	return ecs.Single(ecs.Query(w.Ufos, w.Positions))
}

// Despawn 销毁实体及其子实体（如 UFO 的循环音效）
func (w *World) Despawn(id ecs.EntityID) {
	w.EM.DestroyEntityRecursive(id)
}

// DespawnAll 销毁指定实体
func (w *World) DespawnAll(ids []ecs.EntityID) {
	for _, id := range ids {
		w.EM.DestroyEntityRecursive(id)
	}
}

// Clear 立即清空世界（离开游戏模式时）
func (w *World) Clear() {
	w.EM.Reset()
}
