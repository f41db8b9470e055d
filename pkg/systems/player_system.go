package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/world"
)

// PlayerSystem 玩家移动与开火
type PlayerSystem struct {
	w      *world.World
	logger *zap.Logger
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(w *world.World, logger *zap.Logger) *PlayerSystem {
	return &PlayerSystem{w: w, logger: logger.Named("player")}
}

// Update 按住左/右移动（同时按住时向左优先），位置限制在窗口内；
// 按住开火键且场上没有玩家激光时发射一发
func (s *PlayerSystem) Update(dt float64, input ActionState) {
	id, ok := s.w.Player()
	if !ok {
		return
	}
	pos, _ := s.w.Positions.Get(id)
	cfg := s.w.Config

	var dir float64
	if input.IsHeld(types.ActionMoveLeft) {
		dir = -1
	} else if input.IsHeld(types.ActionMoveRight) {
		dir = 1
	}
	pos.X += dir * cfg.Player.Speed * dt

	half := cfg.Player.Size.X / 2
	if pos.X < half {
		pos.X = half
	} else if pos.X > s.w.Width-half {
		pos.X = s.w.Width - half
	}

	if input.IsHeld(types.ActionFire) && len(s.w.PlayerLasers()) == 0 {
		laser := entities.NewPlayerLaser(s.w, pos.Vec())
		entities.NewSoundEntity(s.w, types.ClipShoot, types.PlayOnce)
		s.logger.Debug("player fired", zap.Uint64("laser", uint64(laser)))
	}
}
