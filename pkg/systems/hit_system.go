package systems

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/events"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/round"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/world"
)

// HitSystem 消费命中事件：结算得分、生命、护甲，并给出本 tick 的回合结果
type HitSystem struct {
	w      *world.World
	logger *zap.Logger
}

// NewHitSystem 创建命中结算系统
func NewHitSystem(w *world.World, logger *zap.Logger) *HitSystem {
	return &HitSystem{w: w, logger: logger.Named("hit")}
}

// Update 依次处理 AlienHit、PlayerHit、ShelterHit、GameOver
//
// 返回:
//   - round.Event: 本 tick 的终局事件，优先级 GameOver > AliensKilled > PlayerKilled
//   - bool: 本 tick 没有终局事件时为 false
func (s *HitSystem) Update(state *game.SimulationState) (round.Event, bool) {
	var aliensKilled, playerKilled bool

	for _, hit := range state.Events.AlienHits.Drain() {
		if s.onAlienHit(hit.Alien, hit.Type, hit.Position, state) {
			aliensKilled = true
		}
	}

	for _, hit := range state.Events.PlayerHits.Drain() {
		if s.onPlayerHit(hit.Player, state) {
			playerKilled = true
		}
	}

	for _, hit := range state.Events.ShelterHits.Drain() {
		s.onShelterHit(hit.Shelter)
	}

	if overs := state.Events.GameOvers.Drain(); len(overs) > 0 {
		s.logger.Info("game over", zap.Stringer("reason", overs[0].Reason), zap.Int("score", state.Ledger.Score))
		return round.EventGameOver, true
	}
	if aliensKilled {
		return round.EventAliensKilled, true
	}
	if playerKilled {
		return round.EventPlayerKilled, true
	}
	return 0, false
}

// onAlienHit 返回是否清空了整波外星人
func (s *HitSystem) onAlienHit(alien ecs.EntityID, alienType types.AlienType, pos types.Vec2, state *game.SimulationState) bool {
	if !s.w.EM.IsAlive(alien) {
		return false
	}
	cfg := s.w.Config

	// UFO 带有循环音效子实体，一并销毁
	s.w.Despawn(alien)
	entities.NewSoundEntity(s.w, types.ClipInvaderKilled, types.PlayOnce)

	value := alienType.Value()
	state.Ledger.AddScore(value)
	entities.NewXpTextEntity(s.w, pos, value)

	remaining := s.w.AliensRemaining()
	s.logger.Debug("alien killed",
		zap.Stringer("type", alienType),
		zap.Int("remaining", remaining),
		zap.Int("score", state.Ledger.Score))

	if remaining == 0 {
		state.Ledger.GainLife()
		s.logger.Info("wave cleared", zap.Int("lives", state.Ledger.Lives))
		return true
	}
	if remaining < cfg.Aliens.KillSpeedUpBelow {
		state.Formation.SpeedUpOnKill(cfg.Aliens.KillSpeedUp)
	}
	return false
}

// onPlayerHit 返回玩家是否阵亡但仍有剩余生命
// 生命耗尽时改为发出 GameOver
func (s *HitSystem) onPlayerHit(player ecs.EntityID, state *game.SimulationState) bool {
	if !s.w.EM.IsAlive(player) {
		return false
	}

	s.w.Despawn(player)
	entities.NewSoundEntity(s.w, types.ClipExplosion, types.PlayOnce)

	lives := state.Ledger.LoseLife()
	s.logger.Info("player killed", zap.Int("lives", lives))
	if lives > 0 {
		return true
	}
	state.Events.GameOvers.Emit(gameOverNoLives)
	return false
}

func (s *HitSystem) onShelterHit(id ecs.EntityID) {
	if !s.w.EM.IsAlive(id) {
		return
	}
	shelter, ok := s.w.Shelters.Get(id)
	if !ok {
		return
	}

	shelter.Armor -= s.w.Config.Shelters.Damage
	if shelter.Armor < 0 {
		shelter.Armor = 0
	}
	if text, ok := s.w.ArmorTexts.Get(shelter.Text); ok {
		text.Text = strconv.Itoa(shelter.Armor)
	}

	if shelter.Armor == 0 {
		s.w.Despawn(id)
		s.logger.Debug("shelter destroyed", zap.Uint64("id", uint64(id)))
	}
}

var gameOverNoLives = events.GameOver{Reason: events.GameOverNoLives}
