package game

import (
	"math/rand"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/events"
	"github.com/decker502/invaders/pkg/utils"
)

// SimulationState 每个 tick 以独占引用传入各系统的可变状态
// 不使用任何全局变量
type SimulationState struct {
	Ledger     *GameState
	Formation  *FormationState
	UfoTimer   *utils.Timer
	Transition *utils.Timer
	Events     events.Mailboxes

	// Random 返回 [0, 1) 的随机数，测试中可替换为固定序列
	Random func() float64
}

// NewSimulationState 按配置创建模拟状态
// random 为 nil 时使用以当前时间为种子的随机源
func NewSimulationState(cfg *config.GameConfig, random func() float64) *SimulationState {
	if random == nil {
		random = rand.Float64
	}
	return &SimulationState{
		Ledger:     NewGameState(cfg.Lives),
		Formation:  NewFormationState(cfg.Aliens.TickDuration),
		UfoTimer:   utils.NewTimer(cfg.Ufo.SpawnInterval, utils.TimerRepeating),
		Transition: utils.NewTimer(cfg.Timing.Transition, utils.TimerOnce),
		Random:     random,
	}
}
