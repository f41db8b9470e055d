package game

import "github.com/decker502/invaders/pkg/config"

// GameState 得分与生命账本
//
// 得分在一局内单调不减，开局时清零；
// 生命数开局为初始值，清空一波外星人时加一（有上限），玩家阵亡时减一（不低于 0）。
// 最高分与"是否已玩过"跨局保留，只存在内存中。
type GameState struct {
	Score         int
	Lives         int
	BestScore     int
	AlreadyPlayed bool

	initialLives int
	maxLives     int
}

// NewGameState 创建账本
func NewGameState(lives config.LivesConfig) *GameState {
	return &GameState{
		Lives:        lives.Initial,
		initialLives: lives.Initial,
		maxLives:     lives.Max,
	}
}

// Reset 开始新的一局：得分清零，生命恢复初始值
func (gs *GameState) Reset() {
	gs.Score = 0
	gs.Lives = gs.initialLives
}

// AddScore 增加得分，负值被忽略
func (gs *GameState) AddScore(points int) {
	if points > 0 {
		gs.Score += points
	}
}

// LoseLife 扣除一条生命（不低于 0），返回剩余生命数
func (gs *GameState) LoseLife() int {
	if gs.Lives > 0 {
		gs.Lives--
	}
	return gs.Lives
}

// GainLife 增加一条生命，已达上限时返回 false
func (gs *GameState) GainLife() bool {
	if gs.Lives >= gs.maxLives {
		return false
	}
	gs.Lives++
	return true
}

// RecordBest 一局结束时记录最高分并标记已玩过
// 返回是否刷新了最高分
func (gs *GameState) RecordBest() bool {
	gs.AlreadyPlayed = true
	if gs.Score > gs.BestScore {
		gs.BestScore = gs.Score
		return true
	}
	return false
}
