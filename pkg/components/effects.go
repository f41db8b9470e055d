package components

import "github.com/decker502/invaders/pkg/utils"

// ExplosionComponent 激光爆炸效果
// 半径在计时期间从 MinRadius 增长到 MaxRadius，同时淡出
type ExplosionComponent struct {
	Timer     *utils.Timer
	MinRadius float64
	MaxRadius float64
}

// Radius 当前半径
func (e *ExplosionComponent) Radius() float64 {
	return e.MinRadius + (e.MaxRadius-e.MinRadius)*e.Timer.Fraction()
}

// Alpha 当前透明度（1 不透明，0 完全透明）
func (e *ExplosionComponent) Alpha() float64 {
	return 1 - e.Timer.Fraction()
}

// XpTextComponent 击杀后浮现的 "+N XP" 文字
type XpTextComponent struct {
	Timer *utils.Timer
	Text  string
	Value int
}

// Alpha 当前透明度
func (x *XpTextComponent) Alpha() float64 {
	return 1 - x.Timer.Fraction()
}
