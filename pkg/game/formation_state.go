package game

import (
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
)

// FormationState 外星人编队共享状态
//
// Previous/Next 为水平航向；Next 为 Down 时表示下一步是下移，
// 下移完成后 Next 翻转为 Previous 的反方向。
// 步进计时器周期只会缩短：碰边时除以加速系数，剩余较少时每次击杀乘以衰减系数。
type FormationState struct {
	Previous types.Direction
	Next     types.Direction
	Timer    *utils.Timer

	baseTick   float64
	marchIndex int
}

// NewFormationState 创建编队状态，航向向左
func NewFormationState(baseTick float64) *FormationState {
	return &FormationState{
		Previous: types.DirectionLeft,
		Next:     types.DirectionLeft,
		Timer:    utils.NewTimer(baseTick, utils.TimerRepeating),
		baseTick: baseTick,
	}
}

// Reset 新一波外星人出现时：周期恢复基础值，航向恢复向左
// 计时器的暂停状态保持不变
func (f *FormationState) Reset() {
	f.Previous = types.DirectionLeft
	f.Next = types.DirectionLeft
	f.Timer.SetDuration(f.baseTick)
	f.Timer.Reset()
}

// Period 当前步进周期（秒）
func (f *FormationState) Period() float64 {
	return f.Timer.Duration()
}

// SpeedUpOnEdge 碰边加速：周期除以 factor
func (f *FormationState) SpeedUpOnEdge(factor float64) {
	f.Timer.SetDuration(f.Timer.Duration() / factor)
}

// SpeedUpOnKill 击杀加速：周期乘以 factor
func (f *FormationState) SpeedUpOnKill(factor float64) {
	f.Timer.SetDuration(f.Timer.Duration() * factor)
}

// NextMarchClip 轮流返回四个步进音效
func (f *FormationState) NextMarchClip() types.SoundClip {
	clip := types.MarchClips[f.marchIndex]
	f.marchIndex = (f.marchIndex + 1) % len(types.MarchClips)
	return clip
}
