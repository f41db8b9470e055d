package utils

import "math"

// TimerMode 计时器模式
type TimerMode int

const (
	// TimerOnce 单次计时器：到时后保持完成状态，直到 Reset
	TimerOnce TimerMode = iota
	// TimerRepeating 循环计时器：到时后把溢出时间带入下一周期
	TimerRepeating
)

// Timer 由累计时间驱动的计时器（非墙钟）
//
// 用于外星人编队步进、UFO 刷新、回合转场倒计时、爆炸/经验文字淡出。
// 调用方每个 tick 调用一次 Tick(dt)，然后用 JustFinished 判断本 tick 是否到时。
type Timer struct {
	duration      float64 // 周期（秒）
	elapsed       float64 // 当前周期内已过时间（秒）
	mode          TimerMode
	paused        bool
	finished      bool
	timesFinished int // 本 tick 完成的次数
}

// NewTimer 创建计时器
func NewTimer(duration float64, mode TimerMode) *Timer {
	return &Timer{duration: duration, mode: mode}
}

// Tick 推进计时器 dt 秒，返回自身以便链式调用
func (t *Timer) Tick(dt float64) *Timer {
	if t.paused {
		t.timesFinished = 0
		if t.mode == TimerRepeating {
			t.finished = false
		}
		return t
	}

	if t.mode == TimerOnce && t.finished {
		t.timesFinished = 0
		return t
	}

	t.elapsed += dt
	t.finished = t.elapsed >= t.duration

	if !t.finished {
		t.timesFinished = 0
		return t
	}

	if t.mode == TimerRepeating {
		if t.duration <= 0 {
			t.timesFinished = 1
			t.elapsed = 0
			return t
		}
		t.timesFinished = int(t.elapsed / t.duration)
		t.elapsed = math.Mod(t.elapsed, t.duration)
	} else {
		t.timesFinished = 1
		t.elapsed = t.duration
	}
	return t
}

// JustFinished 本 tick 是否刚刚到时
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinishedThisTick 本 tick 到时的次数（循环计时器在 dt 很大时可能大于 1）
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Finished 计时器是否处于完成状态
// 单次计时器到时后一直为 true；循环计时器只在到时的那个 tick 为 true
func (t *Timer) Finished() bool {
	return t.finished
}

// Elapsed 当前周期内已过时间（秒）
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Duration 周期（秒）
func (t *Timer) Duration() float64 {
	return t.duration
}

// SetDuration 修改周期，不重置已过时间
func (t *Timer) SetDuration(duration float64) {
	t.duration = duration
}

// Fraction 当前周期完成比例 [0, 1]
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	f := t.elapsed / t.duration
	if f > 1 {
		return 1
	}
	return f
}

// Remaining 当前周期剩余时间（秒）
func (t *Timer) Remaining() float64 {
	r := t.duration - t.elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Pause 暂停计时
func (t *Timer) Pause() {
	t.paused = true
}

// Unpause 恢复计时
func (t *Timer) Unpause() {
	t.paused = false
}

// Paused 是否已暂停
func (t *Timer) Paused() bool {
	return t.paused
}

// Reset 清零已过时间和完成状态，保留周期和暂停状态
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}
