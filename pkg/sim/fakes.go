package sim

import (
	"github.com/decker502/invaders/pkg/types"
)

// ScriptedInput 可编程的输入，用于测试和无头运行
//
// Hold/Release 控制按住状态；Press 让动作在下一次 Tick 中"刚按下"，
// 调用 EndTick 后清除。
type ScriptedInput struct {
	held    map[types.Action]bool
	pressed map[types.Action]bool
}

// NewScriptedInput 创建空输入
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{
		held:    make(map[types.Action]bool),
		pressed: make(map[types.Action]bool),
	}
}

// Hold 按住动作
func (in *ScriptedInput) Hold(a types.Action) {
	if !in.held[a] {
		in.pressed[a] = true
	}
	in.held[a] = true
}

// Release 松开动作
func (in *ScriptedInput) Release(a types.Action) {
	delete(in.held, a)
}

// Press 按下并在本 tick 后松开
func (in *ScriptedInput) Press(a types.Action) {
	in.pressed[a] = true
}

// EndTick 清除"刚按下"状态
func (in *ScriptedInput) EndTick() {
	clear(in.pressed)
}

// IsHeld 实现 Input
func (in *ScriptedInput) IsHeld(a types.Action) bool {
	return in.held[a] || in.pressed[a]
}

// JustPressed 实现 Input
func (in *ScriptedInput) JustPressed(a types.Action) bool {
	return in.pressed[a]
}

// RecordingVoice RecordingAudio 返回的声音
type RecordingVoice struct {
	Clip    types.SoundClip
	Mode    types.PlaybackMode
	Stopped bool
	Paused  bool
}

// Stop 实现 Voice
func (v *RecordingVoice) Stop() { v.Stopped = true }

// Pause 实现 Voice
func (v *RecordingVoice) Pause() { v.Paused = true }

// Resume 实现 Voice
func (v *RecordingVoice) Resume() { v.Paused = false }

// Playing 循环声音仍在播放（未停止且未暂停）
func (v *RecordingVoice) Playing() bool {
	return v.Mode != types.PlayOnce && !v.Stopped && !v.Paused
}

// RecordingAudio 记录所有播放请求的音频端口
type RecordingAudio struct {
	Voices []*RecordingVoice
}

// Play 实现 Audio
func (a *RecordingAudio) Play(clip types.SoundClip, mode types.PlaybackMode) Voice {
	v := &RecordingVoice{Clip: clip, Mode: mode}
	a.Voices = append(a.Voices, v)
	return v
}

// Count 某个音效被播放的次数
func (a *RecordingAudio) Count(clip types.SoundClip) int {
	n := 0
	for _, v := range a.Voices {
		if v.Clip == clip {
			n++
		}
	}
	return n
}

// Active 仍在播放的循环声音
func (a *RecordingAudio) Active() []*RecordingVoice {
	var out []*RecordingVoice
	for _, v := range a.Voices {
		if v.Playing() {
			out = append(out, v)
		}
	}
	return out
}
