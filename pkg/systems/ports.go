package systems

import "github.com/decker502/invaders/pkg/types"

// ActionState 玩家输入查询
type ActionState interface {
	// IsHeld 动作对应的按键当前是否按住
	IsHeld(a types.Action) bool
	// JustPressed 动作对应的按键是否在本 tick 刚按下
	JustPressed(a types.Action) bool
}

// Voice 正在播放的声音
type Voice interface {
	Stop()
	Pause()
	Resume()
}

// AudioPlayer 音频播放端口，由前端实现
type AudioPlayer interface {
	Play(clip types.SoundClip, mode types.PlaybackMode) Voice
}

// NopAudio 不发声的音频端口（--no-audio 或没有音频设备时使用）
type NopAudio struct{}

// Play 返回一个什么都不做的声音
func (NopAudio) Play(types.SoundClip, types.PlaybackMode) Voice { return nopVoice{} }

type nopVoice struct{}

func (nopVoice) Stop()   {}
func (nopVoice) Pause()  {}
func (nopVoice) Resume() {}
