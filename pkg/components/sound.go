package components

import "github.com/decker502/invaders/pkg/types"

// SoundComponent 发声实体
// AudioSystem 在 Started 为 false 时开始播放；PlayLoopUntilDespawn 的声音随实体清理而停止
type SoundComponent struct {
	Clip    types.SoundClip
	Mode    types.PlaybackMode
	Started bool
}
