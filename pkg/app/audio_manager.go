package app

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	internalaudio "github.com/decker502/invaders/internal/audio"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/sim"
	"github.com/decker502/invaders/pkg/types"
)

// AudioManager 用 ebiten 播放合成音效，实现 sim.Audio
//
// 音量按 game.ChannelOf 分通道读取，每次播放时读取一次，
// 中途修改只对之后的播放生效。
type AudioManager struct {
	context         *audio.Context
	bank            *internalaudio.Bank
	settingsManager *game.SettingsManager
	logger          *zap.Logger
}

// NewAudioManager 创建音频管理器
// sm 为 nil 时使用默认设置
func NewAudioManager(ctx *audio.Context, bank *internalaudio.Bank, sm *game.SettingsManager, logger *zap.Logger) *AudioManager {
	return &AudioManager{
		context:         ctx,
		bank:            bank,
		settingsManager: sm,
		logger:          logger.Named("audio"),
	}
}

// Play 开始播放音效
// 对应开关关闭或音效缺失时返回一个空 Voice
func (am *AudioManager) Play(clip types.SoundClip, mode types.PlaybackMode) sim.Voice {
	gain := am.gain(clip)
	if gain == 0 {
		return silentVoice{}
	}

	pcm := am.bank.PCM(clip)
	if len(pcm) == 0 {
		am.logger.Warn("sound not found", zap.Stringer("clip", clip))
		return silentVoice{}
	}

	var player *audio.Player
	if mode == types.PlayOnce {
		player = am.context.NewPlayerFromBytes(pcm)
	} else {
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		p, err := am.context.NewPlayer(loop)
		if err != nil {
			am.logger.Warn("failed to create loop player", zap.Stringer("clip", clip), zap.Error(err))
			return silentVoice{}
		}
		player = p
	}

	player.SetVolume(gain)
	player.Play()
	return &playerVoice{player: player}
}

func (am *AudioManager) gain(clip types.SoundClip) float64 {
	if am.settingsManager == nil {
		return game.DefaultSettings().Gain(game.ChannelOf(clip))
	}
	return am.settingsManager.Gain(game.ChannelOf(clip))
}

// playerVoice 包装 ebiten 的 audio.Player
type playerVoice struct {
	player *audio.Player
}

func (v *playerVoice) Stop() {
	v.player.Pause()
	_ = v.player.Close()
}

func (v *playerVoice) Pause()  { v.player.Pause() }
func (v *playerVoice) Resume() { v.player.Play() }

type silentVoice struct{}

func (silentVoice) Stop()   {}
func (silentVoice) Pause()  {}
func (silentVoice) Resume() {}
