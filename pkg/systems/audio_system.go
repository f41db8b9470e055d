package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/world"
)

// AudioSystem 把发声实体转换为音频端口上的播放
//
// PlayOnce 的声音开始播放后立即清理发声实体（即发即忘）；
// 循环声音记录其 Voice，发声实体被销毁时停止播放，暂停时一起暂停。
type AudioSystem struct {
	w      *world.World
	audio  AudioPlayer
	voices map[ecs.EntityID]Voice
	paused bool
	logger *zap.Logger
}

// NewAudioSystem 创建音频系统，audio 为 nil 时不发声
func NewAudioSystem(w *world.World, audio AudioPlayer, logger *zap.Logger) *AudioSystem {
	if audio == nil {
		audio = NopAudio{}
	}
	return &AudioSystem{
		w:      w,
		audio:  audio,
		voices: make(map[ecs.EntityID]Voice),
		logger: logger.Named("audio"),
	}
}

// Update 开始新声音，停止发声实体已销毁的循环声音
func (s *AudioSystem) Update() {
	for _, id := range s.w.Sounds.Entities() {
		sound, _ := s.w.Sounds.Get(id)
		if sound.Started {
			continue
		}
		sound.Started = true

		voice := s.audio.Play(sound.Clip, sound.Mode)
		if sound.Mode == types.PlayOnce {
			s.w.Despawn(id)
			continue
		}
		if s.paused {
			voice.Pause()
		}
		s.voices[id] = voice
		s.logger.Debug("loop started", zap.Stringer("clip", sound.Clip))
	}

	for id, voice := range s.voices {
		if !s.w.EM.IsAlive(id) {
			voice.Stop()
			delete(s.voices, id)
		}
	}
}

// PauseAll 暂停所有循环声音
func (s *AudioSystem) PauseAll() {
	s.paused = true
	for _, v := range s.voices {
		v.Pause()
	}
}

// ResumeAll 恢复所有循环声音
func (s *AudioSystem) ResumeAll() {
	s.paused = false
	for _, v := range s.voices {
		v.Resume()
	}
}

// StopAll 停止所有循环声音（离开游戏模式时）
func (s *AudioSystem) StopAll() {
	s.paused = false
	for id, v := range s.voices {
		v.Stop()
		delete(s.voices, id)
	}
}

// ActiveVoices 正在循环播放的声音数量
func (s *AudioSystem) ActiveVoices() int {
	return len(s.voices)
}
