package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	internalaudio "github.com/decker502/invaders/internal/audio"
	"github.com/decker502/invaders/pkg/sim"
	"github.com/decker502/invaders/pkg/types"
)

// SpeakerAudio 通过 beep speaker 播放合成音效，实现 sim.Audio
type SpeakerAudio struct {
	buffers map[types.SoundClip]*beep.Buffer
	mixer   *beep.Mixer
	gain    func(types.SoundClip) float64
}

// NewSpeakerAudio 合成全部音效并打开声卡
// gain 返回音效的线性增益，0 表示静音，为 nil 时按原音量播放
func NewSpeakerAudio(rate beep.SampleRate, gain func(types.SoundClip) float64) (*SpeakerAudio, error) {
	a := &SpeakerAudio{
		buffers: make(map[types.SoundClip]*beep.Buffer, len(types.AllClips)),
		mixer:   &beep.Mixer{},
		gain:    gain,
	}
	for _, clip := range types.AllClips {
		buf, err := internalaudio.Render(clip, rate)
		if err != nil {
			return nil, err
		}
		a.buffers[clip] = buf
	}

	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(a.mixer)
	return a, nil
}

// Play 实现 sim.Audio
func (a *SpeakerAudio) Play(clip types.SoundClip, mode types.PlaybackMode) sim.Voice {
	buf, ok := a.buffers[clip]
	g := 1.0
	if a.gain != nil {
		g = a.gain(clip)
	}
	if !ok || g == 0 {
		return speakerVoice{}
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if mode != types.PlayOnce {
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	ctrl := &beep.Ctrl{Streamer: s}
	vol := &effects.Volume{Streamer: ctrl, Base: 2, Volume: math.Log2(g)}

	speaker.Lock()
	a.mixer.Add(vol)
	speaker.Unlock()
	return speakerVoice{ctrl: ctrl}
}

// Close 停止所有声音并关闭声卡
func (a *SpeakerAudio) Close() {
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

type speakerVoice struct {
	ctrl *beep.Ctrl
}

// Stop 置空流，混音器会在下一次读取时移除它
func (v speakerVoice) Stop() {
	if v.ctrl == nil {
		return
	}
	speaker.Lock()
	v.ctrl.Streamer = nil
	speaker.Unlock()
}

func (v speakerVoice) Pause()  { v.setPaused(true) }
func (v speakerVoice) Resume() { v.setPaused(false) }

func (v speakerVoice) setPaused(p bool) {
	if v.ctrl == nil {
		return
	}
	speaker.Lock()
	v.ctrl.Paused = p
	speaker.Unlock()
}
