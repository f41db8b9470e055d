package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/decker502/invaders/pkg/types"
)

// DefaultSampleRate 合成使用的采样率
const DefaultSampleRate = beep.SampleRate(44100)

// 编队步进的四个低音（经典的下行四音）
var marchNotes = map[types.SoundClip]float64{
	types.ClipMarch1: 98.0,
	types.ClipMarch2: 87.3,
	types.ClipMarch3: 77.8,
	types.ClipMarch4: 73.4,
}

// 背景音乐的低音循环
var musicNotes = []float64{110.0, 98.0, 87.3, 82.4, 110.0, 98.0, 87.3, 73.4}

// Clip 合成指定音效，返回有限长度的流
func Clip(clip types.SoundClip, rate beep.SampleRate) (beep.Streamer, error) {
	switch clip {
	case types.ClipShoot:
		d := 180 * time.Millisecond
		s := NewEnvelope(NewSweep(1400, 300, d, WaveSquare, rate), d, 2*time.Millisecond, 120*time.Millisecond, rate)
		return newVolume(s, 0.3), nil

	case types.ClipExplosion:
		d := 450 * time.Millisecond
		s := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 5*time.Millisecond, 400*time.Millisecond, rate)
		return newVolume(s, 0.5), nil

	case types.ClipInvaderKilled:
		d := 200 * time.Millisecond
		s := NewEnvelope(NewSweep(900, 150, d, WaveSaw, rate), d, 2*time.Millisecond, 150*time.Millisecond, rate)
		return newVolume(s, 0.35), nil

	case types.ClipMarch1, types.ClipMarch2, types.ClipMarch3, types.ClipMarch4:
		return newVolume(tone(marchNotes[clip], 100*time.Millisecond, WaveSquare, rate), 0.4), nil

	case types.ClipUfo:
		// 一个上下滑动的周期，循环播放时首尾相接
		up := NewSweep(600, 900, 100*time.Millisecond, WaveTriangle, rate)
		down := NewSweep(900, 600, 100*time.Millisecond, WaveTriangle, rate)
		return newVolume(beep.Seq(up, down), 0.2), nil

	case types.ClipMusic:
		notes := make([]beep.Streamer, 0, len(musicNotes))
		for _, f := range musicNotes {
			notes = append(notes, tone(f, 250*time.Millisecond, WaveTriangle, rate))
		}
		return newVolume(beep.Seq(notes...), 0.25), nil

	case types.ClipButtonHovered, types.ClipButtonPressed:
		freq := 660.0
		d := 40 * time.Millisecond
		if clip == types.ClipButtonPressed {
			freq, d = 880, 70*time.Millisecond
		}
		sine, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s tone: %w", clip, err)
		}
		return newVolume(beep.Take(rate.N(d), sine), 0.3), nil
	}

	return nil, fmt.Errorf("unknown sound clip %d", int(clip))
}

// Render 把音效合成进内存缓冲区，便于重复播放和循环
func Render(clip types.SoundClip, rate beep.SampleRate) (*beep.Buffer, error) {
	s, err := Clip(clip, rate)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}
