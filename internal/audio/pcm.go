package audio

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gopxl/beep"

	"github.com/decker502/invaders/pkg/types"
)

// EncodePCM16 把有限长度的流渲染成 16 位小端立体声 PCM
// ebiten 的 audio.Context 直接接受这种格式
func EncodePCM16(s beep.Streamer) ([]byte, error) {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to render stream: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// Bank 预合成的全部音效 PCM 数据
type Bank struct {
	rate beep.SampleRate
	pcm  map[types.SoundClip][]byte
}

// NewBank 按采样率合成全部音效
func NewBank(rate beep.SampleRate) (*Bank, error) {
	b := &Bank{rate: rate, pcm: make(map[types.SoundClip][]byte, len(types.AllClips))}
	for _, clip := range types.AllClips {
		s, err := Clip(clip, rate)
		if err != nil {
			return nil, err
		}
		data, err := EncodePCM16(s)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", clip, err)
		}
		b.pcm[clip] = data
	}
	return b, nil
}

// PCM 返回音效的 PCM 数据，不存在时返回 nil
func (b *Bank) PCM(clip types.SoundClip) []byte {
	return b.pcm[clip]
}

// SampleRate 合成采样率
func (b *Bank) SampleRate() beep.SampleRate {
	return b.rate
}

// Duration 音效时长（秒）
func (b *Bank) Duration(clip types.SoundClip) float64 {
	return float64(len(b.pcm[clip])/4) / float64(b.rate)
}
