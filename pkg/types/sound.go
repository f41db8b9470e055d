package types

// SoundClip 音效片段标识
// 具体音频数据由前端合成（见 internal/audio），模拟核心只关心"播放哪一个"
type SoundClip int

const (
	ClipShoot SoundClip = iota
	ClipExplosion
	ClipInvaderKilled
	ClipMarch1
	ClipMarch2
	ClipMarch3
	ClipMarch4
	ClipUfo
	ClipMusic
	ClipButtonHovered
	ClipButtonPressed
)

// MarchClips 编队步进音效，按顺序轮换
var MarchClips = [4]SoundClip{ClipMarch1, ClipMarch2, ClipMarch3, ClipMarch4}

// AllClips 所有音效，前端预合成时遍历
var AllClips = []SoundClip{
	ClipShoot, ClipExplosion, ClipInvaderKilled,
	ClipMarch1, ClipMarch2, ClipMarch3, ClipMarch4,
	ClipUfo, ClipMusic, ClipButtonHovered, ClipButtonPressed,
}

func (c SoundClip) String() string {
	switch c {
	case ClipShoot:
		return "shoot"
	case ClipExplosion:
		return "explosion"
	case ClipInvaderKilled:
		return "invaderkilled"
	case ClipMarch1:
		return "fastinvader1"
	case ClipMarch2:
		return "fastinvader2"
	case ClipMarch3:
		return "fastinvader3"
	case ClipMarch4:
		return "fastinvader4"
	case ClipUfo:
		return "ufo_highpitch"
	case ClipMusic:
		return "music"
	case ClipButtonHovered:
		return "hovered"
	case ClipButtonPressed:
		return "pressed"
	}
	return "unknown"
}

// PlaybackMode 播放模式
type PlaybackMode int

const (
	// PlayOnce 播放一次后结束，发声实体随之清理
	PlayOnce PlaybackMode = iota
	// PlayLoopUntilDespawn 循环播放，直到发声实体被清理（UFO 引擎声）
	PlayLoopUntilDespawn
	// PlayLoop 循环播放（背景音乐）
	PlayLoop
)

func (m PlaybackMode) String() string {
	switch m {
	case PlayOnce:
		return "once"
	case PlayLoopUntilDespawn:
		return "loop-until-despawn"
	case PlayLoop:
		return "loop"
	}
	return "unknown"
}

// SpriteKind 实体的外观类别，供前端选择绘制方式
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteAlien
	SpriteUfo
	SpriteLaser
	SpriteShelter
	SpriteFloor
	SpriteExplosion
	SpriteText
)

func (k SpriteKind) String() string {
	switch k {
	case SpritePlayer:
		return "player"
	case SpriteAlien:
		return "alien"
	case SpriteUfo:
		return "ufo"
	case SpriteLaser:
		return "laser"
	case SpriteShelter:
		return "shelter"
	case SpriteFloor:
		return "floor"
	case SpriteExplosion:
		return "explosion"
	case SpriteText:
		return "text"
	}
	return "unknown"
}
