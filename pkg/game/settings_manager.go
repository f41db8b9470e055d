package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/decker502/invaders/pkg/types"
)

// Channel 音频通道，音量和开关按通道保存
type Channel int

const (
	ChannelMusic   Channel = iota // 背景音乐
	ChannelEffects                // 射击、爆炸、步进、UFO、按钮
)

func (c Channel) String() string {
	if c == ChannelMusic {
		return "music"
	}
	return "effects"
}

// ChannelOf 音效所属的通道
func ChannelOf(clip types.SoundClip) Channel {
	if clip == types.ClipMusic {
		return ChannelMusic
	}
	return ChannelEffects
}

// ChannelSettings 单个通道的偏好
type ChannelSettings struct {
	Volume  float64 `yaml:"volume"` // 0.0 ~ 1.0
	Enabled bool    `yaml:"enabled"`
}

// GameSettings 音频与显示偏好
// 只保存界面偏好，最高分只保留在内存中
type GameSettings struct {
	Music      ChannelSettings `yaml:"music"`
	Effects    ChannelSettings `yaml:"effects"`
	Fullscreen bool            `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Music:   ChannelSettings{Volume: 0.5, Enabled: true},
		Effects: ChannelSettings{Volume: 0.8, Enabled: true},
	}
}

func (s *GameSettings) channel(ch Channel) *ChannelSettings {
	if ch == ChannelMusic {
		return &s.Music
	}
	return &s.Effects
}

// Gain 通道的实际增益，关闭时为 0
func (s *GameSettings) Gain(ch Channel) float64 {
	c := s.channel(ch)
	if !c.Enabled {
		return 0
	}
	return c.Volume
}

func (s *GameSettings) normalize() {
	s.Music.Volume = clampVolume(s.Music.Volume)
	s.Effects.Volume = clampVolume(s.Effects.Volume)
}

// SettingsManager 偏好的加载与保存
//
// 存储在 gdata 的 "preferences/audio" 下，内容为 YAML。
// gdataManager 为 nil 时退化为纯内存设置（测试和无存储环境）。
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *GameSettings
	logger       *zap.Logger
}

const (
	settingsObject   = "preferences"
	settingsProperty = "audio"
)

// NewSettingsManager 创建设置管理器并尝试读取已保存的偏好
// 读取失败只记录警告并使用默认值
func NewSettingsManager(gdataManager *gdata.Manager, logger *zap.Logger) *SettingsManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
		logger:       logger.Named("settings"),
	}
	if err := sm.Load(); err != nil {
		sm.logger.Warn("failed to load settings, using defaults", zap.Error(err))
	}
	return sm
}

// OpenSettingsManager 打开 gdata 存储并创建设置管理器
// gdata 不可用时退回纯内存模式
func OpenSettingsManager(appName string, logger *zap.Logger) *SettingsManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("settings storage unavailable, preferences will not persist", zap.Error(err))
		gm = nil
	}
	return NewSettingsManager(gm, logger)
}

// Persistent 偏好是否会写入磁盘
func (sm *SettingsManager) Persistent() bool {
	return sm.gdataManager != nil
}

// Load 读取偏好，不存在时使用默认值
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.normalize()
	sm.settings = loaded
	sm.logger.Debug("settings loaded",
		zap.Float64("music", loaded.Gain(ChannelMusic)),
		zap.Float64("effects", loaded.Gain(ChannelEffects)))
	return nil
}

// Save 写入偏好，纯内存模式下什么也不做
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings 当前偏好
func (sm *SettingsManager) Settings() *GameSettings {
	return sm.settings
}

// Gain 通道的实际增益
func (sm *SettingsManager) Gain(ch Channel) float64 {
	return sm.settings.Gain(ch)
}

// SetVolume 设置通道音量，限制在 0.0 ~ 1.0，需调用 Save 持久化
func (sm *SettingsManager) SetVolume(ch Channel, volume float64) {
	sm.settings.channel(ch).Volume = clampVolume(volume)
}

// Toggle 切换通道开关并立即保存
func (sm *SettingsManager) Toggle(ch Channel) error {
	c := sm.settings.channel(ch)
	c.Enabled = !c.Enabled
	sm.logger.Info("audio channel toggled", zap.Stringer("channel", ch), zap.Bool("enabled", c.Enabled))
	return sm.Save()
}

// SetFullscreen 记录全屏偏好并立即保存
func (sm *SettingsManager) SetFullscreen(enabled bool) error {
	if sm.settings.Fullscreen == enabled {
		return nil
	}
	sm.settings.Fullscreen = enabled
	return sm.Save()
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
