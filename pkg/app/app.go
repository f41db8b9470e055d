// Package app 把模拟、场景和 ebiten 游戏循环组装成桌面应用
package app

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	internalaudio "github.com/decker502/invaders/internal/audio"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/scenes"
	"github.com/decker502/invaders/pkg/sim"
)

// Config 应用启动配置
type Config struct {
	// Game 玩法参数
	Game *config.GameConfig
	// Keys 按键绑定
	Keys *config.KeyBindings
	// Lang 界面文字的语言标签，如 "en"
	Lang string
	// Settings 音频偏好，可为 nil
	Settings *game.SettingsManager
	// Logger 可为 nil
	Logger *zap.Logger
}

// App 实现 ebiten.Game
type App struct {
	sceneManager *scenes.SceneManager
	sim          *sim.Simulation
	settings     *game.SettingsManager
	width        int
	height       int
	deltaTime    float64
	logger       *zap.Logger

	pendingWindowSizeReset   bool // 退出全屏后延迟恢复窗口大小
	windowSizeResetCountdown int
}

// NewApp 创建应用，进入菜单场景
//
// 调用此函数前，必须先调用 embedded.Init() 并加载好配置。
func NewApp(cfg Config) (*App, error) {
	if cfg.Game == nil || cfg.Keys == nil {
		return nil, errors.New("app: game config and key bindings are required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bank, err := internalaudio.NewBank(internalaudio.DefaultSampleRate)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize sounds: %w", err)
	}
	audioContext := audio.NewContext(int(bank.SampleRate()))
	audioManager := NewAudioManager(audioContext, bank, cfg.Settings, logger)

	input, err := scenes.NewEbitenInput(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("failed to create input: %w", err)
	}

	simulation, err := sim.New(cfg.Game, sim.Options{Audio: audioManager, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	texts := game.NewTexts(cfg.Lang)
	sceneManager := scenes.NewSceneManager(logger)
	sceneManager.SetSceneFactory(func(id scenes.SceneID) scenes.Scene {
		switch id {
		case scenes.SceneMenu:
			return scenes.NewMenuScene(simulation, input, audioManager, texts, sceneManager, logger)
		case scenes.SceneGame:
			return scenes.NewGameScene(simulation, input, texts, sceneManager)
		}
		return nil
	})
	sceneManager.Load(scenes.SceneMenu)

	logger.Info("app initialized",
		zap.Float64("width", cfg.Game.Width()),
		zap.Float64("height", cfg.Game.Height()),
		zap.Int("tickRate", cfg.Game.Timing.TickRate))

	return &App{
		sceneManager: sceneManager,
		sim:          simulation,
		settings:     cfg.Settings,
		width:        int(cfg.Game.Width()),
		height:       int(cfg.Game.Height()),
		deltaTime:    cfg.Game.TickDelta(),
		logger:       logger,
	}, nil
}

func (a *App) persistFullscreen(enabled bool) {
	if a.settings == nil {
		return
	}
	if err := a.settings.SetFullscreen(enabled); err != nil {
		a.logger.Warn("failed to save fullscreen preference", zap.Error(err))
	}
}

func (a *App) toggleChannel(ch game.Channel) {
	if a.settings == nil {
		return
	}
	if err := a.settings.Toggle(ch); err != nil {
		a.logger.Warn("failed to save audio preference", zap.Error(err))
	}
}

// Update 每个 tick 调用一次
// 模拟收到退出请求后返回 ebiten.Termination 结束游戏循环
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏，并记住偏好
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		}
		a.persistFullscreen(fullscreen)
	}

	// F9 / F10 开关音乐和音效，对之后播放的声音生效
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		a.toggleChannel(game.ChannelMusic)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		a.toggleChannel(game.ChannelEffects)
	}

	a.sceneManager.Update(a.deltaTime)

	if a.sim.Quitting() {
		a.logger.Info("quit requested")
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制当前场景
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 全屏时用黑边填充并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸固定为世界尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Size 窗口尺寸
func (a *App) Size() (int, int) {
	return a.width, a.height
}
