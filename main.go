package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/app"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/logging"
)

func main() {
	verbose := flag.Bool("v", false, "启用调试日志")
	keysPath := flag.String("keys", "", "按键绑定文件（TOML），为空使用内置绑定")
	lang := flag.String("lang", "en", "界面语言")
	logFormat := flag.String("log-format", "console", "日志格式：console 或 json")
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{Level: level, Format: *logFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, *keysPath, *lang); err != nil {
		logger.Fatal("game exited with error", zap.Error(err))
	}
}

func run(logger *zap.Logger, keysPath, lang string) error {
	embedded.Init(dataFS)

	gameConfig, err := config.LoadEmbeddedGameConfig()
	if err != nil {
		return err
	}

	keys, err := loadKeys(keysPath)
	if err != nil {
		return err
	}

	settings := game.OpenSettingsManager("invaders", logger)

	a, err := app.NewApp(app.Config{
		Game:     gameConfig,
		Keys:     keys,
		Lang:     lang,
		Settings: settings,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	w, h := a.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetTPS(gameConfig.Timing.TickRate)
	ebiten.SetFullscreen(settings.Settings().Fullscreen)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func loadKeys(path string) (*config.KeyBindings, error) {
	if path == "" {
		return config.LoadEmbeddedKeyBindings()
	}
	return config.LoadKeyBindings(path)
}
