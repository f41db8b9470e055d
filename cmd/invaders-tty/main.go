// invaders-tty 在终端中运行同一个游戏模拟
//
// 需要在仓库根目录运行（读取 data/ 下的配置），或通过 -root 指定。
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	internalaudio "github.com/decker502/invaders/internal/audio"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/logging"
	"github.com/decker502/invaders/pkg/round"
	"github.com/decker502/invaders/pkg/sim"
	"github.com/decker502/invaders/pkg/types"
)

type options struct {
	root       string
	keys       string
	lang       string
	logPath    string
	verbose    bool
	noAudio    bool
	holdWindow time.Duration
}

func main() {
	var opts options
	flag.StringVar(&opts.root, "root", ".", "包含 data/ 目录的路径")
	flag.StringVar(&opts.keys, "keys", "", "按键绑定文件（TOML），为空使用 data/keybindings.toml")
	flag.StringVar(&opts.lang, "lang", "en", "界面语言")
	flag.StringVar(&opts.logPath, "log", "invaders-tty.log", "日志文件（终端被游戏占用）")
	flag.BoolVar(&opts.verbose, "v", false, "启用调试日志")
	flag.BoolVar(&opts.noAudio, "no-audio", false, "关闭声音")
	flag.DurationVar(&opts.holdWindow, "hold", defaultHoldWindow, "按键保持时间")
	flag.Parse()

	level := "info"
	if opts.verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{Level: level, Format: "json", Output: opts.logPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(opts, logger); err != nil {
		logger.Error("exited with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options, logger *zap.Logger) error {
	embedded.Init(os.DirFS(opts.root))

	cfg, err := config.LoadEmbeddedGameConfig()
	if err != nil {
		return err
	}
	kb, err := config.LoadEmbeddedKeyBindings()
	if opts.keys != "" {
		kb, err = config.LoadKeyBindings(opts.keys)
	}
	if err != nil {
		return err
	}

	input, err := NewHoldInput(kb, opts.holdWindow)
	if err != nil {
		return err
	}

	var audio sim.Audio
	if !opts.noAudio {
		settings := game.OpenSettingsManager("invaders", logger)
		gain := func(clip types.SoundClip) float64 {
			return settings.Gain(game.ChannelOf(clip))
		}
		sa, err := NewSpeakerAudio(internalaudio.DefaultSampleRate, gain)
		if err != nil {
			logger.Warn("audio unavailable, running silent", zap.Error(err))
		} else {
			defer sa.Close()
			audio = sa
		}
	}

	s, err := sim.New(cfg, sim.Options{Audio: audio, Logger: logger})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	loop(screen, s, input, game.NewTexts(opts.lang), cfg.TickDelta())
	logger.Info("bye", zap.Int("bestScore", s.Snapshot().BestScore))
	return nil
}

// pollEvents 把终端事件转发到 events，直到屏幕关闭或 done 被关闭
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// loop 固定频率推进模拟，按键事件由单独的 goroutine 读取
func loop(screen tcell.Screen, s *sim.Simulation, input *HoldInput, texts *game.Texts, dt float64) {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer ticker.Stop()

	for !s.Quitting() {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					s.Quit()
					continue
				}
				input.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if s.Mode() == round.ModeMenu && input.JustPressed(types.ActionConfirm) {
				s.StartGame()
			}
			s.Tick(dt, input)
			input.EndTick()
			draw(screen, s.Snapshot(), texts)
		}
	}
}
