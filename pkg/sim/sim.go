// Package sim 把世界、可变状态、各系统和回合状态机组装成一个按 tick 推进的模拟
//
// 模拟本身不依赖任何窗口或音频库：输入和音频通过端口接口注入，
// 呈现层（ebiten 或终端）每帧调用 Tick，再通过 Snapshot 读取需要绘制的内容。
package sim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/round"
	"github.com/decker502/invaders/pkg/systems"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/world"
)

// Input 输入端口：某个动作当前是否按住、本 tick 是否刚按下
type Input = systems.ActionState

// Audio 音频端口
type Audio = systems.AudioPlayer

// Voice 一个正在播放的声音
type Voice = systems.Voice

// Options 模拟的可选依赖
type Options struct {
	// Audio 为 nil 时静音
	Audio Audio
	// Logger 为 nil 时不输出日志
	Logger *zap.Logger
	// Random 返回 [0, 1) 的随机数，为 nil 时使用 math/rand
	Random func() float64
}

// Simulation 游戏模拟
type Simulation struct {
	w       *world.World
	state   *game.SimulationState
	machine *round.Machine
	logger  *zap.Logger
	quit    bool

	player    *systems.PlayerSystem
	formation *systems.FormationSystem
	floor     *systems.FloorSystem
	alienFire *systems.AlienFireSystem
	lasers    *systems.LaserSystem
	ufo       *systems.UfoSystem
	collision *systems.CollisionSystem
	hits      *systems.HitSystem
	lifetime  *systems.LifetimeSystem
	audio     *systems.AudioSystem
}

// New 创建处于菜单模式的模拟
func New(cfg *config.GameConfig, opts Options) (*Simulation, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	w := world.New(cfg)

	return &Simulation{
		w:         w,
		state:     game.NewSimulationState(cfg, opts.Random),
		machine:   round.NewMachine(),
		logger:    logger.Named("sim"),
		player:    systems.NewPlayerSystem(w, logger),
		formation: systems.NewFormationSystem(w, logger),
		floor:     systems.NewFloorSystem(w),
		alienFire: systems.NewAlienFireSystem(w),
		lasers:    systems.NewLaserSystem(w),
		ufo:       systems.NewUfoSystem(w, logger),
		collision: systems.NewCollisionSystem(w),
		hits:      systems.NewHitSystem(w, logger),
		lifetime:  systems.NewLifetimeSystem(w),
		audio:     systems.NewAudioSystem(w, opts.Audio, logger),
	}, nil
}

// Mode 当前模式
func (s *Simulation) Mode() round.Mode { return s.machine.Mode() }

// Phase 游戏中的阶段
func (s *Simulation) Phase() round.Phase { return s.machine.Phase() }

// Sub 转场子状态
func (s *Simulation) Sub() round.Sub { return s.machine.Sub() }

// Quitting 是否已收到退出请求
func (s *Simulation) Quitting() bool { return s.quit }

// World 供测试和调试读取的世界
func (s *Simulation) World() *world.World { return s.w }

// State 供测试和调试读取的可变状态
func (s *Simulation) State() *game.SimulationState { return s.state }

// StartGame 菜单中开始（或重新开始）一局
// 游戏中调用无效
func (s *Simulation) StartGame() {
	s.fire(round.EventStartGame)
}

// Quit 请求退出
func (s *Simulation) Quit() {
	s.fire(round.EventQuit)
}

// Tick 推进一个 tick
//
// 执行顺序:
//  1. 任意模式下按下 Quit 退出
//  2. 游戏中按下 Pause 切换暂停（转场期间被忽略）
//  3. Running: 玩家、编队、地面、外星人开火、激光、UFO、碰撞、命中结算、效果计时
//  4. Transition: 效果计时，转场计时结束时推进状态机
//  5. 始终: 音频、清理被销毁的实体、清空事件信箱
func (s *Simulation) Tick(dt float64, input Input) {
	if input.JustPressed(types.ActionQuit) {
		s.fire(round.EventQuit)
	}

	if s.machine.InGame() && input.JustPressed(types.ActionPause) {
		s.fire(round.EventTogglePause)
	}

	if s.machine.InGame() {
		switch s.machine.Phase() {
		case round.PhaseRunning:
			s.runSystems(dt, input)
		case round.PhaseTransition:
			s.lifetime.Update(dt)
			if s.state.Transition.Tick(dt).JustFinished() {
				s.fire(round.EventTransitionElapsed)
			}
		}
	}

	s.audio.Update()
	s.w.EM.RemoveMarkedEntities()
	s.state.Events.ClearAll()
}

func (s *Simulation) runSystems(dt float64, input Input) {
	s.player.Update(dt, input)
	s.formation.Update(dt, s.state)
	s.floor.Update(s.state)
	s.alienFire.Update(s.state)
	s.lasers.Update(dt, s.state)
	s.ufo.Update(dt, s.state)
	s.collision.Update(s.state)

	if outcome, ok := s.hits.Update(s.state); ok {
		s.fire(outcome)
	}

	s.lifetime.HandleLaserExplosions(s.state)
	s.lifetime.Update(dt)
}

// fire 把事件交给状态机并执行返回的副作用
func (s *Simulation) fire(e round.Event) {
	before := s.machine.String()
	effects := s.machine.Fire(e)
	if len(effects) == 0 {
		return
	}
	s.logger.Info("round transition",
		zap.Stringer("event", e),
		zap.String("from", before),
		zap.Stringer("to", s.machine))
	for _, effect := range effects {
		s.apply(effect)
	}
}

func (s *Simulation) apply(effect round.Effect) {
	st := s.state
	switch effect {
	case round.EffectResetRound:
		s.w.Clear()
		s.audio.StopAll()
		st.Events.ClearAll()
		st.Ledger.Reset()
		st.Formation.Reset()
		st.Formation.Timer.Unpause()
		st.UfoTimer.Reset()
		st.Transition.Reset()
		entities.NewFloorEntity(s.w)
		entities.NewPlayerEntity(s.w)
		s.spawnWave()
		entities.NewShelterEntities(s.w)
		entities.NewSoundEntity(s.w, types.ClipMusic, types.PlayLoop)
	case round.EffectPauseFormationTimer:
		st.Formation.Timer.Pause()
	case round.EffectResumeFormationTimer:
		st.Formation.Timer.Unpause()
	case round.EffectPauseSounds:
		s.audio.PauseAll()
	case round.EffectResumeSounds:
		s.audio.ResumeAll()
	case round.EffectResetTransitionTimer:
		st.Transition.Reset()
	case round.EffectDespawnLasers:
		s.w.DespawnAll(s.w.Lasers.Entities())
	case round.EffectRespawnPlayer:
		s.ensurePlayer()
		if s.w.AliensRemaining() == 0 {
			s.spawnWave()
		}
	case round.EffectRespawnWave:
		s.spawnWave()
		s.ensurePlayer()
	case round.EffectRecordBestScore:
		if st.Ledger.RecordBest() {
			s.logger.Info("new best score", zap.Int("score", st.Ledger.BestScore))
		}
	case round.EffectEnterMenu:
		s.w.Clear()
		s.audio.StopAll()
	case round.EffectExitApp:
		s.quit = true
	default:
		panic(fmt.Sprintf("sim: unknown effect %s", effect))
	}
}

func (s *Simulation) ensurePlayer() {
	if _, ok := s.w.Player(); !ok {
		entities.NewPlayerEntity(s.w)
	}
}

// spawnWave 生成新一波外星人并重置编队
// 配置在 New 中已校验，这里的错误属于程序缺陷
func (s *Simulation) spawnWave() {
	if _, err := entities.NewAlienWave(s.w); err != nil {
		panic(fmt.Sprintf("sim: %v", err))
	}
	s.state.Formation.Reset()
	s.logger.Debug("wave spawned", zap.Int("aliens", s.w.AliensRemaining()))
}
