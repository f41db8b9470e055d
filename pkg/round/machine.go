// Package round 实现回合/转场状态机
//
// 状态机是纯函数式的：Fire 只修改自身状态并返回需要执行的副作用列表，
// 由 sim 包负责执行副作用。不依赖任何引擎调度器，可以单独测试。
package round

import "fmt"

// Mode 顶层模式
type Mode int

const (
	ModeMenu Mode = iota
	ModeInGame
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModeInGame:
		return "InGame"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Phase 游戏模式内的阶段
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseTransition
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseTransition:
		return "Transition"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Sub 转场子状态，只在 PhaseTransition 期间不为 SubUnset
type Sub int

const (
	SubUnset Sub = iota
	SubPlayerKilled
	SubAliensKilled
	SubGameOver
)

func (s Sub) String() string {
	switch s {
	case SubUnset:
		return "Unset"
	case SubPlayerKilled:
		return "PlayerKilled"
	case SubAliensKilled:
		return "AliensKilled"
	case SubGameOver:
		return "GameOver"
	}
	return fmt.Sprintf("Sub(%d)", int(s))
}

// Event 输入事件
type Event int

const (
	EventStartGame Event = iota
	EventTogglePause
	EventPlayerKilled
	EventAliensKilled
	EventGameOver
	EventTransitionElapsed
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventStartGame:
		return "StartGame"
	case EventTogglePause:
		return "TogglePause"
	case EventPlayerKilled:
		return "PlayerKilled"
	case EventAliensKilled:
		return "AliensKilled"
	case EventGameOver:
		return "GameOver"
	case EventTransitionElapsed:
		return "TransitionElapsed"
	case EventQuit:
		return "Quit"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// Effect 状态变化要求执行的副作用
type Effect int

const (
	// EffectResetRound 清空世界，重置账本（得分 0、生命初始值），生成玩家/编队/掩体/地面，开始背景音乐
	EffectResetRound Effect = iota
	EffectPauseFormationTimer
	EffectResumeFormationTimer
	EffectPauseSounds
	EffectResumeSounds
	EffectResetTransitionTimer
	EffectDespawnLasers
	EffectRespawnPlayer
	EffectRespawnWave
	EffectRecordBestScore
	// EffectEnterMenu 清空游戏实体并停止所有声音
	EffectEnterMenu
	EffectExitApp
)

func (e Effect) String() string {
	switch e {
	case EffectResetRound:
		return "ResetRound"
	case EffectPauseFormationTimer:
		return "PauseFormationTimer"
	case EffectResumeFormationTimer:
		return "ResumeFormationTimer"
	case EffectPauseSounds:
		return "PauseSounds"
	case EffectResumeSounds:
		return "ResumeSounds"
	case EffectResetTransitionTimer:
		return "ResetTransitionTimer"
	case EffectDespawnLasers:
		return "DespawnLasers"
	case EffectRespawnPlayer:
		return "RespawnPlayer"
	case EffectRespawnWave:
		return "RespawnWave"
	case EffectRecordBestScore:
		return "RecordBestScore"
	case EffectEnterMenu:
		return "EnterMenu"
	case EffectExitApp:
		return "ExitApp"
	}
	return fmt.Sprintf("Effect(%d)", int(e))
}

// Machine 回合状态机
type Machine struct {
	mode  Mode
	phase Phase
	sub   Sub
}

// NewMachine 创建处于菜单模式的状态机
func NewMachine() *Machine {
	return &Machine{mode: ModeMenu, phase: PhaseRunning, sub: SubUnset}
}

// Mode 当前模式
func (m *Machine) Mode() Mode { return m.mode }

// Phase 当前阶段（菜单模式下无意义，固定为 Running）
func (m *Machine) Phase() Phase { return m.phase }

// Sub 当前转场子状态
func (m *Machine) Sub() Sub { return m.sub }

// InGame 是否处于游戏模式
func (m *Machine) InGame() bool { return m.mode == ModeInGame }

// Running 游戏是否正在进行（非暂停、非转场）
func (m *Machine) Running() bool {
	return m.mode == ModeInGame && m.phase == PhaseRunning
}

// String 便于日志输出
func (m *Machine) String() string {
	if m.mode == ModeMenu {
		return "Menu"
	}
	if m.phase == PhaseTransition {
		return fmt.Sprintf("InGame/Transition/%s", m.sub)
	}
	return fmt.Sprintf("InGame/%s", m.phase)
}

// Fire 处理一个事件，返回需要执行的副作用
// 当前状态下不合法的事件被忽略，返回 nil
func (m *Machine) Fire(e Event) []Effect {
	if e == EventQuit {
		return []Effect{EffectExitApp}
	}

	if m.mode == ModeMenu {
		if e != EventStartGame {
			return nil
		}
		m.mode = ModeInGame
		m.phase = PhaseRunning
		m.sub = SubUnset
		return []Effect{EffectResetRound}
	}

	switch m.phase {
	case PhaseRunning:
		return m.fireRunning(e)
	case PhasePaused:
		if e == EventTogglePause {
			m.phase = PhaseRunning
			return []Effect{EffectResumeFormationTimer, EffectResumeSounds}
		}
	case PhaseTransition:
		if e == EventTransitionElapsed {
			return m.finishTransition()
		}
	}
	return nil
}

func (m *Machine) fireRunning(e Event) []Effect {
	switch e {
	case EventTogglePause:
		m.phase = PhasePaused
		return []Effect{EffectPauseFormationTimer, EffectPauseSounds}
	case EventPlayerKilled:
		return m.enterTransition(SubPlayerKilled)
	case EventAliensKilled:
		return m.enterTransition(SubAliensKilled)
	case EventGameOver:
		return m.enterTransition(SubGameOver)
	}
	return nil
}

func (m *Machine) enterTransition(sub Sub) []Effect {
	m.phase = PhaseTransition
	m.sub = sub
	return []Effect{EffectResetTransitionTimer}
}

// finishTransition 转场倒计时结束
func (m *Machine) finishTransition() []Effect {
	sub := m.sub
	m.sub = SubUnset

	switch sub {
	case SubPlayerKilled:
		m.phase = PhaseRunning
		return []Effect{EffectDespawnLasers, EffectRespawnPlayer}
	case SubAliensKilled:
		m.phase = PhaseRunning
		return []Effect{EffectDespawnLasers, EffectRespawnWave}
	case SubGameOver:
		m.mode = ModeMenu
		m.phase = PhaseRunning
		return []Effect{EffectRecordBestScore, EffectEnterMenu}
	}
	panic(fmt.Sprintf("round: transition elapsed without a sub-state (%s)", m))
}
