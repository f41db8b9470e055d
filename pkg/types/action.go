package types

// Action 玩家输入动作（与具体按键解耦，按键映射见 config.KeyBindings）
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionFire
	ActionPause
	ActionQuit
	ActionConfirm
	ActionMenuUp
	ActionMenuDown
)

// AllActions 所有输入动作，按定义顺序
var AllActions = []Action{
	ActionMoveLeft, ActionMoveRight, ActionFire, ActionPause,
	ActionQuit, ActionConfirm, ActionMenuUp, ActionMenuDown,
}

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionFire:
		return "fire"
	case ActionPause:
		return "pause"
	case ActionQuit:
		return "quit"
	case ActionConfirm:
		return "confirm"
	case ActionMenuUp:
		return "menu_up"
	case ActionMenuDown:
		return "menu_down"
	}
	return "unknown"
}
