package main

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/types"
)

// defaultHoldWindow 终端没有按键抬起事件，按键重复间隔内视为仍按住
const defaultHoldWindow = 150 * time.Millisecond

// termKey 终端按键：特殊键或字符
type termKey struct {
	key  tcell.Key
	char rune
}

var namedKeys = map[string]termKey{
	"space":      {key: tcell.KeyRune, char: ' '},
	"enter":      {key: tcell.KeyEnter},
	"escape":     {key: tcell.KeyEscape},
	"arrowleft":  {key: tcell.KeyLeft},
	"arrowright": {key: tcell.KeyRight},
	"arrowup":    {key: tcell.KeyUp},
	"arrowdown":  {key: tcell.KeyDown},
	"left":       {key: tcell.KeyLeft},
	"right":      {key: tcell.KeyRight},
	"up":         {key: tcell.KeyUp},
	"down":       {key: tcell.KeyDown},
}

// parseTermKey 把按键名（与 ebiten 相同的写法）转换为终端按键
// 单个字母或数字按小写字符匹配
func parseTermKey(name string) (termKey, error) {
	lower := strings.ToLower(name)
	if k, ok := namedKeys[lower]; ok {
		return k, nil
	}
	if utf8.RuneCountInString(lower) == 1 {
		r, _ := utf8.DecodeRuneInString(lower)
		return termKey{key: tcell.KeyRune, char: r}, nil
	}
	if d, ok := strings.CutPrefix(lower, "digit"); ok && len(d) == 1 {
		return termKey{key: tcell.KeyRune, char: rune(d[0])}, nil
	}
	return termKey{}, fmt.Errorf("unsupported terminal key %q", name)
}

// HoldInput 用按键事件模拟"按住"状态
//
// 收到某动作的按键事件后，在 holdWindow 内 IsHeld 返回 true；
// JustPressed 只在事件之后的下一次 tick 返回 true。
type HoldInput struct {
	bindings   map[termKey][]types.Action
	lastSeen   map[types.Action]time.Time
	pressed    map[types.Action]bool
	holdWindow time.Duration
	now        func() time.Time
}

// NewHoldInput 按绑定配置创建终端输入
func NewHoldInput(kb *config.KeyBindings, holdWindow time.Duration) (*HoldInput, error) {
	in := &HoldInput{
		bindings:   make(map[termKey][]types.Action),
		lastSeen:   make(map[types.Action]time.Time),
		pressed:    make(map[types.Action]bool),
		holdWindow: holdWindow,
		now:        time.Now,
	}
	for _, a := range types.AllActions {
		for _, name := range kb.Keys(a) {
			k, err := parseTermKey(name)
			if err != nil {
				return nil, fmt.Errorf("binding for %s: %w", a, err)
			}
			in.bindings[k] = append(in.bindings[k], a)
		}
	}
	return in, nil
}

// HandleKey 记录一次按键事件，返回是否匹配了任何动作
func (in *HoldInput) HandleKey(ev *tcell.EventKey) bool {
	k := termKey{key: ev.Key()}
	if ev.Key() == tcell.KeyRune {
		k.char = []rune(strings.ToLower(string(ev.Rune())))[0]
	}
	return in.press(k)
}

func (in *HoldInput) press(k termKey) bool {
	actions := in.bindings[k]
	now := in.now()
	for _, a := range actions {
		if !in.heldAt(a, now) {
			in.pressed[a] = true
		}
		in.lastSeen[a] = now
	}
	return len(actions) > 0
}

// EndTick 清除"刚按下"状态
func (in *HoldInput) EndTick() {
	clear(in.pressed)
}

// IsHeld 实现 sim.Input
func (in *HoldInput) IsHeld(a types.Action) bool {
	return in.heldAt(a, in.now())
}

// JustPressed 实现 sim.Input
func (in *HoldInput) JustPressed(a types.Action) bool {
	return in.pressed[a]
}

func (in *HoldInput) heldAt(a types.Action, now time.Time) bool {
	t, ok := in.lastSeen[a]
	return ok && now.Sub(t) < in.holdWindow
}
