package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/types"
)

// DefaultKeyBindingsPath 内置按键绑定文件
const DefaultKeyBindingsPath = "data/keybindings.toml"

// KeyBindings 动作到按键名的映射
// 按键名使用 ebiten.Key 的文本形式，终端前端会自行转换
type KeyBindings struct {
	MoveLeft  []string `toml:"move_left"`
	MoveRight []string `toml:"move_right"`
	Fire      []string `toml:"fire"`
	Pause     []string `toml:"pause"`
	Quit      []string `toml:"quit"`
	Confirm   []string `toml:"confirm"`
	MenuUp    []string `toml:"menu_up"`
	MenuDown  []string `toml:"menu_down"`
}

// DefaultKeyBindings 默认按键，嵌入文件缺失字段时作为兜底
func DefaultKeyBindings() *KeyBindings {
	return &KeyBindings{
		MoveLeft:  []string{"A", "ArrowLeft"},
		MoveRight: []string{"D", "ArrowRight"},
		Fire:      []string{"Space"},
		Pause:     []string{"P"},
		Quit:      []string{"Q"},
		Confirm:   []string{"Enter", "Space"},
		MenuUp:    []string{"W", "ArrowUp"},
		MenuDown:  []string{"S", "ArrowDown"},
	}
}

// Keys 返回某个动作绑定的按键名
func (k *KeyBindings) Keys(a types.Action) []string {
	switch a {
	case types.ActionMoveLeft:
		return k.MoveLeft
	case types.ActionMoveRight:
		return k.MoveRight
	case types.ActionFire:
		return k.Fire
	case types.ActionPause:
		return k.Pause
	case types.ActionQuit:
		return k.Quit
	case types.ActionConfirm:
		return k.Confirm
	case types.ActionMenuUp:
		return k.MenuUp
	case types.ActionMenuDown:
		return k.MenuDown
	}
	return nil
}

// ParseKeyBindings 在默认值之上解析 TOML 按键绑定
// 文件中未出现的动作保留默认按键
func ParseKeyBindings(data []byte) (*KeyBindings, error) {
	kb := DefaultKeyBindings()
	if _, err := toml.Decode(string(data), kb); err != nil {
		return nil, fmt.Errorf("parse key bindings: %w", err)
	}
	for _, a := range types.AllActions {
		if len(kb.Keys(a)) == 0 {
			return nil, fmt.Errorf("parse key bindings: action %s has no keys", a)
		}
	}
	return kb, nil
}

// LoadKeyBindings 从文件系统加载按键绑定（-keys 参数）
func LoadKeyBindings(path string) (*KeyBindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key bindings %s: %w", path, err)
	}
	return ParseKeyBindings(data)
}

// LoadEmbeddedKeyBindings 加载内置按键绑定
func LoadEmbeddedKeyBindings() (*KeyBindings, error) {
	data, err := embedded.ReadFile(DefaultKeyBindingsPath)
	if err != nil {
		return nil, fmt.Errorf("read embedded key bindings: %w", err)
	}
	return ParseKeyBindings(data)
}
