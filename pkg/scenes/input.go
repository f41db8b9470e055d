package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/types"
)

// EbitenInput 把 ebiten 键盘状态映射为输入动作
type EbitenInput struct {
	keys map[types.Action][]ebiten.Key
}

// NewEbitenInput 按绑定配置创建输入适配器
// 按键名无法识别时返回错误
func NewEbitenInput(kb *config.KeyBindings) (*EbitenInput, error) {
	keys, err := ParseKeys(kb)
	if err != nil {
		return nil, err
	}
	return &EbitenInput{keys: keys}, nil
}

// ParseKeys 把按键名解析为 ebiten.Key
func ParseKeys(kb *config.KeyBindings) (map[types.Action][]ebiten.Key, error) {
	result := make(map[types.Action][]ebiten.Key, len(types.AllActions))
	for _, a := range types.AllActions {
		for _, name := range kb.Keys(a) {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("invalid key %q for %s: %w", name, a, err)
			}
			result[a] = append(result[a], k)
		}
	}
	return result, nil
}

// IsHeld 任一绑定按键处于按下状态
func (in *EbitenInput) IsHeld(a types.Action) bool {
	for _, k := range in.keys[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// JustPressed 任一绑定按键在本帧刚按下
func (in *EbitenInput) JustPressed(a types.Action) bool {
	for _, k := range in.keys[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
