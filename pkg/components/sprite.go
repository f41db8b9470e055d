package components

import (
	"image/color"

	"github.com/decker502/invaders/pkg/types"
)

// SpriteComponent 实体的外观提示
// 模拟核心不负责绘制，前端根据 Kind/尺寸/颜色选择绘制方式
type SpriteComponent struct {
	Kind   types.SpriteKind
	Width  float64
	Height float64
	Color  color.RGBA
}
