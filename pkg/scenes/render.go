package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/invaders/pkg/sim"
	"github.com/decker502/invaders/pkg/types"
)

// debugCharWidth/Height ebitenutil.DebugPrint 的字符尺寸
const (
	debugCharWidth  = 6
	debugCharHeight = 16
)

// ToScreen 把世界坐标（y 轴向上，中心点）转换为屏幕坐标（y 轴向下，左上角）
func ToScreen(x, y, w, h, screenHeight float64) (left, top float64) {
	return x - w/2, screenHeight - y - h/2
}

// fade 按透明度缩放颜色（预乘 alpha）
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// textWidth DebugPrint 文字的像素宽度
func textWidth(s string) float64 {
	return float64(len(s) * debugCharWidth)
}

// drawTextCentered 以 (x, y) 屏幕坐标为中心绘制文字
func drawTextCentered(screen *ebiten.Image, s string, x, y float64) {
	ebitenutil.DebugPrintAt(screen, s, int(x-textWidth(s)/2), int(y-debugCharHeight/2))
}

// drawEntity 绘制一个实体视图
func drawEntity(screen *ebiten.Image, e sim.EntityView, screenHeight float64) {
	switch e.Kind {
	case types.SpriteExplosion:
		_, top := ToScreen(e.X, e.Y, 0, 0, screenHeight)
		vector.DrawFilledCircle(screen, float32(e.X), float32(top), float32(e.Radius), fade(e.Color, e.Alpha), false)

	case types.SpriteText:
		_, top := ToScreen(e.X, e.Y, 0, 0, screenHeight)
		if e.Alpha < 0.05 {
			return
		}
		drawTextCentered(screen, e.Text, e.X, top)

	case types.SpriteShelter:
		left, top := ToScreen(e.X, e.Y, e.Width, e.Height, screenHeight)
		vector.StrokeRect(screen, float32(left), float32(top), float32(e.Width), float32(e.Height), 2, e.Color, false)

	case types.SpriteUfo:
		left, top := ToScreen(e.X, e.Y, e.Width, e.Height, screenHeight)
		vector.DrawFilledRect(screen, float32(left), float32(top+e.Height/2), float32(e.Width), float32(e.Height/2), e.Color, false)
		vector.DrawFilledCircle(screen, float32(e.X), float32(top+e.Height/2), float32(e.Height/3), e.Color, false)

	default:
		left, top := ToScreen(e.X, e.Y, e.Width, e.Height, screenHeight)
		vector.DrawFilledRect(screen, float32(left), float32(top), float32(e.Width), float32(e.Height), fade(e.Color, e.Alpha), false)
	}
}
