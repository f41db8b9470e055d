package types

import (
	"fmt"
	"image/color"
)

// AlienType 外星人种类
// UFO 也作为一种外星人参与计分和碰撞
type AlienType int

const (
	AlienYellow AlienType = iota // 黄色，30 分
	AlienGreen                   // 绿色，20 分
	AlienRed                     // 红色，10 分
	AlienUfo                     // 神秘飞船，300 分
)

// 各类外星人分值
const (
	YellowAlienValue = 30
	GreenAlienValue  = 20
	RedAlienValue    = 10
	UfoValue         = 300
)

// Value 返回击杀该外星人获得的分数
func (a AlienType) Value() int {
	switch a {
	case AlienYellow:
		return YellowAlienValue
	case AlienGreen:
		return GreenAlienValue
	case AlienRed:
		return RedAlienValue
	case AlienUfo:
		return UfoValue
	}
	panic(fmt.Sprintf("types: invalid alien type %d", int(a)))
}

// Color 返回外星人（及其发射激光）的显示颜色
func (a AlienType) Color() color.RGBA {
	switch a {
	case AlienYellow:
		return color.RGBA{R: 255, G: 255, B: 0, A: 255}
	case AlienGreen:
		return color.RGBA{R: 0, G: 255, B: 0, A: 255}
	case AlienRed, AlienUfo:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

func (a AlienType) String() string {
	switch a {
	case AlienYellow:
		return "yellow"
	case AlienGreen:
		return "green"
	case AlienRed:
		return "red"
	case AlienUfo:
		return "ufo"
	}
	return fmt.Sprintf("AlienType(%d)", int(a))
}
