// Package types 定义共享的基础类型
package types

import "fmt"

// Direction 四方向枚举
// 激光只使用 Up/Down，UFO 只使用 Left/Right，
// 外星人编队的航向使用 Left/Right，Down 作为"即将下移并反向"的临时信号
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Mask 返回方向对应的单位向量（世界坐标，y 轴向上）
func (d Direction) Mask() Vec2 {
	switch d {
	case DirectionUp:
		return Vec2{X: 0, Y: 1}
	case DirectionDown:
		return Vec2{X: 0, Y: -1}
	case DirectionLeft:
		return Vec2{X: -1, Y: 0}
	case DirectionRight:
		return Vec2{X: 1, Y: 0}
	}
	panic(fmt.Sprintf("types: invalid direction %d", int(d)))
}

// IsHorizontal 是否为水平方向
func (d Direction) IsHorizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// IsVertical 是否为竖直方向
func (d Direction) IsVertical() bool {
	return d == DirectionUp || d == DirectionDown
}

// Opposite 返回相反方向
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	panic(fmt.Sprintf("types: invalid direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
