package components

import "github.com/decker502/invaders/pkg/types"

// PositionComponent 存储实体的世界坐标
// 世界坐标原点在左下角，y 轴向上；坐标指向实体中心
type PositionComponent struct {
	X float64
	Y float64
}

// Vec 返回坐标向量
func (p *PositionComponent) Vec() types.Vec2 {
	return types.Vec2{X: p.X, Y: p.Y}
}

// Translate 平移坐标
func (p *PositionComponent) Translate(v types.Vec2) {
	p.X += v.X
	p.Y += v.Y
}
