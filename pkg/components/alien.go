package components

import "github.com/decker502/invaders/pkg/types"

// AlienComponent 外星人标记及其种类
// UFO 同时拥有 AlienComponent(Type=AlienUfo) 和 UfoComponent
type AlienComponent struct {
	Type types.AlienType
}

// UfoComponent 神秘飞船，只沿水平方向飞行
type UfoComponent struct {
	Direction types.Direction
}

// PlayerComponent 玩家飞船标记
type PlayerComponent struct{}

// FloorComponent 地面线标记
type FloorComponent struct{}
