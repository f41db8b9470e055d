package components

import "github.com/decker502/invaders/pkg/types"

// Faction 激光所属阵营
type Faction int

const (
	FactionPlayer Faction = iota
	FactionAlien
)

// LaserComponent 激光（子弹）
// Direction 只能是 Up（玩家）或 Down（外星人）
type LaserComponent struct {
	Direction types.Direction
	Speed     float64 // 像素/秒
	Owner     Faction
	AlienType types.AlienType // 外星人发射时记录其种类，用于颜色
}
