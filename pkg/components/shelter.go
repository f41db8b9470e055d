package components

import "github.com/decker502/invaders/pkg/ecs"

// ShelterComponent 掩体
type ShelterComponent struct {
	Armor int          // 剩余护甲，降到 0 时掩体被销毁
	Text  ecs.EntityID // 护甲数值文字（子实体）
}

// ArmorTextComponent 掩体上方的护甲数值文字
type ArmorTextComponent struct {
	Shelter ecs.EntityID
	Text    string
}
