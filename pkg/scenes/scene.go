package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个独立的画面（菜单、游戏）
// 同一时间只有一个场景的 Update 和 Draw 被调用
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为本帧经过的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// SceneID 场景标识
type SceneID int

const (
	SceneMenu SceneID = iota
	SceneGame
)

func (id SceneID) String() string {
	switch id {
	case SceneMenu:
		return "menu"
	case SceneGame:
		return "game"
	}
	return "unknown"
}
