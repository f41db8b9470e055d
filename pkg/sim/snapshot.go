package sim

import (
	"image/color"

	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/round"
	"github.com/decker502/invaders/pkg/types"
)

// EntityView 一个可绘制实体的只读视图（世界坐标，y 轴向上，X/Y 为中心）
type EntityView struct {
	ID     ecs.EntityID
	Kind   types.SpriteKind
	X, Y   float64
	Width  float64
	Height float64
	Color  color.RGBA
	// Alpha 0..1，淡出效果使用
	Alpha float64
	// Text 文字实体（护甲、得分）的内容
	Text string
	// Radius 爆炸效果的当前半径
	Radius float64
}

// Snapshot 呈现层每帧读取的模拟状态
type Snapshot struct {
	Mode  round.Mode
	Phase round.Phase
	Sub   round.Sub

	Entities []EntityView

	Score           int
	Lives           int
	BestScore       int
	AlreadyPlayed   bool
	AliensRemaining int
	Paused          bool

	Width  float64
	Height float64
}

// Snapshot 生成当前状态的只读视图，实体按创建顺序排列
func (s *Simulation) Snapshot() Snapshot {
	w := s.w
	ledger := s.state.Ledger

	snap := Snapshot{
		Mode:            s.machine.Mode(),
		Phase:           s.machine.Phase(),
		Sub:             s.machine.Sub(),
		Score:           ledger.Score,
		Lives:           ledger.Lives,
		BestScore:       ledger.BestScore,
		AlreadyPlayed:   ledger.AlreadyPlayed,
		AliensRemaining: w.AliensRemaining(),
		Paused:          s.machine.InGame() && s.machine.Phase() == round.PhasePaused,
		Width:           w.Width,
		Height:          w.Height,
	}

	for _, id := range ecs.Query(w.Sprites, w.Positions) {
		sprite, _ := w.Sprites.Get(id)
		pos, _ := w.Positions.Get(id)
		view := EntityView{
			ID:     id,
			Kind:   sprite.Kind,
			X:      pos.X,
			Y:      pos.Y,
			Width:  sprite.Width,
			Height: sprite.Height,
			Color:  sprite.Color,
			Alpha:  1,
		}

		if e, ok := w.Explosions.Get(id); ok {
			view.Radius = e.Radius()
			view.Alpha = e.Alpha()
		}
		if xp, ok := w.XpTexts.Get(id); ok {
			view.Text = xp.Text
			view.Alpha = xp.Alpha()
		}
		if armor, ok := w.ArmorTexts.Get(id); ok {
			view.Text = armor.Text
		}

		snap.Entities = append(snap.Entities, view)
	}

	return snap
}

// Count 指定种类的实体数量
func (s Snapshot) Count(kind types.SpriteKind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
