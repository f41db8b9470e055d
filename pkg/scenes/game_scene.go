package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/round"
	"github.com/decker502/invaders/pkg/sim"
)

var pauseOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 160}

// GameScene 游戏画面：推进模拟并绘制快照
// 一局结束回到菜单模式时切换回菜单场景
type GameScene struct {
	sim   *sim.Simulation
	input sim.Input
	texts *game.Texts
	sm    *SceneManager
}

// NewGameScene 创建游戏场景
func NewGameScene(s *sim.Simulation, input sim.Input, texts *game.Texts, sm *SceneManager) *GameScene {
	return &GameScene{sim: s, input: input, texts: texts, sm: sm}
}

// Update 推进一个 tick
func (g *GameScene) Update(deltaTime float64) {
	g.sim.Tick(deltaTime, g.input)
	if g.sim.Mode() == round.ModeMenu {
		g.sm.Load(SceneMenu)
	}
}

// Draw 绘制全部实体、HUD 和暂停遮罩
func (g *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	snap := g.sim.Snapshot()

	for _, e := range snap.Entities {
		drawEntity(screen, e, snap.Height)
	}

	ebitenutil.DebugPrintAt(screen, g.texts.ScoreLine(snap.Score), 10, 10)
	aliens := g.texts.AliensLine(snap.AliensRemaining)
	ebitenutil.DebugPrintAt(screen, aliens, int(snap.Width/2-textWidth(aliens)/2), 10)
	lives := g.texts.LivesLine(snap.Lives)
	ebitenutil.DebugPrintAt(screen, lives, int(snap.Width-textWidth(lives)-10), 10)

	if snap.Paused {
		vector.DrawFilledRect(screen, 0, 0, float32(snap.Width), float32(snap.Height), pauseOverlay, false)
		drawTextCentered(screen, "PAUSE", snap.Width/2, snap.Height/2)
	}
}
