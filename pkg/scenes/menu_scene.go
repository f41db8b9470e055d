package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/sim"
	"github.com/decker502/invaders/pkg/types"
)

// MenuButton 菜单按钮
type MenuButton int

const (
	ButtonPlay MenuButton = iota
	ButtonQuit
)

var menuButtons = []MenuButton{ButtonPlay, ButtonQuit}

// menuModel 菜单的选择状态，与绘制分离
type menuModel struct {
	selected int
}

// move 上下移动选中项，到头后不循环，返回选中项是否改变
func (m *menuModel) move(delta int) bool {
	next := m.selected + delta
	if next < 0 || next >= len(menuButtons) {
		return false
	}
	m.selected = next
	return true
}

func (m *menuModel) current() MenuButton {
	return menuButtons[m.selected]
}

var (
	buttonColor      = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	buttonHoverColor = color.RGBA{R: 0, G: 120, B: 0, A: 255}
	buttonBorder     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

const (
	buttonWidth  = 200
	buttonHeight = 50
	buttonGap    = 20
)

// MenuScene 主菜单：开始（或重新开始）游戏、退出
// 玩过至少一局后显示上局得分和最高分
type MenuScene struct {
	sim    *sim.Simulation
	input  sim.Input
	audio  sim.Audio
	texts  *game.Texts
	sm     *SceneManager
	model  menuModel
	logger *zap.Logger
}

// NewMenuScene 创建菜单场景
func NewMenuScene(s *sim.Simulation, input sim.Input, audio sim.Audio, texts *game.Texts, sm *SceneManager, logger *zap.Logger) *MenuScene {
	return &MenuScene{
		sim:    s,
		input:  input,
		audio:  audio,
		texts:  texts,
		sm:     sm,
		logger: logger.Named("menu"),
	}
}

// Update 处理菜单选择，模拟照常推进（退出键、声音）
func (m *MenuScene) Update(deltaTime float64) {
	switch {
	case m.input.JustPressed(types.ActionMenuUp):
		m.hover(-1)
	case m.input.JustPressed(types.ActionMenuDown):
		m.hover(1)
	case m.input.JustPressed(types.ActionConfirm):
		m.press()
	}

	m.sim.Tick(deltaTime, m.input)
}

func (m *MenuScene) hover(delta int) {
	if m.model.move(delta) && m.audio != nil {
		m.audio.Play(types.ClipButtonHovered, types.PlayOnce)
	}
}

func (m *MenuScene) press() {
	if m.audio != nil {
		m.audio.Play(types.ClipButtonPressed, types.PlayOnce)
	}

	switch m.model.current() {
	case ButtonPlay:
		m.logger.Info("start game")
		m.sim.StartGame()
		m.sm.Load(SceneGame)
	case ButtonQuit:
		m.sim.Quit()
	}
}

// Draw 绘制标题、得分和按钮
func (m *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	snap := m.sim.Snapshot()
	cx := snap.Width / 2

	drawTextCentered(screen, "SPACE INVADERS", cx, 120)

	if snap.AlreadyPlayed {
		score, best := m.texts.MenuScoreLines(snap.Score, snap.BestScore)
		drawTextCentered(screen, score, cx, 180)
		drawTextCentered(screen, best, cx, 200)
	}

	labels := map[MenuButton]string{
		ButtonPlay: m.texts.PlayLabel(snap.AlreadyPlayed),
		ButtonQuit: "Quit",
	}
	y := snap.Height/2 - buttonHeight/2
	for i, b := range menuButtons {
		fill := buttonColor
		if i == m.model.selected {
			fill = buttonHoverColor
		}
		left := cx - buttonWidth/2
		vector.DrawFilledRect(screen, float32(left), float32(y), buttonWidth, buttonHeight, fill, false)
		vector.StrokeRect(screen, float32(left), float32(y), buttonWidth, buttonHeight, 2, buttonBorder, false)
		drawTextCentered(screen, labels[b], cx, y+buttonHeight/2)
		y += buttonHeight + buttonGap
	}
}
