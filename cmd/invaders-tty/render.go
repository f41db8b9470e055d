package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/round"
	"github.com/decker502/invaders/pkg/sim"
	"github.com/decker502/invaders/pkg/types"
)

// grid 世界坐标到终端字符格的映射（第 0 行留给 HUD）
type grid struct {
	cols, rows    int
	width, height float64
}

// cell 世界坐标（y 轴向上）对应的字符格
func (g grid) cell(x, y float64) (col, row int) {
	col = int(math.Floor(x / g.width * float64(g.cols)))
	row = 1 + int(math.Floor((g.height-y)/g.height*float64(g.rows-1)))
	return col, row
}

// span 世界宽度对应的字符格数，至少 1
func (g grid) span(w float64) int {
	return max(1, int(math.Round(w/g.width*float64(g.cols))))
}

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func glyphFor(e sim.EntityView) rune {
	switch e.Kind {
	case types.SpritePlayer:
		return 'A'
	case types.SpriteAlien:
		return 'W'
	case types.SpriteUfo:
		return '='
	case types.SpriteLaser:
		return '|'
	case types.SpriteShelter:
		return '#'
	case types.SpriteFloor:
		return '_'
	case types.SpriteExplosion:
		return '*'
	}
	return '?'
}

func putString(screen tcell.Screen, col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(col+i, row, r, nil, style)
	}
}

func putCentered(screen tcell.Screen, cols, row int, s string, style tcell.Style) {
	putString(screen, (cols-len([]rune(s)))/2, row, s, style)
}

// draw 把快照绘制到终端
func draw(screen tcell.Screen, snap sim.Snapshot, texts *game.Texts) {
	screen.Clear()
	cols, rows := screen.Size()
	g := grid{cols: cols, rows: rows, width: snap.Width, height: snap.Height}
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	if snap.Mode == round.ModeMenu {
		putCentered(screen, cols, rows/3, "SPACE INVADERS", white)
		if snap.AlreadyPlayed {
			score, best := texts.MenuScoreLines(snap.Score, snap.BestScore)
			putCentered(screen, cols, rows/3+2, score, white)
			putCentered(screen, cols, rows/3+3, best, white)
		}
		putCentered(screen, cols, rows/2+2, "[Enter] "+texts.PlayLabel(snap.AlreadyPlayed)+"   [Q] Quit", white)
		screen.Show()
		return
	}

	for _, e := range snap.Entities {
		style := styleFor(e.Color)
		if e.Kind == types.SpriteText {
			if e.Alpha < 0.05 {
				continue
			}
			col, row := g.cell(e.X, e.Y)
			putString(screen, col-len(e.Text)/2, row, e.Text, white)
			continue
		}

		col, row := g.cell(e.X, e.Y)
		n := g.span(e.Width)
		glyph := glyphFor(e)
		for i := 0; i < n; i++ {
			screen.SetContent(col-n/2+i, row, glyph, nil, style)
		}
	}

	putString(screen, 0, 0, texts.ScoreLine(snap.Score), white)
	aliens := texts.AliensLine(snap.AliensRemaining)
	putCentered(screen, cols, 0, aliens, white)
	lives := texts.LivesLine(snap.Lives)
	putString(screen, cols-len(lives), 0, lives, white)

	if snap.Paused {
		putCentered(screen, cols, rows/2, "PAUSE", white.Reverse(true))
	}
	screen.Show()
}
