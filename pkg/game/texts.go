package game

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Texts 界面文字格式化（数字带千分位）
type Texts struct {
	printer *message.Printer
}

// NewTexts 创建指定语言的文字格式化器，无法识别的语言使用英语
func NewTexts(lang string) *Texts {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Texts{printer: message.NewPrinter(tag)}
}

// Number 格式化整数，如 12345 -> "12,345"
func (t *Texts) Number(n int) string {
	return t.printer.Sprintf("%d", n)
}

// ScoreLine HUD 得分
func (t *Texts) ScoreLine(score int) string {
	return "SCORE=" + t.Number(score)
}

// AliensLine HUD 剩余外星人
func (t *Texts) AliensLine(n int) string {
	return "ALIENS=" + t.Number(n)
}

// LivesLine HUD 剩余生命
func (t *Texts) LivesLine(lives int) string {
	return "LIVES=" + t.Number(lives)
}

// MenuScoreLines 菜单上的本局得分与最高分
func (t *Texts) MenuScoreLines(score, best int) (string, string) {
	return "Score: " + t.Number(score), "Best score: " + t.Number(best)
}

// PlayLabel 菜单开始按钮文字，玩过一局后显示 Replay
func (t *Texts) PlayLabel(alreadyPlayed bool) string {
	if alreadyPlayed {
		return "Replay"
	}
	return "Play"
}
