package entities

import (
	"image/color"
	"strconv"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/world"
)

var (
	shelterColor = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	textColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// ShelterY 掩体中心高度：两倍地面高度加一个玩家高度
func ShelterY(w *world.World) float64 {
	return 2*w.Config.Floor.Height + w.Config.Player.Size.Y
}

// NewShelterEntities 在玩家上方等间距创建掩体，每个掩体带一个护甲文字子实体
func NewShelterEntities(w *world.World) []ecs.EntityID {
	cfg := w.Config
	n := cfg.Shelters.Count
	if n == 0 {
		return nil
	}

	size := cfg.Shelters.Size
	gap := (w.Width - float64(n)*size.X) / float64(n+1)
	x := gap + size.X/2
	y := ShelterY(w)

	ids := make([]ecs.EntityID, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, NewShelterEntity(w, x, y))
		x += gap + size.X
	}
	return ids
}

// NewShelterEntity 创建单个掩体
func NewShelterEntity(w *world.World, x, y float64) ecs.EntityID {
	cfg := w.Config
	id := w.EM.CreateEntity()

	w.Positions.Set(id, &components.PositionComponent{X: x, Y: y})
	w.Sprites.Set(id, &components.SpriteComponent{
		Kind:   types.SpriteShelter,
		Width:  cfg.Shelters.Size.X,
		Height: cfg.Shelters.Size.Y,
		Color:  shelterColor,
	})

	text := w.EM.CreateEntity()
	w.Positions.Set(text, &components.PositionComponent{X: x, Y: y + cfg.Shelters.TextOffset})
	w.ArmorTexts.Set(text, &components.ArmorTextComponent{
		Shelter: id,
		Text:    strconv.Itoa(cfg.Shelters.Armor),
	})
	w.Sprites.Set(text, &components.SpriteComponent{Kind: types.SpriteText, Color: textColor})
	w.EM.AddChild(id, text)

	w.Shelters.Set(id, &components.ShelterComponent{Armor: cfg.Shelters.Armor, Text: text})

	return id
}
