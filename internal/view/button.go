// internal/view/button.go
package view

import (
	"image"
	"image/color"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var face = text.NewGoXFace(basicfont.Face7x13)

// Button — кликабельная кнопка в панели под полем.
type Button struct {
	Rect       image.Rectangle
	Label      string
	Action     app.Action
	BgColor    color.RGBA
	HoverColor color.RGBA
	TextColor  color.RGBA
}

func NewButton(rect image.Rectangle, label string, action app.Action) *Button {
	return &Button{
		Rect:       rect,
		Label:      label,
		Action:     action,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		TextColor:  config.ButtonTextColor,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку; во время поиска она затемнена.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int, disabled bool) {
	bg := b.BgColor
	if b.Contains(cursorX, cursorY) {
		bg = b.HoverColor
	}
	if disabled {
		bg = render.DarkenColor(bg)
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.GridLineColor, false)

	DrawText(screen, b.Label, b.Rect.Min.X+b.Rect.Dx()/2, b.Rect.Min.Y+b.Rect.Dy()/2, b.TextColor, true)
}

// DrawText draws s at (x, y); centered puts the middle of the text there.
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color, centered bool) {
	op := &text.DrawOptions{}
	if centered {
		w, h := text.Measure(s, face, 0)
		op.GeoM.Translate(float64(x)-w/2, float64(y)-h/2)
	} else {
		op.GeoM.Translate(float64(x), float64(y))
	}
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// ButtonBar lays out app.Actions centered in the bar that starts at top and
// spans width pixels.
func ButtonBar(width, top int) []*Button {
	n := len(app.Actions)
	total := n*config.ButtonWidth + (n-1)*config.ButtonSpacing
	x := (width - total) / 2
	y := top + (config.ButtonBarHeight-config.ButtonHeight)/2

	buttons := make([]*Button, 0, n)
	for _, a := range app.Actions {
		rect := image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
		buttons = append(buttons, NewButton(rect, a.String(), a))
		x += config.ButtonWidth + config.ButtonSpacing
	}
	return buttons
}
