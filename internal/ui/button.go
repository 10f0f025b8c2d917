// internal/ui/button.go
package ui

import (
	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button представляет собой кликабельную кнопку в панели под полем.
type Button struct {
	Rect       rl.Rectangle
	Action     app.Action
	Text       string
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	Font       rl.Font
	FontSize   float32
}

// NewButton создает новую кнопку.
func NewButton(rect rl.Rectangle, action app.Action, font rl.Font) *Button {
	return &Button{
		Rect:       rect,
		Action:     action,
		Text:       action.String(),
		TextColor:  colorToRL(config.ButtonTextColor),
		BgColor:    colorToRL(config.ButtonColor),
		HoverColor: colorToRL(config.ButtonHoverColor),
		Font:       font,
		FontSize:   20,
	}
}

// IsClicked проверяет, был ли сделан клик по кнопке.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Draw отрисовывает кнопку; во время поиска она затемнена.
func (b *Button) Draw(mousePos rl.Vector2, disabled bool) {
	bgColor := b.BgColor
	if rl.CheckCollisionPointRec(mousePos, b.Rect) {
		bgColor = b.HoverColor
	}
	if disabled {
		bgColor = rl.ColorBrightness(bgColor, -0.5)
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 2, colorToRL(config.GridLineColor))

	textSize := rl.MeasureTextEx(b.Font, b.Text, b.FontSize, 1)
	textX := b.Rect.X + (b.Rect.Width-textSize.X)/2
	textY := b.Rect.Y + (b.Rect.Height-textSize.Y)/2

	rl.DrawTextEx(b.Font, b.Text, rl.NewVector2(textX, textY), b.FontSize, 1, b.TextColor)
}

// ButtonBar раскладывает кнопки app.Actions по центру панели.
func ButtonBar(width, top int, font rl.Font) []*Button {
	n := len(app.Actions)
	total := n*config.ButtonWidth + (n-1)*config.ButtonSpacing
	x := float32((width - total) / 2)
	y := float32(top + (config.ButtonBarHeight-config.ButtonHeight)/2)

	buttons := make([]*Button, 0, n)
	for _, a := range app.Actions {
		rect := rl.NewRectangle(x, y, config.ButtonWidth, config.ButtonHeight)
		buttons = append(buttons, NewButton(rect, a, font))
		x += config.ButtonWidth + config.ButtonSpacing
	}
	return buttons
}
