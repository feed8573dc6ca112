// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную прямоугольную кнопку.
type Button struct {
	Rect    image.Rectangle
	Text    string
	BgColor color.RGBA
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h int, label string, bg color.RGBA) Button {
	return Button{Rect: image.Rect(x, y, x+w, y+h), Text: label, BgColor: bg}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку с подписью по центру.
func (b Button) Draw(screen *ebiten.Image, face font.Face, fg color.Color) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), b.BgColor, true)
	if b.Text == "" {
		return
	}
	bounds := text.BoundString(face, b.Text)
	tx := r.Min.X + (r.Dx()-bounds.Dx())/2
	ty := r.Min.Y + (r.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, face, tx, ty, fg)
}
