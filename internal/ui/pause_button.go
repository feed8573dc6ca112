// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — квадратная кнопка паузы в правом нижнем углу.
type PauseButton struct {
	X, Y           float32 // левый верхний угол
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	BgColor        color.RGBA
	BarColor       color.RGBA
}

func NewPauseButton(x, y, size float32, bg, bar color.RGBA) *PauseButton {
	return &PauseButton{
		X:        x,
		Y:        y,
		Size:     size,
		BgColor:  bg,
		BarColor: bar,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := float32(1.0 + 0.1*math.Exp(-elapsed*8))
	size := b.Size * scale
	x := b.X - (size-b.Size)/2
	y := b.Y - (size-b.Size)/2

	vector.DrawFilledRect(screen, x, y, size, size, b.BgColor, true)

	if b.IsPaused {
		// треугольник (play)
		var path vector.Path
		path.MoveTo(x+size*0.3, y+size*0.2)
		path.LineTo(x+size*0.3, y+size*0.8)
		path.LineTo(x+size*0.8, y+size*0.5)
		path.Close()
		fillPath(screen, &path, b.BarColor)
		return
	}

	// две толстые полосы (pause)
	barW := size / 6
	barH := size * 0.6
	gap := size / 6
	top := y + (size-barH)/2
	vector.DrawFilledRect(screen, x+size/2-gap/2-barW, top, barW, barH, b.BarColor, true)
	vector.DrawFilledRect(screen, x+size/2+gap/2, top, barW, barH, b.BarColor, true)
}

func (b *PauseButton) IsClicked(mx, my float32) bool {
	return mx >= b.X && mx <= b.X+b.Size && my >= b.Y && my <= b.Y+b.Size
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
