// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton переключает множитель скорости симуляции по кругу.
type SpeedButton struct {
	X, Y           float32 // центр
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	Multipliers    []int
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, multipliers []int, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		Multipliers: multipliers,
	}
}

// Multiplier — сколько тиков прогонять за кадр.
func (b *SpeedButton) Multiplier() int {
	if len(b.Multipliers) == 0 {
		return 1
	}
	return b.Multipliers[b.CurrentState%len(b.Multipliers)]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// по треугольнику на каждую ступень скорости
	for i := 0; i <= b.CurrentState; i++ {
		shift := float32(i)*offset - float32(b.CurrentState)*offset/2
		var path vector.Path
		path.MoveTo(b.X-width/2+shift, b.Y-height/2)
		path.LineTo(b.X+width/2+shift, b.Y)
		path.LineTo(b.X-width/2+shift, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, clr)
	}
}

func (b *SpeedButton) IsClicked(mx, my float32) bool {
	dx := mx - b.X
	dy := my - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	n := len(b.Multipliers)
	if n == 0 {
		n = 1
	}
	b.CurrentState = (b.CurrentState + 1) % n
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}
