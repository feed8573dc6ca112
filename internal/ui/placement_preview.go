package ui

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// PreviewAction — результат клика по превью.
type PreviewAction int

const (
	PreviewNone PreviewAction = iota
	PreviewAccept
	PreviewCancel
	PreviewGrab // клик по самой башне: начать перетаскивание
)

// PlacementPreview — призрак башни, который игрок двигает до подтверждения.
type PlacementPreview struct {
	Active    bool
	Dragging  bool
	Point     geom.Point
	Archetype defs.ArchetypeID
}

// Start открывает превью в точке клика.
func (p *PlacementPreview) Start(at geom.Point, a defs.ArchetypeID) {
	p.Active = true
	p.Dragging = true
	p.Point = at
	p.Archetype = a
}

// Close убирает превью.
func (p *PlacementPreview) Close() {
	*p = PlacementPreview{}
}

// Buttons — кнопки «Accept» справа и «Cancel» слева от призрака.
func (p *PlacementPreview) Buttons() (accept, cancel Button) {
	x, y := int(p.Point.X), int(p.Point.Y)
	accept = NewButton(x+50, y-30, 80, 40, "Accept", config.AcceptColor)
	cancel = NewButton(x-130, y-30, 80, 40, "Cancel", config.CancelColor)
	return accept, cancel
}

// Click разбирает клик при открытом превью.
func (p *PlacementPreview) Click(x, y int) PreviewAction {
	if !p.Active {
		return PreviewNone
	}
	accept, cancel := p.Buttons()
	switch {
	case accept.Contains(x, y):
		return PreviewAccept
	case cancel.Contains(x, y):
		return PreviewCancel
	}
	half := config.DefenderHalfSize
	if float64(x) >= p.Point.X-half && float64(x) <= p.Point.X+half &&
		float64(y) >= p.Point.Y-half && float64(y) <= p.Point.Y+half {
		p.Dragging = true
		return PreviewGrab
	}
	return PreviewNone
}

// Drag двигает призрак за курсором, пока кнопка зажата.
func (p *PlacementPreview) Drag(x, y int) {
	if p.Active && p.Dragging {
		p.Point = geom.Pt(float64(x), float64(y))
	}
}

// DrawButtons рисует кнопки подтверждения; сам призрак рисует рендерер сцены.
func (p *PlacementPreview) DrawButtons(screen *ebiten.Image, face font.Face) {
	if !p.Active {
		return
	}
	accept, cancel := p.Buttons()
	accept.Draw(screen, face, config.TextLightColor)
	cancel.Draw(screen, face, config.TextLightColor)
}
