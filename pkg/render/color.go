// pkg/render/color.go
package render

import (
	"image/color"

	"go-path-defense/internal/config"
)

// Palette holds every color the renderer and the HUD draw with.
type Palette struct {
	Background  color.RGBA
	Path        color.RGBA
	Range       color.RGBA
	Projectile  color.RGBA
	Menu        color.RGBA
	Text        color.RGBA
	PauseButton color.RGBA
	PauseBar    color.RGBA
	Invalid     color.RGBA
	Accept      color.RGBA
	Cancel      color.RGBA
	Overlay     color.RGBA
	Win         color.RGBA
	Lose        color.RGBA
	Speed       []color.RGBA

	inverted bool
}

// DefaultPalette builds the palette from config.
func DefaultPalette() Palette {
	return Palette{
		Background:  config.BackgroundColor,
		Path:        config.PathColor,
		Range:       config.RangeColor,
		Projectile:  config.ProjectileColor,
		Menu:        config.MenuBackgroundColor,
		Text:        config.TextLightColor,
		PauseButton: config.PauseButtonColor,
		PauseBar:    config.PauseBarColor,
		Invalid:     config.InvalidColor,
		Accept:      config.AcceptColor,
		Cancel:      config.CancelColor,
		Overlay:     config.OverlayColor,
		Win:         config.WinColor,
		Lose:        config.LoseColor,
		Speed:       append([]color.RGBA(nil), config.SpeedButtonColors...),
	}
}

// Inverted returns the palette with every RGB channel flipped.
// Win/lose banners keep their colors, overlays keep their alpha.
func (p Palette) Inverted() Palette {
	q := p
	q.inverted = !p.inverted
	q.Background = InvertColor(p.Background)
	q.Path = InvertColor(p.Path)
	q.Range = InvertColor(p.Range)
	q.Projectile = InvertColor(p.Projectile)
	q.Menu = InvertColor(p.Menu)
	q.Text = InvertColor(p.Text)
	q.PauseButton = InvertColor(p.PauseButton)
	q.PauseBar = InvertColor(p.PauseBar)
	q.Invalid = InvertColor(p.Invalid)
	q.Speed = make([]color.RGBA, len(p.Speed))
	for i, c := range p.Speed {
		q.Speed[i] = InvertColor(c)
	}
	return q
}

// IsInverted reports whether Inverted was applied an odd number of times.
func (p Palette) IsInverted() bool { return p.inverted }

// Tint maps an entity color (archetype, variant) through the palette.
func (p Palette) Tint(c color.RGBA) color.RGBA {
	if p.inverted {
		return InvertColor(c)
	}
	return c
}

// InvertColor flips RGB and keeps alpha.
func InvertColor(c color.RGBA) color.RGBA {
	return color.RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
