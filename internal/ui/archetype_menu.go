package ui

import (
	"image/color"

	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ArchetypeMenu — колонка выбора башни у правого края экрана.
type ArchetypeMenu struct {
	Left     int
	Buttons  []Button
	IDs      []defs.ArchetypeID
	Selected defs.ArchetypeID
	HasPick  bool
}

// NewArchetypeMenu раскладывает кнопки всех архетипов сверху вниз.
func NewArchetypeMenu(screenWidth int) *ArchetypeMenu {
	left := screenWidth - config.MenuWidth
	m := &ArchetypeMenu{Left: left}
	for i, a := range defs.Archetypes {
		y := config.MenuTop + i*config.MenuItemSpacing
		m.Buttons = append(m.Buttons, NewButton(left+10, y, config.MenuWidth-20, config.MenuItemHeight, "Type "+a.ID.String(), a.Visuals.Color))
		m.IDs = append(m.IDs, a.ID)
	}
	return m
}

// Contains — клик пришёлся на колонку меню.
func (m *ArchetypeMenu) Contains(x, _ int) bool {
	return x >= m.Left
}

// Click выбирает архетип под курсором. Возвращает true, если попали в кнопку.
func (m *ArchetypeMenu) Click(x, y int) bool {
	for i, b := range m.Buttons {
		if b.Contains(x, y) {
			m.Selected = m.IDs[i]
			m.HasPick = true
			return true
		}
	}
	return false
}

// Take отдаёт выбранный архетип и сбрасывает выбор.
func (m *ArchetypeMenu) Take() (defs.ArchetypeID, bool) {
	id, ok := m.Selected, m.HasPick
	m.HasPick = false
	return id, ok
}

// Draw рисует фон колонки и кнопки; tint перекрашивает цвета архетипов.
func (m *ArchetypeMenu) Draw(screen *ebiten.Image, face font.Face, bg, fg color.RGBA, tint func(color.RGBA) color.RGBA) {
	h := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, float32(m.Left), 0, float32(config.MenuWidth), float32(h), bg, false)
	for i, b := range m.Buttons {
		b.BgColor = tint(b.BgColor)
		if m.HasPick && m.IDs[i] == m.Selected {
			vector.StrokeRect(screen, float32(b.Rect.Min.X-3), float32(b.Rect.Min.Y-3),
				float32(b.Rect.Dx()+6), float32(b.Rect.Dy()+6), 2, fg, true)
		}
		b.Draw(screen, face, fg)
	}
}
