// Package termview draws simulation snapshots onto a tcell screen.
// The playfield is scaled down to the terminal grid; row 0 is the HUD.
package termview

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/geom"
)

const hudRows = 1

var (
	styleDefault    = tcell.StyleDefault
	stylePath       = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCursorOK   = tcell.StyleDefault.Reverse(true)
	styleCursorBad  = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	styleWin        = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLose       = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// View renders snapshots and maps terminal cells back to world points.
type View struct {
	screen        tcell.Screen
	width, height int
}

func New(screen tcell.Screen) *View {
	v := &View{screen: screen}
	v.Resize()
	return v
}

// Resize re-reads the screen size; call it on tcell.EventResize.
func (v *View) Resize() {
	v.width, v.height = v.screen.Size()
}

// Size is the terminal size seen at the last Resize.
func (v *View) Size() (int, int) {
	return v.width, v.height
}

func (v *View) fieldHeight() int {
	return max(v.height-hudRows, 1)
}

// ToCell maps a world point to a terminal cell.
func (v *View) ToCell(p geom.Point) (int, int) {
	x := int(p.X * float64(v.width) / config.ScreenWidth)
	y := hudRows + int(p.Y*float64(v.fieldHeight())/config.ScreenHeight)
	return clamp(x, 0, v.width-1), clamp(y, hudRows, v.height-1)
}

// ToWorld maps a terminal cell to the world point at the cell center.
func (v *View) ToWorld(x, y int) geom.Point {
	cw := float64(config.ScreenWidth) / float64(max(v.width, 1))
	ch := float64(config.ScreenHeight) / float64(v.fieldHeight())
	return geom.Pt((float64(x)+0.5)*cw, (float64(y-hudRows)+0.5)*ch)
}

// Cursor is the placement cursor drawn on top of the field.
type Cursor struct {
	X, Y  int
	Valid bool
	Shown bool
}

// Draw paints one frame and shows it.
func (v *View) Draw(snap app.Snapshot, cursor Cursor) {
	v.screen.Clear()

	v.drawPath(snap.Path)
	for _, d := range snap.Defenders {
		x, y := v.ToCell(d.Position)
		v.screen.SetContent(x, y, rune('A'+int(d.Archetype)), nil, styleFor(d.Visuals.Color))
	}
	for _, u := range snap.Units {
		x, y := v.ToCell(u.Position)
		v.screen.SetContent(x, y, unitGlyph(u), nil, styleFor(u.Visuals.Color).Bold(true))
	}
	for _, p := range snap.Projectiles {
		x, y := v.ToCell(p.Position)
		v.screen.SetContent(x, y, '*', nil, styleProjectile)
	}

	if cursor.Shown {
		style := styleCursorOK
		if !cursor.Valid {
			style = styleCursorBad
		}
		mainc, _, _, _ := v.screen.GetContent(cursor.X, cursor.Y)
		if mainc == 0 {
			mainc = ' '
		}
		v.screen.SetContent(cursor.X, cursor.Y, mainc, nil, style)
	}

	v.drawHUD(snap)
	switch {
	case snap.Won:
		v.drawCentered("YOU WIN  (r: restart, q: quit)", styleWin)
	case snap.Lost:
		v.drawCentered("YOU LOSE  (r: restart, q: quit)", styleLose)
	}

	v.screen.Show()
}

// drawPath samples every segment at sub-cell steps so diagonal
// segments stay connected.
func (v *View) drawPath(points []geom.Point) {
	step := float64(config.ScreenWidth) / float64(max(v.width, 1)) / 2
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		n := int(geom.Distance(a, b)/step) + 1
		for k := 0; k <= n; k++ {
			t := float64(k) / float64(n)
			x, y := v.ToCell(a.Add(b.Sub(a).Scale(t)))
			v.screen.SetContent(x, y, '·', nil, stylePath)
		}
	}
}

func (v *View) drawHUD(snap app.Snapshot) {
	hud := fmt.Sprintf("Lives %d  Score %d  Wave %d/%d", snap.Lives, snap.Score, snap.DisplayWave, snap.MaxWave)
	if snap.Paused {
		hud += "  [paused]"
	}
	v.putString(0, 0, hud, styleDefault)
}

func (v *View) drawCentered(msg string, style tcell.Style) {
	x := (v.width - len(msg)) / 2
	y := hudRows + v.fieldHeight()/2
	v.putString(max(x, 0), y, msg, style)
}

func (v *View) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= v.width {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func unitGlyph(u app.UnitView) rune {
	switch u.Variant {
	case defs.VariantFast:
		return '>'
	case defs.VariantDurable:
		if u.HitPoints > 0 && u.HitPoints < 10 {
			return rune('0' + u.HitPoints)
		}
		return 'D'
	default:
		return 'o'
	}
}

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
