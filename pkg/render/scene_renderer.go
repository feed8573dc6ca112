package render

import (
	"fmt"
	"image/color"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// SceneRenderer рисует снапшот сессии. Сама сессия ему недоступна:
// всё, что он знает о мире, приходит в app.Snapshot.
type SceneRenderer struct {
	screenWidth  int
	screenHeight int
	fontFace     font.Face
	palette      Palette
	strokeImg    *ebiten.Image
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	pathImage    *ebiten.Image // предрендеренная дорога, сбрасывается при смене палитры
	pathKey      []geom.Point
}

func NewSceneRenderer(face font.Face, palette Palette, screenWidth, screenHeight int) *SceneRenderer {
	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)
	return &SceneRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontFace:     face,
		palette:      palette,
		strokeImg:    strokeImg,
		strokeVs:     make([]ebiten.Vertex, 0, 256),
		strokeIs:     make([]uint16, 0, 384),
	}
}

// Palette — текущая палитра.
func (r *SceneRenderer) Palette() Palette { return r.palette }

// SetPalette меняет палитру и сбрасывает кэш дороги.
func (r *SceneRenderer) SetPalette(p Palette) {
	r.palette = p
	r.pathImage = nil
}

// Draw рисует поле: фон, дорогу, башни, юниты, снаряды и HUD.
func (r *SceneRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(r.palette.Background)
	r.drawPath(screen, snap.Path)

	for _, d := range snap.Defenders {
		r.drawDefender(screen, d)
	}
	for _, u := range snap.Units {
		r.drawUnit(screen, u)
	}
	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y),
			float32(config.ProjectileRadius), r.palette.Projectile, true)
	}

	r.drawHUD(screen, snap)
}

func (r *SceneRenderer) drawPath(screen *ebiten.Image, points []geom.Point) {
	if len(points) < 2 {
		return
	}
	if r.pathImage == nil || !samePath(r.pathKey, points) {
		r.renderPathImage(points)
	}
	screen.DrawImage(r.pathImage, nil)
}

// renderPathImage рисует ломаную один раз; дальше кадр только копирует её.
func (r *SceneRenderer) renderPathImage(points []geom.Point) {
	r.pathImage = ebiten.NewImage(r.screenWidth, r.screenHeight)
	r.pathKey = append(r.pathKey[:0], points...)

	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    float32(config.PathStrokeWidth),
		LineJoin: vector.LineJoinRound,
	})
	c := r.palette.Path
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(c.R) / 255
		r.strokeVs[i].ColorG = float32(c.G) / 255
		r.strokeVs[i].ColorB = float32(c.B) / 255
		r.strokeVs[i].ColorA = float32(c.A) / 255
	}
	r.pathImage.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func samePath(a, b []geom.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (r *SceneRenderer) drawDefender(screen *ebiten.Image, d app.DefenderView) {
	x, y := float32(d.Position.X), float32(d.Position.Y)
	vector.StrokeCircle(screen, x, y, float32(d.Range), float32(config.RangeStrokeWidth), r.palette.Range, true)

	fill := r.palette.Tint(d.Visuals.Color)
	half := float32(config.DefenderHalfSize)
	vector.DrawFilledRect(screen, x-half, y-half, 2*half, 2*half, fill, true)
	vector.StrokeRect(screen, x-half, y-half, 2*half, 2*half, 2, DarkenColor(fill), true)
}

func (r *SceneRenderer) drawUnit(screen *ebiten.Image, u app.UnitView) {
	x, y := float32(u.Position.X), float32(u.Position.Y)
	vector.DrawFilledCircle(screen, x, y, float32(u.Visuals.Radius), r.palette.Tint(u.Visuals.Color), true)

	// у прочных юнитов подписываем оставшееся здоровье
	if u.Variant == defs.VariantDurable {
		r.drawCentered(screen, fmt.Sprint(u.HitPoints), int(x), int(y), r.palette.Text)
	}
}

func (r *SceneRenderer) drawHUD(screen *ebiten.Image, snap app.Snapshot) {
	fg := r.palette.Text
	text.Draw(screen, fmt.Sprintf("Lives: %d", snap.Lives), r.fontFace, 10, 30, fg)
	text.Draw(screen, fmt.Sprintf("Score: %d", snap.Score), r.fontFace, 10, 60, fg)
	text.Draw(screen, fmt.Sprintf("Wave: %d/%d", snap.DisplayWave, snap.MaxWave), r.fontFace, 10, 90, fg)
}

// DrawPreview рисует призрак башни в точке p: цвет архетипа, если точка
// допустима, иначе цвет ошибки.
func (r *SceneRenderer) DrawPreview(screen *ebiten.Image, p geom.Point, a defs.DefenderArchetype, valid bool) {
	fill, ring := r.palette.Tint(a.Visuals.Color), r.palette.Range
	if !valid {
		fill, ring = r.palette.Invalid, r.palette.Invalid
	}
	x, y := float32(p.X), float32(p.Y)
	vector.StrokeCircle(screen, x, y, float32(a.Range), float32(config.RangeStrokeWidth), ring, true)
	half := float32(config.DefenderHalfSize)
	vector.DrawFilledRect(screen, x-half, y-half, 2*half, 2*half, fill, true)
}

// DrawOverlay затемняет кадр (пауза, конец игры).
func (r *SceneRenderer) DrawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.screenWidth), float32(r.screenHeight), r.palette.Overlay, false)
}

// DrawBanner выводит крупную надпись по центру сверху на чёрной подложке.
func (r *SceneRenderer) DrawBanner(screen *ebiten.Image, msg string, clr color.RGBA) {
	bounds := text.BoundString(r.fontFace, msg)
	w, h := bounds.Dx(), bounds.Dy()
	x := r.screenWidth/2 - w/2
	y := 60 + h
	vector.DrawFilledRect(screen, float32(x-20), float32(y-h-10), float32(w+40), float32(h+20), color.Black, false)
	text.Draw(screen, msg, r.fontFace, x, y, clr)
}

func (r *SceneRenderer) drawCentered(screen *ebiten.Image, label string, cx, cy int, clr color.Color) {
	bounds := text.BoundString(r.fontFace, label)
	text.Draw(screen, label, r.fontFace, cx-bounds.Dx()/2, cy+bounds.Dy()/2, clr)
}
