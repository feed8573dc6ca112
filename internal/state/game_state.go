// internal/state/game_state.go
package state

import (
	"time"

	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/ui"
	"go-path-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — основное состояние: идёт симуляция, игрок ставит башни.
type GameState struct {
	sm            *StateMachine
	env           *Env
	menu          *ui.ArchetypeMenu
	preview       ui.PlacementPreview
	pauseButton   *ui.PauseButton
	speedButton   *ui.SpeedButton
	waveIndicator *ui.WaveIndicator
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, env *Env) *GameState {
	size := float32(config.PauseButtonSize)
	margin := float32(config.PauseButtonMargin)
	return &GameState{
		sm:   sm,
		env:  env,
		menu: ui.NewArchetypeMenu(config.ScreenWidth),
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth)-size-margin,
			float32(config.ScreenHeight)-size-margin,
			size, config.PauseButtonColor, config.PauseBarColor),
		speedButton: ui.NewSpeedButton(
			float32(config.ScreenWidth)-size-margin-60,
			float32(config.ScreenHeight)-size/2-margin,
			20, config.SpeedMultipliers, config.SpeedButtonColors),
		waveIndicator: ui.NewWaveIndicator(10, 120),
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	game := g.env.Game

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if time.Since(g.lastClickTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			g.lastClickTime = time.Now()
			if g.handleClick(x, y) {
				return
			}
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.preview.Dragging = false
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.preview.Drag(ebiten.CursorPosition())
	}

	for i := 0; i < g.speedButton.Multiplier(); i++ {
		g.env.Metrics.ObserveTick(game.AdvanceTick)
	}

	snap := game.Snapshot()
	g.env.Metrics.SetSession(snap.Lives, snap.Score, snap.Wave, len(snap.Units), len(snap.Projectiles))

	if snap.Won || snap.Lost {
		g.sm.SetState(NewResultState(g.sm, g.env, snap.Won))
	}
}

// handleClick разбирает клик; true — состояние сменилось.
func (g *GameState) handleClick(x, y int) bool {
	mx, my := float32(x), float32(y)
	switch {
	case g.pauseButton.IsClicked(mx, my):
		g.pause()
		return true
	case g.speedButton.IsClicked(mx, my):
		g.speedButton.ToggleState()
		return false
	}

	if g.preview.Active {
		switch g.preview.Click(x, y) {
		case ui.PreviewAccept:
			// при неверной точке превью остаётся открытым
			if _, ok := g.env.Game.PlaceDefender(g.preview.Point, g.preview.Archetype); ok {
				g.preview.Close()
			}
		case ui.PreviewCancel:
			g.preview.Close()
		}
		return false
	}

	if g.menu.Contains(x, y) {
		g.menu.Click(x, y)
		return false
	}
	if id, ok := g.menu.Take(); ok {
		g.preview.Start(geom.Pt(float64(x), float64(y)), id)
	}
	return false
}

func (g *GameState) pause() {
	g.env.Game.SetPaused(true)
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g.env, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	env := g.env
	snap := env.Game.Snapshot()
	palette := env.Renderer.Palette()

	env.Renderer.Draw(screen, snap)

	if g.preview.Active {
		if a, ok := defs.ArchetypeByID(g.preview.Archetype); ok {
			env.Renderer.DrawPreview(screen, g.preview.Point, a, env.Game.CanPlace(g.preview.Point))
		}
		g.preview.DrawButtons(screen, env.Face)
	}

	g.menu.Draw(screen, env.Face, palette.Menu, palette.Text, palette.Tint)
	g.pauseButton.BgColor, g.pauseButton.BarColor = palette.PauseButton, palette.PauseBar
	g.pauseButton.Draw(screen)
	g.speedButton.StateColors = palette.Speed
	g.speedButton.Draw(screen)
	g.waveIndicator.Draw(screen, env.Face, snap.DisplayWave, snap.MaxWave, palette.Text, palette.Lose)
}

func (g *GameState) Exit() {}
