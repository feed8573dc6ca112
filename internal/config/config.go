// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1920
	ScreenHeight = 1080

	TicksPerSecond = 60 // все задержки и перезарядки заданы в тиках при этой частоте

	StartingLives = 3
	SpawnInterval = 30 // тиков между выпуском юнитов из ростера
	MaxWave       = 3

	MinClearance      = 40.0 // минимальный зазор до башен и до дороги
	DefenderHalfSize  = 20.0 // башня рисуется квадратом 40x40
	UnitHitRadius     = 20.0 // радиус попадания одинаков для всех вариантов
	ProjectileRadius  = 8.0
	ProjectileSpeed   = 8.0 // пикселей за тик
	HitProximity      = UnitHitRadius + ProjectileRadius
	PathStrokeWidth   = 8.0
	RangeStrokeWidth  = 1.0
	MenuWidth         = 120
	MenuItemHeight    = 60
	MenuItemSpacing   = 70
	MenuTop           = 60
	PauseButtonSize   = 100
	PauseButtonMargin = 10

	ClickCooldown = 150 // мс
)

// SpeedMultipliers — сколько тиков симуляции прогоняется за один кадр.
var SpeedMultipliers = []int{1, 2, 4}

var (
	BackgroundColor     = color.RGBA{30, 30, 30, 255}
	PathColor           = color.RGBA{0, 255, 0, 255}
	RangeColor          = color.RGBA{100, 100, 255, 255}
	ProjectileColor     = color.RGBA{255, 255, 0, 255}
	MenuBackgroundColor = color.RGBA{50, 50, 80, 255}
	TextLightColor      = color.RGBA{255, 255, 255, 255}
	PauseButtonColor    = color.RGBA{180, 180, 180, 255}
	PauseBarColor       = color.RGBA{60, 60, 60, 255}
	InvalidColor        = color.RGBA{200, 50, 50, 255}
	AcceptColor         = color.RGBA{0, 200, 0, 255}
	CancelColor         = color.RGBA{200, 0, 0, 255}
	OverlayColor        = color.RGBA{0, 0, 0, 180}
	WinColor            = color.RGBA{0, 255, 0, 255}
	LoseColor           = color.RGBA{255, 0, 0, 255}
	SpeedButtonColors   = []color.RGBA{
		{70, 130, 180, 220}, // x1
		{220, 60, 60, 220},  // x2
		{194, 178, 128, 255},
	}
)
