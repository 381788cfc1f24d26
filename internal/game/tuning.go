package game

import "image/color"

// Player.
const (
	PlayerRadius = 18.0
	PlayerSpeed  = 670.0 // units per second
	PlayerHealth = 1
)

// Weapon.
const (
	FireCooldown   = 0.15  // seconds between shots
	BulletSpeed    = 800.0 // units per second
	BulletRadius   = 4.0
	BulletLifetime = 1.0 // seconds
)

// Enemies.
const (
	SpawnInterval  = 0.8  // seconds between spawns
	SpawnMargin    = 40.0 // distance outside the viewport edge
	EnemyRadiusMin = 15.0
	EnemyRadiusMax = 30.0
	EnemySpeedMin  = 80.0
	EnemySpeedMax  = 140.0
	Knockback      = 40.0 // push-back distance after touching the player
	KillScore      = 10
)

// Restart button.
const (
	ButtonWidth  = 220.0
	ButtonHeight = 60.0
)

// Text sizes in pixels.
const (
	HUDFontSize    = 26
	TitleFontSize  = 52
	ButtonFontSize = 28
)

// Palette.
var (
	ColorBackground  = color.RGBA{R: 0x0b, G: 0x0f, B: 0x1a, A: 0xff}
	ColorPlayer      = color.RGBA{R: 0x4c, G: 0xc9, B: 0xf0, A: 0xff}
	ColorBullet      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorEnemy       = color.RGBA{R: 0xff, G: 0x4d, B: 0x6d, A: 0xff}
	ColorText        = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorButton      = color.RGBA{R: 0x4c, G: 0xc9, B: 0xf0, A: 0xff}
	ColorButtonLabel = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)
