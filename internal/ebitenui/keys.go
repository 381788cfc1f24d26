package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/circle-siege/internal/game"
)

// keyMap translates ebiten keys into the sampler's key codes.
var keyMap = map[ebiten.Key]game.Key{
	ebiten.KeyW:          game.KeyW,
	ebiten.KeyA:          game.KeyA,
	ebiten.KeyS:          game.KeyS,
	ebiten.KeyD:          game.KeyD,
	ebiten.KeyArrowUp:    game.KeyArrowUp,
	ebiten.KeyArrowDown:  game.KeyArrowDown,
	ebiten.KeyArrowLeft:  game.KeyArrowLeft,
	ebiten.KeyArrowRight: game.KeyArrowRight,
	ebiten.KeySpace:      game.KeySpace,
}
