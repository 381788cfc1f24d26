package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/circle-siege/internal/ebitenui"
)

func main() {
	var width, height int
	var seed int64

	flag.IntVar(&width, "width", 800, "initial window width")
	flag.IntVar(&height, "height", 600, "initial window height")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = time based)")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ebiten.SetWindowTitle("Circle Siege")
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(ebitenui.New(width, height, seed)); err != nil {
		log.Fatal(err)
	}
}
