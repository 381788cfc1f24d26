package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/Garsondee/circle-siege/internal/termui"
)

func main() {
	var seed int64
	var hold time.Duration
	var logPath string

	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = time based)")
	flag.DurationVar(&hold, "hold", termui.DefaultHold, "how long a key press counts as held")
	flag.StringVar(&logPath, "log", "", "write session log lines to this file")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// The terminal is the display; log lines go to a file or nowhere.
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := termui.Open()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	err = termui.NewApp(screen, seed, hold).Run()
	screen.Fini()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
