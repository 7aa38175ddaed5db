package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/odas-hero/internal/config"
	"github.com/iburimskiy/odas-hero/internal/game"
)

const logPrefix = "odas-hero: "

// setupLogging routes the standard logger to w when debug is set and
// discards it otherwise.
func setupLogging(debug bool, w io.Writer) {
	if !debug {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(w)
	log.SetPrefix(logPrefix)
	log.SetFlags(log.Ltime | log.Lmicroseconds)
}

func main() {
	app := config.Default()
	finish := config.BindFlags(flag.CommandLine, &app)
	flag.Parse()

	if err := finish(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(app.Debug, os.Stderr)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("ODAS - Scroll to browse, C: contact, Space: pause background, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Keep Update running while unfocused so the backdrop can pause itself.
	ebiten.SetRunnableOnUnfocused(true)

	g := game.NewGame(app)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("run: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
