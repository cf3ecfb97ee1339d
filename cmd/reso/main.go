//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"reso/internal/app"
	"reso/internal/board"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Path == "" && flag.NArg() > 0 {
		cfg.Path = flag.Arg(0)
	}
	if cfg.Path == "" {
		log.Fatal("no board given, pass -in <image>")
	}

	bcfg := board.DefaultConfig()
	if cfg.Verbose {
		bcfg.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	b, err := board.LoadWithConfig(cfg.Path, bcfg)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Seed != 0 {
		b.Reset(cfg.Seed)
	}

	game := app.New(b, cfg)
	size := b.Size()

	ebiten.SetWindowTitle("reso - " + b.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
