package main

import (
	"flag"
	"time"

	"classic-snake/app"
	"classic-snake/game"
	"classic-snake/ui"
	"classic-snake/ui/window"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"
)

func main() {
	wcfg := ui.DefaultWindowConfig()
	assetDir := flag.String("assets", wcfg.AssetDir, "Directory holding snake.png and food.png")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	debug := flag.Bool("debug", false, "Log ignored key presses")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	rl.InitWindow(wcfg.Width, wcfg.Height, wcfg.Title)
	rl.SetTargetFPS(wcfg.TargetFPS)

	assets, err := ui.LoadAssets(*assetDir)
	if err != nil {
		rl.CloseWindow()
		log.WithError(err).Fatal("unable to load sprites")
	}

	renderer := window.NewRenderer(assets)
	defer rl.CloseWindow()
	defer renderer.Unload()

	cfg := game.DefaultConfig()
	cfg.Seed = *seed

	scene := ui.NewScene(int(wcfg.Width), int(wcfg.Height))
	a, err := app.New(cfg, scene, log.StandardLogger())
	if err != nil {
		renderer.Unload()
		rl.CloseWindow()
		log.WithError(err).Fatal("unable to start game")
	}

	// Keys are read every frame; the game only sees them on its next tick.
	for !rl.WindowShouldClose() {
		for _, key := range window.PressedKeys() {
			a.HandleKey(key)
		}
		a.Step(time.Now())
		renderer.Draw(scene)
	}

	log.WithField("Score", a.Score()).Info("window closed")
}
