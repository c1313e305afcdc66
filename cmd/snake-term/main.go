// Command snake-term plays snake in a terminal.
package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"time"

	"classic-snake/app"
	"classic-snake/game"
	"classic-snake/game/types"
	"classic-snake/ui"
	"classic-snake/ui/term"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
)

func main() {
	assetDir := flag.String("assets", ui.DefaultWindowConfig().AssetDir, "Directory holding snake.png and food.png")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	flag.Parse()

	// The screen owns the terminal until Fini, so log lines wait in a buffer.
	var logs bytes.Buffer
	logger := log.New()
	logger.Out = &logs
	logger.Formatter = &log.TextFormatter{FullTimestamp: true, DisableColors: true}
	defer func() {
		io.Copy(os.Stderr, &logs)
	}()

	assets, err := ui.LoadAssets(*assetDir)
	if err != nil {
		log.WithError(err).Fatal("unable to load sprites")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("unable to open terminal")
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Fatal("unable to initialise terminal")
	}

	score, err := play(screen, assets, logger, *seed)
	screen.Fini()
	if err != nil {
		io.Copy(os.Stderr, &logs)
		log.WithError(err).Fatal("unable to start game")
	}
	logger.WithField("Score", score).Info("terminal closed")
}

func play(screen tcell.Screen, assets *ui.Assets, logger *log.Logger, seed uint64) (int, error) {
	painter := term.NewPainter(screen, assets)
	scene := ui.NewScene(types.CanvasWidth, types.CanvasHeight)

	cfg := game.DefaultConfig()
	cfg.Seed = seed
	a, err := app.New(cfg, scene, logger)
	if err != nil {
		return 0, err
	}
	a.AfterTick = func(game.Snapshot) {
		painter.Draw(scene)
	}
	painter.Draw(scene)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	jobs := make(chan func())
	go pollEvents(ctx, cancel, screen, jobs, func(ev tcell.Event) func() {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if name, ok := term.KeyName(ev); ok {
				return func() { a.HandleKey(name) }
			}
		case *tcell.EventResize:
			return func() {
				screen.Sync()
				painter.Draw(scene)
			}
		}
		return nil
	})

	ticker := time.NewTicker(cfg.TickInterval / 4)
	defer ticker.Stop()

	if err := a.Scheduler.Run(ctx, ticker.C, jobs); err != nil {
		return a.Score(), nil
	}

	// The final screen stays up until the player quits.
	for {
		select {
		case <-ctx.Done():
			return a.Score(), nil
		case job := <-jobs:
			job()
		}
	}
}

// pollEvents reads terminal events until a quit key, turning the rest into
// jobs for the game loop.
func pollEvents(ctx context.Context, quit func(), screen tcell.Screen, jobs chan<- func(), toJob func(tcell.Event) func()) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			quit()
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok && term.IsQuit(key) {
			quit()
			return
		}
		job := toJob(ev)
		if job == nil {
			continue
		}
		select {
		case jobs <- job:
		case <-ctx.Done():
			return
		}
	}
}
