// Package app wires a game, its view and its tick schedule together. A
// frontend owns the window or terminal and feeds the app keys and clock
// readings from a single loop.
package app

import (
	"time"

	"classic-snake/game"
	"classic-snake/game/loop"
	"classic-snake/ui"

	log "github.com/sirupsen/logrus"
)

type App struct {
	Game      *game.Game
	View      *ui.View
	Scheduler *loop.Scheduler

	// AfterTick, when set, runs after the view has been updated for a tick.
	AfterTick func(game.Snapshot)

	log *log.Entry
}

// New starts a game with cfg and draws its first frame on surface. A nil
// logger means the standard logrus logger.
func New(cfg game.Config, surface ui.Surface, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.StandardLogger()
	}
	g, err := game.NewGame(cfg, game.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	a := &App{
		Game: g,
		View: ui.NewView(surface),
		log:  logger.WithField("GameID", g.UUID),
	}
	a.View.Init(g.Snapshot())
	a.Scheduler = loop.NewScheduler(cfg.TickInterval, a.tick)
	return a, nil
}

func (a *App) tick() bool {
	snap := a.Game.Tick()
	a.View.Update(snap)
	if a.AfterTick != nil {
		a.AfterTick(snap)
	}
	if snap.Over() {
		a.log.WithFields(log.Fields{
			"Score": snap.Score,
			"Turns": snap.Turn,
		}).Info("final score")
		return false
	}
	return true
}

// HandleKey forwards a key name to the game. It only affects the next tick.
func (a *App) HandleKey(name string) bool {
	return a.Game.HandleKey(name)
}

// Step lets the scheduler run a tick if one is due.
func (a *App) Step(now time.Time) bool {
	return a.Scheduler.Poll(now)
}

// Done reports whether the game has ended and ticking has stopped.
func (a *App) Done() bool {
	return a.Game.State() == game.GameOver
}

func (a *App) Score() int {
	return a.Game.Score()
}
