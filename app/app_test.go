package app

import (
	"io"
	"testing"
	"time"

	"classic-snake/game"
	"classic-snake/game/manager"
	"classic-snake/game/types"
	"classic-snake/ui"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*App, *ui.Scene) {
	t.Helper()
	logger := log.New()
	logger.Out = io.Discard

	cfg := game.DefaultConfig()
	cfg.Seed = 42
	scene := ui.NewScene(types.CanvasWidth, types.CanvasHeight)
	a, err := New(cfg, scene, logger)
	require.NoError(t, err)
	return a, scene
}

func TestNewDrawsFirstFrame(t *testing.T) {
	_, scene := newTestApp(t)

	require.Len(t, scene.WithTag(ui.TagSnake), 3)
	require.Len(t, scene.WithTag(ui.TagFood), 1)
	require.Equal(t, "Score: 0", scene.WithTag(ui.TagScore)[0].Text)
	require.Len(t, scene.WithTag(ui.TagBorder), 1)
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.TickInterval = 0
	_, err := New(cfg, ui.NewScene(types.CanvasWidth, types.CanvasHeight), nil)
	require.Error(t, err)
}

func TestStepTicksOnSchedule(t *testing.T) {
	a, scene := newTestApp(t)

	require.False(t, a.Step(epoch))
	require.False(t, a.Step(epoch.Add(types.GameSpeed/2)))
	require.Equal(t, 0, a.Game.Turn())

	require.True(t, a.Step(epoch.Add(types.GameSpeed)))
	require.Equal(t, 1, a.Game.Turn())
	require.Equal(t, types.Point{X: 120, Y: 100}, scene.WithTag(ui.TagSnake)[0].Pos)
}

func TestKeyAppliesOnNextTick(t *testing.T) {
	a, _ := newTestApp(t)
	a.Step(epoch)

	require.True(t, a.HandleKey("Down"))
	require.False(t, a.HandleKey("Left"))
	require.Equal(t, types.Right, a.Game.Direction())

	a.Step(epoch.Add(types.GameSpeed))
	require.Equal(t, types.Down, a.Game.Direction())
	require.Equal(t, types.Point{X: 100, Y: 120}, a.Game.GetSnake()[0])
}

func TestRunsUntilWall(t *testing.T) {
	a, scene := newTestApp(t)

	var snaps []game.Snapshot
	a.AfterTick = func(s game.Snapshot) {
		snaps = append(snaps, s)
	}

	now := epoch
	a.Step(now)
	for i := 0; i < 100 && !a.Done(); i++ {
		now = now.Add(types.GameSpeed)
		a.Step(now)
	}

	require.True(t, a.Done())
	require.True(t, a.Scheduler.Stopped())
	require.Equal(t, manager.WallCollision, a.Game.Cause())
	// The head starts at x=100 and leaves the field on the 25th tick.
	require.Len(t, snaps, 25)
	require.True(t, snaps[len(snaps)-1].Over())

	items := scene.Items()
	require.Len(t, items, 1)
	require.Equal(t, ui.GameOverText(a.Score()), items[0].Text)

	// Nothing happens once the game is over.
	require.False(t, a.Step(now.Add(time.Hour)))
	require.Len(t, snaps, 25)
}
