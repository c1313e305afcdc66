package term

import (
	"image"
	"image/color"
	"testing"

	"classic-snake/game"
	"classic-snake/game/types"
	"classic-snake/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)
	return screen
}

func filled(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestSpriteCell(t *testing.T) {
	x, y := SpriteCell(types.Point{X: 100, Y: 100})
	require.Equal(t, 9, x)
	require.Equal(t, 5, y)

	x, y = SpriteCell(types.Point{X: 20, Y: 40})
	require.Equal(t, 1, x)
	require.Equal(t, 2, y)

	x, y = SpriteCell(types.Point{X: 580, Y: 600})
	require.Equal(t, 57, x)
	require.Equal(t, 30, y)
}

func TestDrawScene(t *testing.T) {
	screen := newScreen(t)
	green := color.RGBA{G: 200, A: 0xff}
	painter := NewPainter(screen, &ui.Assets{
		Snake: filled(green),
		Food:  filled(color.RGBA{R: 200, A: 0xff}),
	})

	scene := ui.NewScene(types.CanvasWidth, types.CanvasHeight)
	view := ui.NewView(scene)
	view.Init(game.Snapshot{
		Snake: []types.Point{{X: 100, Y: 100}, {X: 80, Y: 100}, {X: 60, Y: 100}},
		Food:  types.Point{X: 300, Y: 300},
	})
	painter.Draw(scene)

	require.Equal(t, spriteRune, runeAt(screen, 9, 5))
	require.Equal(t, spriteRune, runeAt(screen, 10, 5))
	require.Equal(t, spriteRune, runeAt(screen, 5, 5))
	require.Equal(t, spriteRune, runeAt(screen, 29, 15))

	_, _, style, _ := screen.GetContent(9, 5)
	fg, _, _ := style.Decompose()
	require.Equal(t, tcell.NewRGBColor(0, 200, 0), fg)

	require.Equal(t, '┌', runeAt(screen, 0, 1))
	require.Equal(t, '┘', runeAt(screen, 60, 31))
	require.Equal(t, '│', runeAt(screen, 0, 10))
	require.Equal(t, '─', runeAt(screen, 30, 1))

	require.Equal(t, 'S', runeAt(screen, 0, 0))
	require.Equal(t, '0', runeAt(screen, 7, 0))
}

func TestDrawGameOver(t *testing.T) {
	screen := newScreen(t)
	painter := NewPainter(screen, nil)

	scene := ui.NewScene(types.CanvasWidth, types.CanvasHeight)
	view := ui.NewView(scene)
	view.Init(game.Snapshot{
		Snake: []types.Point{{X: 100, Y: 100}, {X: 80, Y: 100}, {X: 60, Y: 100}},
		Food:  types.Point{X: 300, Y: 300},
	})
	painter.Draw(scene)
	view.Update(game.Snapshot{State: game.GameOver, Score: 4})
	painter.Draw(scene)

	text := ui.GameOverText(4)
	row := 310 / unitsPerRow
	start := 300/unitsPerColumn - len(text)/2
	got := make([]rune, 0, len(text))
	for i := range text {
		got = append(got, runeAt(screen, start+i, row))
	}
	require.Equal(t, text, string(got))
	require.NotEqual(t, spriteRune, runeAt(screen, 9, 5))
}

func TestKeys(t *testing.T) {
	name, ok := KeyName(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	require.True(t, ok)
	require.Equal(t, "Up", name)

	name, ok = KeyName(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	require.True(t, ok)
	require.Equal(t, "Right", name)

	_, ok = KeyName(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	require.False(t, ok)

	require.True(t, IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	require.True(t, IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	require.False(t, IsQuit(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
}
