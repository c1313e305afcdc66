package ui

import (
	"fmt"

	"classic-snake/game"
	"classic-snake/game/types"
)

const (
	scoreFontSize    = 16
	gameOverFontSize = 28
)

var (
	scorePos = types.Point{X: 35, Y: 12}
	border   = Rect{X0: 7, Y0: 27, X1: 593, Y1: 613}
)

// View projects game snapshots onto a Surface.
type View struct {
	surface Surface
	ended   bool
}

func NewView(surface Surface) *View {
	return &View{surface: surface}
}

// Init draws the score label, the snake, the food and the play-field border.
func (v *View) Init(snap game.Snapshot) {
	v.ended = false
	v.surface.DeleteAll()
	v.surface.DrawText(scorePos, scoreLabel(snap.Score), scoreFontSize, TagScore)
	v.drawSnake(snap.Snake)
	v.surface.DrawImage(FoodSprite, snap.Food, TagFood)
	v.surface.DrawRect(border, TagBorder)
}

// Update redraws the parts that a tick can change. A finished game replaces
// everything with the final score.
func (v *View) Update(snap game.Snapshot) {
	if snap.Over() {
		v.end(snap.Score)
		return
	}

	v.surface.Delete(TagSnake)
	v.drawSnake(snap.Snake)
	v.surface.Delete(TagFood)
	v.surface.DrawImage(FoodSprite, snap.Food, TagFood)
	v.surface.SetText(TagScore, scoreLabel(snap.Score))
}

// Ended reports whether the game-over screen is showing.
func (v *View) Ended() bool {
	return v.ended
}

func (v *View) drawSnake(body []types.Point) {
	for _, p := range body {
		v.surface.DrawImage(SnakeSprite, p, TagSnake)
	}
}

func (v *View) end(score int) {
	if v.ended {
		return
	}
	v.ended = true
	v.surface.DeleteAll()
	w, h := v.surface.Size()
	v.surface.DrawText(types.Point{X: w / 2, Y: h / 2}, GameOverText(score), gameOverFontSize, TagGameOver)
}

func scoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// GameOverText is the message shown once the game has ended.
func GameOverText(score int) string {
	return fmt.Sprintf("Game over! You scored %d!", score)
}
