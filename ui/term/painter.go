// Package term paints a ui.Scene on a terminal with tcell.
package term

import (
	"image/color"

	"classic-snake/game/types"
	"classic-snake/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// A canvas cell of MoveIncrement units becomes two columns by one row, which
// keeps sprites roughly square on a terminal.
const (
	unitsPerColumn = types.MoveIncrement / 2
	unitsPerRow    = types.MoveIncrement
	spriteRune     = '█'
)

// Painter draws scenes on a tcell screen.
type Painter struct {
	screen tcell.Screen
	styles map[ui.Sprite]tcell.Style
	text   tcell.Style
	border tcell.Style
}

// NewPainter colours sprites after the average colour of their images. A
// nil assets value falls back to plain green and red.
func NewPainter(screen tcell.Screen, assets *ui.Assets) *Painter {
	p := &Painter{
		screen: screen,
		styles: map[ui.Sprite]tcell.Style{
			ui.SnakeSprite: tcell.StyleDefault.Foreground(tcell.ColorGreen),
			ui.FoodSprite:  tcell.StyleDefault.Foreground(tcell.ColorRed),
		},
		text:   tcell.StyleDefault.Foreground(toTcell(ui.TextColor)),
		border: tcell.StyleDefault.Foreground(toTcell(ui.OutlineColor)),
	}
	if assets != nil {
		for _, sprite := range []ui.Sprite{ui.SnakeSprite, ui.FoodSprite} {
			p.styles[sprite] = tcell.StyleDefault.Foreground(toTcell(ui.AverageColor(assets.Image(sprite))))
		}
	}
	return p
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw clears the screen, paints every item and shows the result.
func (p *Painter) Draw(scene *ui.Scene) {
	p.screen.Clear()
	for _, item := range scene.Items() {
		switch item.Kind {
		case ui.ImageItem:
			p.drawSprite(item)
		case ui.TextItem:
			p.drawText(item)
		case ui.RectItem:
			p.drawRect(item.Rect)
		}
	}
	p.screen.Show()
}

// SpriteCell returns the left column and the row a sprite centred on pos
// covers. Sprites are two columns wide.
func SpriteCell(pos types.Point) (int, int) {
	return (pos.X - unitsPerColumn) / unitsPerColumn, pos.Y / unitsPerRow
}

func (p *Painter) drawSprite(item ui.Item) {
	x, y := SpriteCell(item.Pos)
	style := p.styles[item.Sprite]
	p.screen.SetContent(x, y, spriteRune, nil, style)
	p.screen.SetContent(x+1, y, spriteRune, nil, style)
}

func (p *Painter) drawText(item ui.Item) {
	width := runewidth.StringWidth(item.Text)
	x := item.Pos.X/unitsPerColumn - width/2
	if x < 0 {
		x = 0
	}
	tbprint(p.screen, x, item.Pos.Y/unitsPerRow, p.text, item.Text)
}

func (p *Painter) drawRect(r ui.Rect) {
	left, top := r.X0/unitsPerColumn, r.Y0/unitsPerRow
	right := (r.X1 + unitsPerColumn - 1) / unitsPerColumn
	bottom := (r.Y1 + unitsPerRow - 1) / unitsPerRow

	for x := left + 1; x < right; x++ {
		p.screen.SetContent(x, top, '─', nil, p.border)
		p.screen.SetContent(x, bottom, '─', nil, p.border)
	}
	for y := top + 1; y < bottom; y++ {
		p.screen.SetContent(left, y, '│', nil, p.border)
		p.screen.SetContent(right, y, '│', nil, p.border)
	}
	p.screen.SetContent(left, top, '┌', nil, p.border)
	p.screen.SetContent(right, top, '┐', nil, p.border)
	p.screen.SetContent(left, bottom, '└', nil, p.border)
	p.screen.SetContent(right, bottom, '┘', nil, p.border)
}

func tbprint(screen tcell.Screen, x, y int, style tcell.Style, msg string) {
	for _, c := range msg {
		screen.SetContent(x, y, c, nil, style)
		x += runewidth.RuneWidth(c)
	}
}
