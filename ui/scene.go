package ui

import (
	"image/color"

	"classic-snake/game/types"
)

// Sprite identifies one of the image assets.
type Sprite int

const (
	SnakeSprite Sprite = iota
	FoodSprite
)

// Tags used to address groups of drawn items.
const (
	TagSnake    = "snake"
	TagFood     = "food"
	TagScore    = "score"
	TagBorder   = "border"
	TagGameOver = "gameover"
)

var (
	TextColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	OutlineColor = color.RGBA{R: 0x52, G: 0x5d, B: 0x69, A: 0xff}
)

// ItemKind says how an item is painted.
type ItemKind int

const (
	ImageItem ItemKind = iota
	TextItem
	RectItem
)

// Rect is an outline from (X0,Y0) to (X1,Y1) in canvas units.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Item is one drawn element. Images and text are centred on Pos.
type Item struct {
	Kind     ItemKind
	Tag      string
	Pos      types.Point
	Sprite   Sprite
	Text     string
	FontSize int32
	Rect     Rect
	Color    color.RGBA
}

// Surface is the drawing API the view needs. Items are retained until
// deleted, so painters can redraw them every frame.
type Surface interface {
	DrawImage(sprite Sprite, pos types.Point, tag string)
	DrawText(pos types.Point, text string, fontSize int32, tag string)
	DrawRect(r Rect, tag string)
	SetText(tag, text string)
	Delete(tag string)
	DeleteAll()
	Size() (width, height int)
}

// Scene is an in-memory Surface. It is owned by the loop that renders it.
type Scene struct {
	width, height int
	items         []Item
}

func NewScene(width, height int) *Scene {
	return &Scene{
		width:  width,
		height: height,
	}
}

func (s *Scene) DrawImage(sprite Sprite, pos types.Point, tag string) {
	s.items = append(s.items, Item{Kind: ImageItem, Tag: tag, Pos: pos, Sprite: sprite})
}

func (s *Scene) DrawText(pos types.Point, text string, fontSize int32, tag string) {
	s.items = append(s.items, Item{
		Kind:     TextItem,
		Tag:      tag,
		Pos:      pos,
		Text:     text,
		FontSize: fontSize,
		Color:    TextColor,
	})
}

func (s *Scene) DrawRect(r Rect, tag string) {
	s.items = append(s.items, Item{Kind: RectItem, Tag: tag, Rect: r, Color: OutlineColor})
}

// SetText replaces the text of every text item carrying tag.
func (s *Scene) SetText(tag, text string) {
	for i := range s.items {
		if s.items[i].Tag == tag && s.items[i].Kind == TextItem {
			s.items[i].Text = text
		}
	}
}

// Delete removes every item carrying tag.
func (s *Scene) Delete(tag string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Tag != tag {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

func (s *Scene) DeleteAll() {
	s.items = s.items[:0]
}

func (s *Scene) Size() (int, int) {
	return s.width, s.height
}

// Items returns the drawn items in drawing order. The slice is shared with
// the scene and only valid until the next change.
func (s *Scene) Items() []Item {
	return s.items
}

// WithTag returns a copy of the items carrying tag.
func (s *Scene) WithTag(tag string) []Item {
	var items []Item
	for _, item := range s.items {
		if item.Tag == tag {
			items = append(items, item)
		}
	}
	return items
}
