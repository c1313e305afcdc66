package window

import (
	"classic-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer paints a ui.Scene into the raylib window. It must be created after
// rl.InitWindow and used from the window's thread.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	textures     map[ui.Sprite]rl.Texture2D
}

// NewRenderer uploads the sprite images as textures.
func NewRenderer(assets *ui.Assets) *Renderer {
	r := &Renderer{
		textures: make(map[ui.Sprite]rl.Texture2D, 2),
	}
	for _, sprite := range []ui.Sprite{ui.SnakeSprite, ui.FoodSprite} {
		img := rl.NewImageFromImage(assets.Image(sprite))
		r.textures[sprite] = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Unload releases the textures. Call before rl.CloseWindow.
func (r *Renderer) Unload() {
	for sprite, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, sprite)
	}
}

func (r *Renderer) Draw(scene *ui.Scene) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	for _, item := range scene.Items() {
		switch item.Kind {
		case ui.ImageItem:
			tex := r.textures[item.Sprite]
			// Images are anchored on their centre like canvas items.
			rl.DrawTexture(tex,
				int32(item.Pos.X)-tex.Width/2,
				int32(item.Pos.Y)-tex.Height/2,
				rl.White)
		case ui.TextItem:
			width := rl.MeasureText(item.Text, item.FontSize)
			x := min(max(int32(item.Pos.X)-width/2, 0), max(r.screenWidth-width, 0))
			y := min(max(int32(item.Pos.Y)-item.FontSize/2, 0), max(r.screenHeight-item.FontSize, 0))
			rl.DrawText(item.Text, x, y, item.FontSize, item.Color)
		case ui.RectItem:
			rl.DrawRectangleLines(
				int32(item.Rect.X0),
				int32(item.Rect.Y0),
				int32(item.Rect.X1-item.Rect.X0),
				int32(item.Rect.Y1-item.Rect.Y0),
				item.Color)
		}
	}

	rl.EndDrawing()
}
