package ui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	SnakeAsset = "snake.png"
	FoodAsset  = "food.png"
)

// Assets holds the decoded sprite images.
type Assets struct {
	Snake image.Image
	Food  image.Image
}

// LoadAssets decodes snake.png and food.png from dir. A missing or corrupt
// file is an error naming the file.
func LoadAssets(dir string) (*Assets, error) {
	snake, err := loadPNG(filepath.Join(dir, SnakeAsset))
	if err != nil {
		return nil, err
	}
	food, err := loadPNG(filepath.Join(dir, FoodAsset))
	if err != nil {
		return nil, err
	}
	return &Assets{Snake: snake, Food: food}, nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ui: unable to open asset %s", path)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "ui: unable to decode asset %s", path)
	}
	return img, nil
}

// Image returns the image for sprite.
func (a *Assets) Image(sprite Sprite) image.Image {
	if sprite == FoodSprite {
		return a.Food
	}
	return a.Snake
}

// AverageColor returns the mean colour of the opaque pixels of img.
func AverageColor(img image.Image) color.RGBA {
	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			r += uint64(c.R)
			g += uint64(c.G)
			b += uint64(c.B)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 0xff}
}
