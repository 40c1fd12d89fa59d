package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Image is a row-major grid of linear RGB colors. Row 0 is the top row.
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage allocates a black image of the given size
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// SetPixel stores the color at column x of row y
func (img *Image) SetPixel(x, y int, c core.Vec3) {
	img.Pixels[y*img.Width+x] = c
}

// GetPixel returns the color at column x of row y
func (img *Image) GetPixel(x, y int) core.Vec3 {
	return img.Pixels[y*img.Width+x]
}

// ToRGBA converts the image to 8-bit RGBA without gamma correction
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := toBytes(img.GetPixel(x, y))
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return out
}

// toBytes clamps each channel to [0,1] and truncates c*255
func toBytes(c core.Vec3) (r, g, b uint8) {
	c = c.Clamp(0.0, 1.0)
	return uint8(c.X * 255), uint8(c.Y * 255), uint8(c.Z * 255)
}
