// Package raster draws frames off-screen with gg so they can be written to
// PNG without opening a window.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"chosenoffset.com/targetrush/internal/render"
)

// Canvas is an off-screen render.Image backed by a gg context.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas allocates a width x height canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// Bounds returns the bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.dc.Image().Bounds()
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (width, height int) {
	return c.dc.Width(), c.dc.Height()
}

// Fill paints the whole canvas.
func (c *Canvas) Fill(clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.Clear()
}

// Image returns the pixels drawn so far.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save frame %s: %w", path, err)
	}
	return nil
}

// Renderer implements render.Renderer on Canvas images.
type Renderer struct{}

// NewRenderer creates a gg-backed renderer.
func NewRenderer() render.Renderer {
	return &Renderer{}
}

// FillRect draws a filled rectangle.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	dc := unwrap(dst)
	dc.SetColor(clr)
	dc.DrawRectangle(float64(x), float64(y), float64(width), float64(height))
	dc.Fill()
}

// FillCircle draws a filled circle.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	dc := unwrap(dst)
	dc.SetColor(clr)
	dc.DrawCircle(float64(x), float64(y), float64(radius))
	dc.Fill()
}

// DrawText draws text with its top-left corner at (x, y).
func (r *Renderer) DrawText(dst render.Image, str string, x, y int, clr color.Color) {
	dc := unwrap(dst)
	dc.SetColor(clr)
	dc.DrawStringAnchored(str, float64(x), float64(y), 0, 1)
}

// MeasureText measures a single line with the context's default face.
func (r *Renderer) MeasureText(str string) (width, height int) {
	dc := gg.NewContext(1, 1)
	w, h := dc.MeasureString(str)
	return int(w + 0.5), int(h + 0.5)
}

func unwrap(img render.Image) *gg.Context {
	return img.(*Canvas).dc
}
