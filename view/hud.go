package view

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"orbview/hal"
)

// drawText renders one line into the framebuffer with the fixed 7x13
// face. Drawing straight into the pixel buffer keeps the HUD identical
// between the window and headless runners.
func drawText(fb hal.Framebuffer, x, y int, s string, c color.RGBA) {
	if fb == nil || fb.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	img := &image.RGBA{
		Pix:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		Rect:   image.Rect(0, 0, fb.Width(), fb.Height()),
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)
}
