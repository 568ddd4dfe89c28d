package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Framebuffer holds linear, unclamped pixel colors in row-major order with the top row first
type Framebuffer struct {
	Width, Height int
	Pixels        []core.Vec3
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the pixel at column x of row y
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores the pixel at column x of row y
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// ToByte gamma-corrects (gamma 2) and quantizes a linear channel value to 8 bits.
// Negative and NaN values map to 0.
func ToByte(c float64) uint8 {
	if !(c > 0) {
		return 0
	}
	return uint8(256 * core.Clamp(math.Sqrt(c), 0.0, 0.999))
}

// ToRGBA converts the framebuffer into an 8-bit image
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: ToByte(c.X), G: ToByte(c.Y), B: ToByte(c.Z), A: 255})
		}
	}
	return img
}

// WritePPM writes the framebuffer as a plain-text (P3) PPM image
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height)
	for _, c := range fb.Pixels {
		fmt.Fprintf(bw, "%d %d %d\n", ToByte(c.X), ToByte(c.Y), ToByte(c.Z))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ppm: %w", err)
	}
	return nil
}

// WritePNG writes the framebuffer as a PNG image
func (fb *Framebuffer) WritePNG(w io.Writer) error {
	if err := png.Encode(w, fb.ToRGBA()); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
