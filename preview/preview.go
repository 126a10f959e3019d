// Package preview renders seismic sections and masks as grayscale images.
//
// Traces run along the x axis and time runs downwards. Amplitudes are mapped
// symmetrically around mid gray: -clip is black, 0 is gray 128 and +clip is
// white.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/cocosip/go-segy-amptune/grid"
)

// Options controls rendering
type Options struct {
	// Output size in pixels. Zero keeps the natural size on that axis
	// (one pixel per trace, one pixel per sample).
	Width, Height int

	// Clip is the amplitude mapped to full black/white. Zero uses the
	// largest absolute amplitude of the section.
	Clip float32
}

// Render draws a trace-major section
func Render(traces [][]float32, opts Options) (*image.Gray, error) {
	shape := grid.ShapeOf(traces)
	if shape.Len() == 0 {
		return nil, ErrEmpty
	}

	clip := opts.Clip
	if !(clip > 0) {
		clip = maxAbs(traces)
	}

	img := image.NewGray(image.Rect(0, 0, shape.Traces, shape.Samples))
	for tr, trace := range traces {
		for s := 0; s < shape.Samples && s < len(trace); s++ {
			img.SetGray(tr, s, color.Gray{Y: amplitudeGray(trace[s], clip)})
		}
	}

	logrus.WithFields(logrus.Fields{
		"function": "Render",
		"traces":   shape.Traces,
		"samples":  shape.Samples,
		"clip":     clip,
	}).Debug("rendered section")

	return resize(img, opts)
}

// RenderMask draws a blend-weight or multiplier field, mapping low to black
// and high to white. high may be below low to invert the ramp.
func RenderMask(m *grid.FloatMask, low, high float32, opts Options) (*image.Gray, error) {
	if m == nil || m.Len() == 0 {
		return nil, ErrEmpty
	}
	if high == low || math.IsNaN(float64(high-low)) {
		high = low + 1
	}

	img := image.NewGray(image.Rect(0, 0, m.Traces, m.Samples))
	for tr := 0; tr < m.Traces; tr++ {
		for s, v := range m.Row(tr) {
			img.SetGray(tr, s, color.Gray{Y: levelGray(v, low, high)})
		}
	}
	return resize(img, opts)
}

// RenderWindow draws a window mask, white inside
func RenderWindow(m *grid.BoolMask, opts Options) (*image.Gray, error) {
	if m == nil || m.Len() == 0 {
		return nil, ErrEmpty
	}
	return RenderMask(m.Float(), 0, 1, opts)
}

func amplitudeGray(v, clip float32) uint8 {
	if !(clip > 0) {
		return 128
	}
	x := lo.Clamp(float64(v/clip), -1, 1)
	if math.IsNaN(x) {
		return 128
	}
	return uint8(math.Round(127.5 + 127.5*x))
}

func levelGray(v, low, high float32) uint8 {
	x := lo.Clamp(float64((v-low)/(high-low)), 0, 1)
	if math.IsNaN(x) {
		return 0
	}
	return uint8(math.Round(255 * x))
}

func maxAbs(traces [][]float32) float32 {
	var m float32
	for _, tr := range traces {
		for _, v := range tr {
			if a := float32(math.Abs(float64(v))); a > m && !math.IsInf(float64(a), 0) {
				m = a
			}
		}
	}
	return m
}

func resize(src *image.Gray, opts Options) (*image.Gray, error) {
	if opts.Width < 0 || opts.Height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	b := src.Bounds()
	w, h := opts.Width, opts.Height
	if w == 0 {
		w = b.Dx()
	}
	if h == 0 {
		h = b.Dy()
	}
	if w == b.Dx() && h == b.Dy() {
		return src, nil
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

type encodeFunc func(io.Writer, image.Image) error

func encoder(format string) (encodeFunc, error) {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode, nil
	case "bmp":
		return bmp.Encode, nil
	case "tif", "tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Encode writes img in the named format: "png", "bmp" or "tiff"
func Encode(w io.Writer, img image.Image, format string) error {
	enc, err := encoder(format)
	if err != nil {
		return err
	}
	return enc(w, img)
}

// Save writes img to path, choosing the format from the file extension.
// A path without extension is written as PNG.
func Save(path string, img image.Image) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		format = "png"
	}
	enc, err := encoder(format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := enc(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
