package preview

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/cocosip/go-segy-amptune/grid"
)

func TestRenderSymmetric(t *testing.T) {
	traces := [][]float32{
		{-2, 0, 2},
		{-1, 1, 4},
	}
	img, err := Render(traces, Options{})
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 2, 3), img.Bounds())

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 64},  // -2 of 4
		{0, 1, 128}, // zero
		{1, 2, 255}, // max
		{1, 0, 96},
	}
	for _, tt := range tests {
		if got := img.GrayAt(tt.x, tt.y).Y; got != tt.want {
			t.Errorf("pixel (%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderClip(t *testing.T) {
	img, err := Render([][]float32{{-10, 0.5, 10}}, Options{Clip: 1})
	require.NoError(t, err)
	require.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	require.Equal(t, uint8(255), img.GrayAt(0, 2).Y)
	require.Equal(t, uint8(191), img.GrayAt(0, 1).Y)
}

func TestRenderSilentSection(t *testing.T) {
	img, err := Render([][]float32{{0, 0}, {0, 0}}, Options{})
	require.NoError(t, err)
	for _, p := range img.Pix {
		require.Equal(t, uint8(128), p)
	}
}

func TestRenderResize(t *testing.T) {
	traces := make([][]float32, 10)
	for i := range traces {
		traces[i] = make([]float32, 20)
		traces[i][5] = 1
	}
	img, err := Render(traces, Options{Width: 40, Height: 7})
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 40, 7), img.Bounds())

	img, err = Render(traces, Options{Width: 5})
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 5, 20), img.Bounds())

	_, err = Render(traces, Options{Height: -1})
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestRenderEmpty(t *testing.T) {
	_, err := Render(nil, Options{})
	require.ErrorIs(t, err, ErrEmpty)

	_, err = RenderMask(nil, 0, 1, Options{})
	require.ErrorIs(t, err, ErrEmpty)
}

func TestRenderWindow(t *testing.T) {
	m := grid.NewBoolMask(grid.Shape{Traces: 2, Samples: 2})
	m.Set(1, 0, true)

	img, err := RenderWindow(m, Options{})
	require.NoError(t, err)
	require.Equal(t, uint8(255), img.GrayAt(1, 0).Y)
	require.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	require.Equal(t, uint8(0), img.GrayAt(1, 1).Y)
}

func TestRenderMaskRange(t *testing.T) {
	m := grid.Filled(grid.Shape{Traces: 1, Samples: 3}, 1)
	m.Set(0, 1, 2)
	m.Set(0, 2, 3)

	img, err := RenderMask(m, 1, 3, Options{})
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 128, 255}, img.Pix)
}

func TestEncodeFormats(t *testing.T) {
	img, err := Render([][]float32{{1, -1}, {0, 0.5}}, Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img, "bmp"))
	decoded, err := bmp.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())

	buf.Reset()
	require.NoError(t, Encode(&buf, img, "TIFF"))
	decoded, err = tiff.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())

	err = Encode(&buf, img, "gif")
	require.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestSave(t *testing.T) {
	img, err := Render([][]float32{{1, -1}}, Options{})
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "section.png")
	require.NoError(t, Save(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, format, err := image.Decode(f)
	require.NoError(t, err)
	require.Equal(t, "png", format)

	bad := filepath.Join(dir, "section.jpg")
	require.ErrorIs(t, Save(bad, img), ErrUnknownFormat)
	_, err = os.Stat(bad)
	require.True(t, os.IsNotExist(err))
}

func TestRenderMaskInverted(t *testing.T) {
	m := grid.Filled(grid.Shape{Traces: 1, Samples: 3}, 1)
	m.Set(0, 1, 0.75)
	m.Set(0, 2, 0.5)

	img, err := RenderMask(m, 1, 0.5, Options{})
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 128, 255}, img.Pix)

	flat, err := RenderMask(grid.Filled(m.Shape, 1), 1, 1, Options{})
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 0, 0}, flat.Pix)
}
