package srpair

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"
)

func writeImage(t *testing.T, path string, img image.Image) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	switch filepath.Ext(path) {
	case ".tiff":
		require.NoError(t, tiff.Encode(f, img, nil))
	default:
		require.NoError(t, png.Encode(f, img))
	}
}

func TestLoader_ParseMode(t *testing.T) {
	m, err := ParseMode("RGB")
	require.NoError(t, err)
	assert.Equal(t, ModeRGB, m)

	m, err = ParseMode("all-bands")
	require.NoError(t, err)
	assert.Equal(t, ModeAll, m)

	_, err = ParseMode("cmyk")
	assert.True(t, errors.Is(err, ErrUnsupportedMode))
}

func TestLoader_IsRaster(t *testing.T) {
	assert.True(t, IsRaster("a/b/T11SPA.tif"))
	assert.True(t, IsRaster("a/b/T11SPA.TIF"))
	assert.True(t, IsRaster("scene.Tif"))
	assert.False(t, IsRaster("scene.tiff"))
	assert.False(t, IsRaster("scene.png"))
	assert.False(t, IsRaster("tif"))
}

func TestLoader_GenericImage(t *testing.T) {
	dir := t.TempDir()
	src := gradientImage(6, 5)

	for _, name := range []string{"sample.png", "sample.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			writeImage(t, path, src)

			l := &Loader{Raster: &fakeReader{}, Policies: DefaultPolicies}

			rgb, err := l.Load(path, ModeRGB)
			require.NoError(t, err)
			assert.Equal(t, 3, rgb.Channels)
			assert.Equal(t, 6, rgb.Width)
			assert.Equal(t, 5, rgb.Height)

			all, err := l.Load(path, ModeAll)
			require.NoError(t, err)
			assert.Equal(t, 4, all.Channels)
			assert.Equal(t, src.Pix, all.Pix)

			img, err := l.LoadImage(path, ModeRGB)
			require.NoError(t, err)
			c := img.(*image.NRGBA).NRGBAAt(2, 3)
			assert.Equal(t, uint8(0xff), c.A)
			assert.Equal(t, src.NRGBAAt(2, 3).R, c.R)
		})
	}
}

func TestLoader_GenericErrors(t *testing.T) {
	dir := t.TempDir()
	l := &Loader{Raster: &fakeReader{}, Policies: DefaultPolicies}

	_, err := l.Load(filepath.Join(dir, "missing.png"), ModeRGB)
	assert.True(t, os.IsNotExist(errors.Cause(err)))

	corrupt := filepath.Join(dir, "corrupt.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not an image"), 0644))
	_, err = l.Load(corrupt, ModeRGB)
	assert.Error(t, err)

	_, err = l.Load(corrupt, Mode("CMYK"))
	assert.True(t, errors.Is(err, ErrUnsupportedMode))
}

func TestLoader_DefaultLoaderGeneric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.png")
	writeImage(t, path, gradientImage(4, 4))

	a, err := Load(path, ModeRGB)
	require.NoError(t, err)
	assert.Equal(t, 3, a.Channels)

	img, err := LoadImage(path, ModeAll)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
}
