package srpair

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/airbusgeo/godal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeGeoTIFF creates a 5 band float32 GeoTIFF where band b holds b/10,
// except for the first pixel of band 3 which is NaN.
func writeGeoTIFF(t *testing.T, path string, w, h int) {
	t.Helper()
	registerDrivers.Do(godal.RegisterAll)

	ds, err := godal.Create(godal.GTiff, path, 5, godal.Float32, w, h)
	require.NoError(t, err)

	buf := make([]float32, 5*w*h)
	for b := 0; b < 5; b++ {
		for i := 0; i < w*h; i++ {
			buf[b*w*h+i] = float32(b+1) / 10
		}
	}
	buf[2*w*h] = float32(math.NaN())

	require.NoError(t, ds.Write(0, 0, buf, w, h, godal.BandInterleaved()))
	require.NoError(t, ds.Close())
}

func TestGDAL_LoadGeoTIFF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "S2_T31UDQ_sample.tif")
	writeGeoTIFF(t, path, 4, 3)

	rgb, err := Load(path, ModeRGB)
	require.NoError(t, err)
	assert.Equal(t, 4, rgb.Width)
	assert.Equal(t, 3, rgb.Height)
	assert.Equal(t, 3, rgb.Channels)
	// Bands 4, 3, 2 with the NaN of band 3 replaced by zero.
	assert.Equal(t, []uint8{102, 0, 51}, rgb.Pix[:3])
	assert.Equal(t, []uint8{102, 76, 51}, rgb.Pix[3:6])

	all, err := Load(path, ModeAll)
	require.NoError(t, err)
	assert.Equal(t, 5, all.Channels)
	assert.Equal(t, []uint8{25, 51, 76, 102, 127}, all.Pix[5:10])
}

func TestGDAL_BandOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AOI_small.tif")
	writeGeoTIFF(t, path, 2, 2)

	ds, err := GDALReader{}.Open(path)
	require.NoError(t, err)
	defer ds.Close()

	_, err = ds.Read([]int{6})
	assert.Error(t, err)
}
