package srpair

import (
	"log"
	"math"
	"strings"

	"github.com/esimov/srpair/utils"
	"github.com/pkg/errors"
)

// RasterDataset is an opened multi-band raster.
type RasterDataset interface {
	// Size returns the raster width, height and band count.
	Size() (width, height, bands int)
	// Read returns the requested 1-indexed bands in band-major order
	// (band, row, column). A nil band list reads every band.
	Read(bands []int) ([]float32, error)
	Close() error
}

// RasterReader opens geospatial rasters.
type RasterReader interface {
	Open(path string) (RasterDataset, error)
}

// BandPolicy selects the bands of a raster based on its path.
type BandPolicy struct {
	Name  string
	Match func(path string) bool
	// RGB lists the 1-indexed bands read in RGB mode.
	RGB []int
}

// PathContains returns a matcher accepting paths which contain any of the substrings.
func PathContains(substrs ...string) func(string) bool {
	return func(path string) bool {
		for _, s := range substrs {
			if strings.Contains(path, s) {
				return true
			}
		}
		return false
	}
}

// DefaultPolicies are the band selection rules of the known tile naming conventions.
var DefaultPolicies = []BandPolicy{
	{Name: "sentinel2", Match: PathContains("T11SPA", "T31UDQ"), RGB: []int{4, 3, 2}},
	{Name: "aoi", Match: PathContains("AOI"), RGB: []int{5, 3, 2}},
}

// selectBands returns the bands to read for path, nil meaning all of them.
func selectBands(policies []BandPolicy, path string, mode Mode) ([]int, error) {
	for _, p := range policies {
		if !p.Match(path) {
			continue
		}
		if mode == ModeRGB {
			return p.RGB, nil
		}
		return nil, nil
	}
	return nil, errors.Wrapf(ErrUnknownRaster, "no band policy for %q", path)
}

// readRaster opens the raster, reads the selected bands and normalizes them.
func readRaster(r RasterReader, policies []BandPolicy, path string, mode Mode) (*Array, error) {
	bands, err := selectBands(policies, path, mode)
	if err != nil {
		return nil, err
	}

	ds, err := r.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open the raster file %s", path)
	}
	defer func() {
		if err := ds.Close(); err != nil {
			log.Printf("could not close the raster file: %v", err)
		}
	}()

	w, h, n := ds.Size()
	if bands != nil {
		n = len(bands)
	}
	data, err := ds.Read(bands)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read the raster file %s", path)
	}
	if len(data) != w*h*n {
		return nil, errors.Errorf("raster file %s: read %d values, expected %dx%dx%d", path, len(data), w, h, n)
	}
	return bandsToArray(data, w, h, n), nil
}

// bandsToArray converts band-major values normalized to [0, 1] into an 8 bit
// array with the channel dimension last. NaN becomes 0 and values outside
// the unit interval saturate.
func bandsToArray(data []float32, width, height, bands int) *Array {
	dst := NewArray(width, height, bands)
	plane := width * height
	for b := 0; b < bands; b++ {
		for i, v := range data[b*plane : (b+1)*plane] {
			dst.Pix[i*bands+b] = toUint8(v)
		}
	}
	return dst
}

func toUint8(v float32) uint8 {
	f := float64(v)
	if math.IsNaN(f) {
		return 0
	}
	return uint8(utils.Clamp(f*255, 0, 255))
}
