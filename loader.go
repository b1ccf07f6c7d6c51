package srpair

import (
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/webp"
)

// Mode is the channel mode requested from the loaders.
type Mode string

const (
	// ModeRGB loads three color channels.
	ModeRGB Mode = "RGB"
	// ModeAll loads every available band.
	ModeAll Mode = "all"
)

// ParseMode converts a flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "rgb":
		return ModeRGB, nil
	case "all", "all-bands":
		return ModeAll, nil
	}
	return "", errors.Wrapf(ErrUnsupportedMode, "%q", s)
}

// Loader decodes images from disk. Paths with a tif extension are read as
// geospatial rasters, everything else goes through the generic image decoders.
type Loader struct {
	Raster   RasterReader
	Policies []BandPolicy
}

// NewLoader returns a loader backed by GDAL and the default band policies.
func NewLoader() *Loader {
	return &Loader{
		Raster:   GDALReader{},
		Policies: DefaultPolicies,
	}
}

var defaultLoader = NewLoader()

// Load decodes the file at path into its dense form using the default loader.
func Load(path string, mode Mode) (*Array, error) {
	return defaultLoader.Load(path, mode)
}

// LoadImage decodes the file at path into its handle form using the default loader.
func LoadImage(path string, mode Mode) (image.Image, error) {
	return defaultLoader.LoadImage(path, mode)
}

// IsRaster reports whether path is dispatched to the raster reader.
func IsRaster(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".tif")
}

// Load decodes the file at path into its dense form.
func (l *Loader) Load(path string, mode Mode) (*Array, error) {
	if mode != ModeRGB && mode != ModeAll {
		return nil, errors.Wrapf(ErrUnsupportedMode, "%q", mode)
	}
	if IsRaster(path) {
		return readRaster(l.Raster, l.Policies, path, mode)
	}

	img, err := decodeImg(path)
	if err != nil {
		return nil, err
	}
	if mode == ModeRGB {
		return ArrayFromImage(img, 3)
	}
	return ArrayFromImage(img, 4)
}

// LoadImage decodes the file at path into its handle form.
// Rasters read in ModeAll convert only when they hold 1, 3 or 4 bands.
func (l *Loader) LoadImage(path string, mode Mode) (image.Image, error) {
	a, err := l.Load(path, mode)
	if err != nil {
		return nil, err
	}
	return a.Image()
}

// decodeImg decodes an image file, releasing the file on every return path.
func decodeImg(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open the image file")
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("could not close the opened file: %v", err)
		}
	}()

	img, err := imaging.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode the image file %s", path)
	}
	return img, nil
}
