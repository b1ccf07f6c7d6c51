package srpair

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Pair is a high resolution image and its low resolution counterpart.
type Pair struct {
	HR image.Image
	LR image.Image
}

// ArrayPair is the dense form of a Pair.
type ArrayPair struct {
	HR *Array
	LR *Array
}

// OutputExtensions lists the extensions supported by Encode.
var OutputExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tiff"}

// Encode encodes an image to w. The format is taken from the extension of name,
// jpeg being used when name has no extension.
func Encode(w io.Writer, name string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case "", ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}
}

// Save encodes an image into the file at path, removing the file when encoding fails.
func Save(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create the destination file")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return Encode(f, path, img)
}
