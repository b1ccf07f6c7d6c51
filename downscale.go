package srpair

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Resample is the bicubic filter used for downscaling.
var Resample = imaging.CatmullRom

// downscaleSize returns floor(w/ratio) × floor(h/ratio).
func downscaleSize(w, h int, ratio float64) (int, int, error) {
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0, 0, errors.Wrapf(ErrInvalidScale, "downscale ratio %v", ratio)
	}
	nw := int(math.Floor(float64(w) / ratio))
	nh := int(math.Floor(float64(h) / ratio))
	if nw < 1 || nh < 1 {
		return 0, 0, errors.Wrapf(ErrInvalidScale, "downscaling %dx%d by %v gives an empty image", w, h, ratio)
	}
	return nw, nh, nil
}

// DownscaleByRatio shrinks the image by ratio using a bicubic filter.
// A ratio of 1 returns img itself.
func DownscaleByRatio(img image.Image, ratio float64) (image.Image, error) {
	if ratio == 1 {
		return img, nil
	}
	b := img.Bounds()
	w, h, err := downscaleSize(b.Dx(), b.Dy(), ratio)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, w, h, Resample), nil
}

// DownscaleArrayByRatio shrinks the array by ratio, resampling every channel
// with the same bicubic filter as DownscaleByRatio. The target size is
// floor(w/ratio) × floor(h/ratio) for both forms, samples outside the array
// are clamped to the nearest edge.
func DownscaleArrayByRatio(a *Array, ratio float64) (*Array, error) {
	if ratio == 1 {
		return a, nil
	}
	w, h, err := downscaleSize(a.Width, a.Height, ratio)
	if err != nil {
		return nil, err
	}
	dst := NewArray(w, h, a.Channels)
	for c := 0; c < a.Channels; c++ {
		dst.SetChannel(c, imaging.Resize(a.Channel(c), w, h, Resample))
	}
	return dst, nil
}
