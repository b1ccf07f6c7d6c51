package srpair

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// CropPlan holds the matching crop rectangles of an (hr, lr) pair.
// LR is expressed in low resolution coordinates, HR in high resolution coordinates,
// and HR == LR scaled by the pair's scale factor.
type CropPlan struct {
	HR image.Rectangle
	LR image.Rectangle
}

// newCropPlan derives the high resolution rectangle from the low resolution offset.
func newCropPlan(offX, offY, size, scale int) CropPlan {
	hrSize := size * scale
	offXHR, offYHR := offX*scale, offY*scale

	return CropPlan{
		HR: image.Rect(offXHR, offYHR, offXHR+hrSize, offYHR+hrSize),
		LR: image.Rect(offX, offY, offX+size, offY+size),
	}
}

// checkCrop validates a square crop of the given size against the low resolution dimensions.
func checkCrop(size, scale, lrW, lrH int) error {
	if scale < 1 {
		return errors.Wrapf(ErrInvalidScale, "scale factor %d", scale)
	}
	if size < 1 {
		return errors.Wrapf(ErrCropTooLarge, "crop size %d", size)
	}
	if lrW < size || lrH < size {
		return errors.Wrapf(ErrCropTooLarge, "crop size %d exceeds the %dx%d low resolution image", size, lrW, lrH)
	}
	return nil
}

// CenterCropPlan computes the centered crop of a pair. size is the edge of the
// low resolution crop and scale the integer factor between the two images.
func CenterCropPlan(size, scale, lrW, lrH int) (CropPlan, error) {
	if err := checkCrop(size, scale, lrW, lrH); err != nil {
		return CropPlan{}, err
	}
	return newCropPlan((lrW-size)/2, (lrH-size)/2, size, scale), nil
}

// RandomCropPlan computes a random crop of a pair. Both offsets are drawn from
// the inclusive range [0, dim-size], the vertical one first.
func RandomCropPlan(src Source, size, scale, lrW, lrH int) (CropPlan, error) {
	if err := checkCrop(size, scale, lrW, lrH); err != nil {
		return CropPlan{}, err
	}
	offY := randIntInclusive(src, 0, lrH-size)
	offX := randIntInclusive(src, 0, lrW-size)

	return newCropPlan(offX, offY, size, scale), nil
}

// Apply crops both images of a pair.
func (c CropPlan) Apply(hr, lr image.Image) (*image.NRGBA, *image.NRGBA) {
	return imaging.Crop(hr, c.HR.Add(hr.Bounds().Min)), imaging.Crop(lr, c.LR.Add(lr.Bounds().Min))
}

// ApplyArray crops both arrays of a pair.
func (c CropPlan) ApplyArray(hr, lr *Array) (*Array, *Array) {
	return hr.Crop(c.HR), lr.Crop(c.LR)
}

// CenterCrop crops the center of a pair, used for evaluation.
func CenterCrop(size, scale int, hr, lr image.Image) (*image.NRGBA, *image.NRGBA, error) {
	b := lr.Bounds()
	plan, err := CenterCropPlan(size, scale, b.Dx(), b.Dy())
	if err != nil {
		return nil, nil, err
	}
	hrc, lrc := plan.Apply(hr, lr)
	return hrc, lrc, nil
}

// CenterCropArray is the dense form counterpart of CenterCrop.
func CenterCropArray(size, scale int, hr, lr *Array) (*Array, *Array, error) {
	plan, err := CenterCropPlan(size, scale, lr.Width, lr.Height)
	if err != nil {
		return nil, nil, err
	}
	hrc, lrc := plan.ApplyArray(hr, lr)
	return hrc, lrc, nil
}

// RandomCrop crops a pair at a random offset, used for training.
func RandomCrop(src Source, size, scale int, hr, lr image.Image) (*image.NRGBA, *image.NRGBA, error) {
	b := lr.Bounds()
	plan, err := RandomCropPlan(src, size, scale, b.Dx(), b.Dy())
	if err != nil {
		return nil, nil, err
	}
	hrc, lrc := plan.Apply(hr, lr)
	return hrc, lrc, nil
}

// RandomCropArray is the dense form counterpart of RandomCrop.
func RandomCropArray(src Source, size, scale int, hr, lr *Array) (*Array, *Array, error) {
	plan, err := RandomCropPlan(src, size, scale, lr.Width, lr.Height)
	if err != nil {
		return nil, nil, err
	}
	hrc, lrc := plan.ApplyArray(hr, lr)
	return hrc, lrc, nil
}
