package srpair

import (
	"image"

	"github.com/disintegration/imaging"
)

// Rotation is a counter clockwise rotation by a multiple of 90 degree.
type Rotation int

// The supported rotations.
const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

func (r Rotation) String() string {
	switch r {
	case Rotate90:
		return "rot90"
	case Rotate180:
		return "rot180"
	case Rotate270:
		return "rot270"
	}
	return "rot0"
}

// RotationFor maps a value drawn from [0, 4) to a rotation.
// The table is not monotonic: [0,1) rotates by 90, [1,2) by 270,
// [2,3) by 180 and [3,4) leaves the image untouched.
func RotationFor(r float64) Rotation {
	switch {
	case r < 1:
		return Rotate90
	case r < 2:
		return Rotate270
	case r < 3:
		return Rotate180
	}
	return Rotate0
}

// Transform holds the geometric decisions shared by both members of a pair.
type Transform struct {
	HFlip    bool
	VFlip    bool
	Rotation Rotation
}

// DrawTransform consumes exactly three values from src, in this order:
// the horizontal flip, the vertical flip and the rotation.
func DrawTransform(src Source) Transform {
	hflip := src.Float64() > 0.5
	vflip := src.Float64() > 0.5
	rot := src.Float64() * 4

	return Transform{
		HFlip:    hflip,
		VFlip:    vflip,
		Rotation: RotationFor(rot),
	}
}

// Apply runs the transform over the handle form of an image.
// Flips are applied before the rotation.
func (t Transform) Apply(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	if t.HFlip {
		dst = imaging.FlipH(dst)
	}
	if t.VFlip {
		dst = imaging.FlipV(dst)
	}
	return rotate(dst, t.Rotation)
}

// ApplyArray runs the transform over the dense form of an image.
func (t Transform) ApplyArray(a *Array) *Array {
	if t.HFlip {
		a = a.FlipH()
	}
	if t.VFlip {
		a = a.FlipV()
	}
	return rotateArray(a, t.Rotation)
}

// AugmentPair flips and rotates both images of a pair with one shared draw.
func AugmentPair(src Source, hr, lr image.Image) (*image.NRGBA, *image.NRGBA) {
	t := DrawTransform(src)
	return t.Apply(hr), t.Apply(lr)
}

// AugmentArrayPair is the dense form counterpart of AugmentPair.
func AugmentArrayPair(src Source, hr, lr *Array) (*Array, *Array) {
	t := DrawTransform(src)
	return t.ApplyArray(hr), t.ApplyArray(lr)
}

// RandomRot90 rotates a single image using one draw from src.
func RandomRot90(src Source, img image.Image) *image.NRGBA {
	return rotate(imaging.Clone(img), RotationFor(src.Float64()*4))
}

// RandomRot90Array rotates a single array using one draw from src.
func RandomRot90Array(src Source, a *Array) *Array {
	return rotateArray(a, RotationFor(src.Float64()*4))
}

func rotate(img *image.NRGBA, r Rotation) *image.NRGBA {
	switch r {
	case Rotate90:
		return imaging.Rotate90(img)
	case Rotate180:
		return imaging.Rotate180(img)
	case Rotate270:
		return imaging.Rotate270(img)
	}
	return img
}

func rotateArray(a *Array, r Rotation) *Array {
	switch r {
	case Rotate90:
		return a.Rotate90()
	case Rotate180:
		return a.Rotate180()
	case Rotate270:
		return a.Rotate270()
	}
	return a
}
