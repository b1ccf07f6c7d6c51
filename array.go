package srpair

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Array is the dense form of an image: an eager, row-major pixel buffer
// with the channel dimension last (height × width × channels).
type Array struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewArray allocates a zero filled array.
func NewArray(width, height, channels int) *Array {
	return &Array{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

// Bounds returns the array domain as a rectangle anchored at (0, 0).
func (a *Array) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.Width, a.Height)
}

// PixOffset returns the index of the first channel of the pixel at (x, y).
func (a *Array) PixOffset(x, y int) int {
	return (y*a.Width + x) * a.Channels
}

// At returns the value of channel c at (x, y).
func (a *Array) At(x, y, c int) uint8 {
	return a.Pix[a.PixOffset(x, y)+c]
}

// Set stores the value of channel c at (x, y).
func (a *Array) Set(x, y, c int, v uint8) {
	a.Pix[a.PixOffset(x, y)+c] = v
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	dst := &Array{Width: a.Width, Height: a.Height, Channels: a.Channels}
	dst.Pix = append([]uint8(nil), a.Pix...)
	return dst
}

func (a *Array) String() string {
	return fmt.Sprintf("Array(%dx%dx%d)", a.Height, a.Width, a.Channels)
}

// Crop returns a copy of the region r. The region is clipped to the array bounds.
func (a *Array) Crop(r image.Rectangle) *Array {
	r = r.Intersect(a.Bounds())
	dst := NewArray(r.Dx(), r.Dy(), a.Channels)
	rowSize := r.Dx() * a.Channels
	for y := 0; y < dst.Height; y++ {
		si := a.PixOffset(r.Min.X, r.Min.Y+y)
		di := dst.PixOffset(0, y)
		copy(dst.Pix[di:di+rowSize], a.Pix[si:si+rowSize])
	}
	return dst
}

// FlipH mirrors the array left to right.
func (a *Array) FlipH() *Array {
	dst := NewArray(a.Width, a.Height, a.Channels)
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			a.copyPixel(dst, x, y, a.Width-x-1, y)
		}
	}
	return dst
}

// FlipV mirrors the array top to bottom.
func (a *Array) FlipV() *Array {
	dst := NewArray(a.Width, a.Height, a.Channels)
	rowSize := a.Width * a.Channels
	for y := 0; y < a.Height; y++ {
		si := a.PixOffset(0, a.Height-y-1)
		di := dst.PixOffset(0, y)
		copy(dst.Pix[di:di+rowSize], a.Pix[si:si+rowSize])
	}
	return dst
}

// Rotate90 rotates the array by 90 degree counter clockwise.
func (a *Array) Rotate90() *Array {
	dst := NewArray(a.Height, a.Width, a.Channels)
	for dstY := 0; dstY < dst.Height; dstY++ {
		for dstX := 0; dstX < dst.Width; dstX++ {
			a.copyPixel(dst, a.Width-dstY-1, dstX, dstX, dstY)
		}
	}
	return dst
}

// Rotate180 rotates the array by 180 degree.
func (a *Array) Rotate180() *Array {
	dst := NewArray(a.Width, a.Height, a.Channels)
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			a.copyPixel(dst, a.Width-x-1, a.Height-y-1, x, y)
		}
	}
	return dst
}

// Rotate270 rotates the array by 270 degree counter clockwise.
func (a *Array) Rotate270() *Array {
	dst := NewArray(a.Height, a.Width, a.Channels)
	for dstY := 0; dstY < dst.Height; dstY++ {
		for dstX := 0; dstX < dst.Width; dstX++ {
			a.copyPixel(dst, dstY, a.Height-dstX-1, dstX, dstY)
		}
	}
	return dst
}

// copyPixel copies every channel of the source pixel (sx, sy) into dst at (dx, dy).
func (a *Array) copyPixel(dst *Array, sx, sy, dx, dy int) {
	si := a.PixOffset(sx, sy)
	di := dst.PixOffset(dx, dy)
	copy(dst.Pix[di:di+a.Channels], a.Pix[si:si+a.Channels])
}

// Channel extracts a single channel as a grayscale image.
func (a *Array) Channel(c int) *image.Gray {
	dst := image.NewGray(a.Bounds())
	for i := 0; i < a.Width*a.Height; i++ {
		dst.Pix[i] = a.Pix[i*a.Channels+c]
	}
	return dst
}

// SetChannel overwrites channel c with the red component of src, which must have the array size.
// Grayscale images resampled by imaging carry the same value in every color component.
func (a *Array) SetChannel(c int, src *image.NRGBA) {
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			a.Set(x, y, c, src.Pix[src.PixOffset(x, y)])
		}
	}
}

// Image converts the array to its handle form. Arrays with 1, 3 or 4 channels are supported.
func (a *Array) Image() (image.Image, error) {
	switch a.Channels {
	case 1:
		dst := image.NewGray(a.Bounds())
		copy(dst.Pix, a.Pix)
		return dst, nil
	case 3:
		dst := image.NewNRGBA(a.Bounds())
		for i, j := 0, 0; i < len(a.Pix); i, j = i+3, j+4 {
			dst.Pix[j+0] = a.Pix[i+0]
			dst.Pix[j+1] = a.Pix[i+1]
			dst.Pix[j+2] = a.Pix[i+2]
			dst.Pix[j+3] = 0xff
		}
		return dst, nil
	case 4:
		dst := image.NewNRGBA(a.Bounds())
		copy(dst.Pix, a.Pix)
		return dst, nil
	}
	return nil, errors.Wrapf(ErrChannels, "cannot convert %v to an image", a)
}

// ArrayFromImage converts an image to the dense form with 1 (gray), 3 (RGB) or 4 (RGBA) channels.
func ArrayFromImage(img image.Image, channels int) (*Array, error) {
	src := imaging.Clone(img)
	b := src.Bounds()
	dst := NewArray(b.Dx(), b.Dy(), channels)

	switch channels {
	case 1:
		for y := 0; y < dst.Height; y++ {
			for x := 0; x < dst.Width; x++ {
				c := color.GrayModel.Convert(src.NRGBAAt(x, y)).(color.Gray)
				dst.Pix[dst.PixOffset(x, y)] = c.Y
			}
		}
	case 3:
		for i, j := 0, 0; j < len(src.Pix); i, j = i+3, j+4 {
			dst.Pix[i+0] = src.Pix[j+0]
			dst.Pix[i+1] = src.Pix[j+1]
			dst.Pix[i+2] = src.Pix[j+2]
		}
	case 4:
		copy(dst.Pix, src.Pix)
	default:
		return nil, errors.Wrapf(ErrChannels, "cannot convert an image to %d channels", channels)
	}
	return dst, nil
}
