package srpair

import (
	"image"
	"image/color"
)

// scriptedSource replays fixed values and records every draw.
type scriptedSource struct {
	floats []float64
	// intn maps the n of an Intn call to the returned value.
	intn  func(n int) int
	draws []string
	ns    []int
}

func (s *scriptedSource) Float64() float64 {
	s.draws = append(s.draws, "float")
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	s.draws = append(s.draws, "int")
	s.ns = append(s.ns, n)
	if s.intn == nil {
		return 0
	}
	return s.intn(n)
}

// maxSource always returns the largest value of the requested range.
func maxSource() *scriptedSource {
	return &scriptedSource{intn: func(n int) int { return n - 1 }}
}

// gradientImage returns an image whose pixels encode their own coordinates.
func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x*7 + y*3), A: uint8(200 + (x+y)%50)})
		}
	}
	return img
}

// seqArray returns an array filled with 0, 1, 2, ...
func seqArray(w, h, c int) *Array {
	a := NewArray(w, h, c)
	for i := range a.Pix {
		a.Pix[i] = uint8(i)
	}
	return a
}
