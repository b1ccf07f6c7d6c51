package srpair

import (
	"image"

	"github.com/pkg/errors"
)

// Sampler turns a high resolution image into a training or evaluation pair.
type Sampler struct {
	// Scale is the integer factor between the high and the low resolution image.
	Scale int
	// CropSize is the edge of the low resolution crop. Zero disables cropping.
	CropSize int
	// Train selects random crops, otherwise crops are centered.
	Train bool
	// Augment applies a random flip and rotation to the pair.
	Augment bool
}

func (s *Sampler) needsSource() bool {
	return s.Augment || (s.Train && s.CropSize > 0)
}

// Pair derives the low resolution image from hr, crops and augments the pair.
// src may be nil when the sampler consumes no randomness.
func (s *Sampler) Pair(src Source, hr image.Image) (*Pair, error) {
	if src == nil && s.needsSource() {
		return nil, errors.New("a random source is required for training samples")
	}

	lr, err := DownscaleByRatio(hr, float64(s.Scale))
	if err != nil {
		return nil, err
	}

	if s.CropSize > 0 {
		if s.Train {
			hr, lr, err = RandomCrop(src, s.CropSize, s.Scale, hr, lr)
		} else {
			hr, lr, err = CenterCrop(s.CropSize, s.Scale, hr, lr)
		}
		if err != nil {
			return nil, err
		}
	}

	if s.Augment {
		hr, lr = AugmentPair(src, hr, lr)
	}
	return &Pair{HR: hr, LR: lr}, nil
}

// ArrayPair is the dense form counterpart of Pair.
func (s *Sampler) ArrayPair(src Source, hr *Array) (*ArrayPair, error) {
	if src == nil && s.needsSource() {
		return nil, errors.New("a random source is required for training samples")
	}

	lr, err := DownscaleArrayByRatio(hr, float64(s.Scale))
	if err != nil {
		return nil, err
	}

	if s.CropSize > 0 {
		if s.Train {
			hr, lr, err = RandomCropArray(src, s.CropSize, s.Scale, hr, lr)
		} else {
			hr, lr, err = CenterCropArray(s.CropSize, s.Scale, hr, lr)
		}
		if err != nil {
			return nil, err
		}
	}

	if s.Augment {
		hr, lr = AugmentArrayPair(src, hr, lr)
	}
	return &ArrayPair{HR: hr, LR: lr}, nil
}
