package srpair

import "github.com/pkg/errors"

var (
	// ErrCropTooLarge is returned when the requested crop does not fit inside the low resolution image.
	ErrCropTooLarge = errors.New("crop too large")
	// ErrInvalidScale is returned for a non-positive scale factor or downscale ratio.
	ErrInvalidScale = errors.New("invalid scale")
	// ErrUnknownRaster is returned when no band selection policy matches a raster path.
	ErrUnknownRaster = errors.New("unrecognized raster naming convention")
	// ErrUnsupportedMode is returned for an unknown channel mode.
	ErrUnsupportedMode = errors.New("unsupported channel mode")
	// ErrChannels is returned when an array can't be represented with the requested channel count.
	ErrChannels = errors.New("unsupported channel count")
	// ErrUnsupportedFormat is returned when the output extension has no encoder.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)
