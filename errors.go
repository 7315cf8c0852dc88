package upscale

import "errors"

// Errors returned by ScaleAndComposite and friends.
var (
	// ErrNilImage is returned when the source or destination image is nil.
	ErrNilImage = errors.New("upscale: nil image")

	// ErrInvalidImage is returned when an image or mask descriptor is
	// malformed: non-positive size, stride below width, or a pixel slice
	// too short for its geometry.
	ErrInvalidImage = errors.New("upscale: invalid image descriptor")

	// ErrInvalidRegion is returned when a source or destination region has a
	// non-positive extent, or the source region leaves the source image.
	ErrInvalidRegion = errors.New("upscale: invalid region")

	// ErrRegionTooLarge is returned when a region extent exceeds MaxExtent,
	// beyond which 16.16 fixed-point coordinates overflow.
	ErrRegionTooLarge = errors.New("upscale: region too large")

	// ErrUnknownOp is returned for an operator outside the known set.
	ErrUnknownOp = errors.New("upscale: unknown compositing operator")
)
