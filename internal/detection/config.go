package detection

import (
	"errors"
	"fmt"
)

// Errors returned for malformed input. They are wrapped with detail, so test
// with errors.Is.
var (
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	ErrBufferSize        = errors.New("pixel buffer length mismatch")
	ErrInvalidConfig     = errors.New("invalid detection config")
)

// Default configuration values.
const (
	DefaultThreshold            = 128
	DefaultMinArea              = 28
	DefaultDouglasPeuckerRatio  = 0.02
	DefaultColinearToleranceDeg = 6.0
)

// Config holds the tunable parameters of one detection call.
//
// Config is passed by value into DetectShapes; the pipeline never keeps a
// reference to it, so the same value can be shared across concurrent calls.
type Config struct {
	// Threshold is the foreground cutoff (0-255). Pixels with luminance
	// strictly below it are foreground.
	Threshold int `json:"threshold"`

	// MinArea is the minimum component pixel count to be reported.
	MinArea int `json:"minArea"`

	// DouglasPeuckerRatio scales the simplification tolerance:
	// epsilon = max(4, DouglasPeuckerRatio * perimeter).
	DouglasPeuckerRatio float64 `json:"douglasPeuckerRatio"`

	// ColinearToleranceDeg is how close to 180° a vertex angle must be for
	// the vertex to be pruned as a straight run.
	ColinearToleranceDeg float64 `json:"colinearToleranceDeg"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() Config {
	return Config{
		Threshold:            DefaultThreshold,
		MinArea:              DefaultMinArea,
		DouglasPeuckerRatio:  DefaultDouglasPeuckerRatio,
		ColinearToleranceDeg: DefaultColinearToleranceDeg,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("%w: threshold must be between 0 and 255, got %d", ErrInvalidConfig, c.Threshold)
	}
	if c.MinArea < 1 {
		return fmt.Errorf("%w: minArea must be positive, got %d", ErrInvalidConfig, c.MinArea)
	}
	if c.DouglasPeuckerRatio < 0 {
		return fmt.Errorf("%w: douglasPeuckerRatio must not be negative, got %g", ErrInvalidConfig, c.DouglasPeuckerRatio)
	}
	if c.ColinearToleranceDeg < 0 || c.ColinearToleranceDeg >= 180 {
		return fmt.Errorf("%w: colinearToleranceDeg must be in [0, 180), got %g", ErrInvalidConfig, c.ColinearToleranceDeg)
	}
	return nil
}

// PixelBuffer is an immutable row-major RGBA image with a top-left origin.
//
// Pix holds 4 bytes per pixel (R, G, B, A) with no row padding, so
// len(Pix) must equal Width*Height*4.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// Validate reports whether the buffer is well formed.
func (b PixelBuffer) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, b.Width, b.Height)
	}
	if want := b.Width * b.Height * 4; len(b.Pix) != want {
		return fmt.Errorf("%w: got %d bytes, want %d for %dx%d RGBA",
			ErrBufferSize, len(b.Pix), want, b.Width, b.Height)
	}
	return nil
}
