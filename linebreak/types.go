package linebreak

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var (
	// ErrBadLineWidth indicates a non-positive target line width.
	ErrBadLineWidth = errors.New("linebreak: line width must be > 0")

	// ErrBadPenalty indicates a negative overflow penalty.
	ErrBadPenalty = errors.New("linebreak: overflow penalty must be >= 0")

	// ErrBadWidth indicates a negative word width.
	ErrBadWidth = errors.New("linebreak: word width must be >= 0")

	// ErrBadBreaks indicates line ends that do not partition the words.
	ErrBadBreaks = errors.New("linebreak: invalid line ends")
)

// Defaults used by DefaultOptions.
const (
	DefaultLineWidth       = 80
	DefaultOverflowPenalty = 2500
)

// Options configures Breaks and Wrap.
//
// Fields:
//   - LineWidth       — target width L of every line (> 0).
//   - OverflowPenalty — cost per column a line exceeds L (≥ 0). Keep it well
//     above L² so overflowing is a last resort.
//   - Logger          — optional; traces the online minima engine. nil is silent.
type Options struct {
	LineWidth       int
	OverflowPenalty int
	Logger          *logrus.Logger
}

// DefaultOptions returns LineWidth=80, OverflowPenalty=2500, no logger.
func DefaultOptions() Options {
	return Options{
		LineWidth:       DefaultLineWidth,
		OverflowPenalty: DefaultOverflowPenalty,
	}
}

// validate checks option ranges.
func (o *Options) validate() error {
	if o.LineWidth <= 0 {
		return ErrBadLineWidth
	}
	if o.OverflowPenalty < 0 {
		return ErrBadPenalty
	}
	return nil
}
