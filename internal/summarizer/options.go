package summarizer

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	ErrEmptyInput     = errors.New("empty input")
	ErrInvalidOptions = errors.New("invalid options")
)

const (
	DefaultMaxIterations = 100
	DefaultDampingFactor = 0.85
	DefaultDelta         = 0.5
	DefaultRatio         = 1.0 / 3.0
	DefaultMinSentences  = 3
)

type Options struct {
	MaxIterations int
	DampingFactor float64
	// Delta is the convergence sensitivity; iteration stops once no score
	// moves by more than Delta/N.
	Delta float64
	// Ratio is the fraction of sentences kept, rounded down, never below one.
	Ratio float64
	// Inputs with fewer sentences are returned unchanged.
	MinSentences int
}

func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		DampingFactor: DefaultDampingFactor,
		Delta:         DefaultDelta,
		Ratio:         DefaultRatio,
		MinSentences:  DefaultMinSentences,
	}
}

func (o Options) Validate() error {
	switch {
	case o.MaxIterations < 1:
		return errors.Wrapf(ErrInvalidOptions, "max iterations must be at least 1, got %d", o.MaxIterations)
	case o.DampingFactor < 0 || o.DampingFactor > 1:
		return errors.Wrapf(ErrInvalidOptions, "damping factor must be within [0, 1], got %g", o.DampingFactor)
	case o.Delta < 0:
		return errors.Wrapf(ErrInvalidOptions, "delta must not be negative, got %g", o.Delta)
	case o.Ratio <= 0 || o.Ratio > 1:
		return errors.Wrapf(ErrInvalidOptions, "ratio must be within (0, 1], got %g", o.Ratio)
	case o.MinSentences < 1:
		return errors.Wrapf(ErrInvalidOptions, "min sentences must be at least 1, got %d", o.MinSentences)
	}
	return nil
}

// Fingerprint identifies the options in cache keys.
func (o Options) Fingerprint() string {
	return fmt.Sprintf("%d|%g|%g|%g|%d", o.MaxIterations, o.DampingFactor, o.Delta, o.Ratio, o.MinSentences)
}
