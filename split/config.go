package split

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/guiguan/caster"
)

var (
	// ErrInvalidConfig signals an invalid search configuration.
	ErrInvalidConfig = errors.New("split: invalid configuration")
	// ErrInvalidInput signals inconsistent sample data, e.g. a label out of range.
	ErrInvalidInput = errors.New("split: invalid input")
	// ErrNoSplit signals that no admissible threshold exists.
	ErrNoSplit = errors.New("split: no admissible split")
)

// Config configures split evaluation.
type Config struct {
	// MinLeafSize is the minimum number of samples on either side of a split.
	// Defaults to 1.
	MinLeafSize int
	// Workers bounds the number of features evaluated in parallel by Search.
	// Defaults to GOMAXPROCS.
	Workers int
	// SampleSize, if positive and smaller than the number of samples, makes
	// Search evaluate a random subsample of this size.
	SampleSize int
	// Seed seeds the subsampling permutation.
	Seed int64
	// Progress, if set, receives a FeatureResult for every feature Search
	// has finished. Publishing never blocks a worker: results are dropped
	// while a subscriber's channel is full.
	Progress *caster.Caster
}

func (cfg Config) normalized() Config {
	if cfg.MinLeafSize == 0 {
		cfg.MinLeafSize = 1
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.MinLeafSize < 1 {
		return fmt.Errorf("%w: minimum leaf size %d", ErrInvalidConfig, cfg.MinLeafSize)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("%w: worker count %d", ErrInvalidConfig, cfg.Workers)
	}
	if cfg.SampleSize < 0 {
		return fmt.Errorf("%w: sample size %d", ErrInvalidConfig, cfg.SampleSize)
	}
	return nil
}
