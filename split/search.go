package split

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/stonlimart/libforest"
	"golang.org/x/sync/errgroup"
)

// FeatureResult is published to Config.Progress for every evaluated feature.
// Err is ErrNoSplit (wrapped) if the feature admits no split.
type FeatureResult struct {
	Feature int
	Split   Split
	Err     error
}

// Search finds the split with maximum information gain over all features.
// features[f][i] is the value of feature f for sample i; labels[i] is the
// class of sample i. Features are evaluated in parallel by at most
// cfg.Workers goroutines. On equal gain, the feature with the lower index wins.
//
// Search returns ErrNoSplit if no feature admits a split, and ctx.Err() if
// the context is cancelled before all features have been evaluated.
func Search(ctx context.Context, features [][]float64, labels []int, classes int, cfg Config) (Split, error) {
	if err := ctx.Err(); err != nil {
		return Split{}, err
	}
	if err := cfg.validate(); err != nil {
		return Split{}, err
	}
	cfg = cfg.normalized()
	for f, values := range features {
		if err := checkInput(values, labels, classes); err != nil {
			return Split{}, fmt.Errorf("feature %d: %w", f, err)
		}
	}
	features, labels, err := subsample(features, labels, cfg)
	if err != nil {
		return Split{}, err
	}
	results := make([]FeatureResult, len(features))
	queue := make(chan int)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(queue)
		for f := range features {
			select {
			case queue <- f:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	workers := min(cfg.Workers, max(len(features), 1))
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			sw := &sweeper{minLeaf: cfg.MinLeafSize} // owned by this worker
			for f := range queue {
				if err := gctx.Err(); err != nil {
					return err
				}
				s, err := sw.sweep(features[f], labels, classes)
				if err != nil && !errors.Is(err, ErrNoSplit) {
					return err
				}
				s.Feature = f
				results[f] = FeatureResult{Feature: f, Split: s, Err: err}
				if cfg.Progress != nil && !cfg.Progress.TryPub(results[f]) {
					tracer().Debugf("search: progress caster closed, feature %d not published", f)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Split{}, err
	}
	best := -1
	for f, r := range results {
		if r.Err != nil {
			continue
		}
		if best < 0 || r.Split.Gain > results[best].Split.Gain {
			best = f
		}
	}
	if best < 0 {
		tracer().Infof("search: none of %d features admits a split", len(features))
		return Split{}, fmt.Errorf("%w: tried %d features", ErrNoSplit, len(features))
	}
	s := results[best].Split
	tracer().Infof("search: best split on feature %d at %g, gain %.4f", s.Feature, s.Threshold, s.Gain)
	return s, nil
}

// subsample draws cfg.SampleSize samples without replacement, if requested.
func subsample(features [][]float64, labels []int, cfg Config) ([][]float64, []int, error) {
	n := len(labels)
	if cfg.SampleSize <= 0 || cfg.SampleSize >= n {
		return features, labels, nil
	}
	sigma, err := libforest.RandomPermutation(n, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return nil, nil, err
	}
	shuffled, err := libforest.Permute(sigma, labels, nil)
	if err != nil {
		return nil, nil, err
	}
	sampled := make([][]float64, len(features))
	for f, values := range features {
		col, err := libforest.Permute(sigma, values, nil)
		if err != nil {
			return nil, nil, err
		}
		sampled[f] = col[:cfg.SampleSize]
	}
	tracer().Debugf("search: subsampled %d of %d samples", cfg.SampleSize, n)
	return sampled, shuffled[:cfg.SampleSize], nil
}
