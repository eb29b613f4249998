package split

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/stonlimart/libforest/histogram"
)

// Split describes the best threshold found on a feature.
type Split struct {
	Feature   int     // index of the feature, as passed to Search
	Threshold float64 // samples with value <= Threshold go left
	Gain      float64 // information gain in bits
	Left      []int   // class counts left of the threshold
	Right     []int   // class counts right of the threshold
}

// InformationGain returns the gain in bits of splitting a node with entropy
// parentEntropy into left and right. The gain of splitting an empty node is 0.
func InformationGain(parentEntropy float64, left, right *histogram.EntropyHistogram) float64 {
	m := left.Mass() + right.Mass()
	if m <= 0 {
		return 0
	}
	// (n_L/n)·H(left) = (n_L·H(left))/n
	return parentEntropy - (left.WeightedEntropy()+right.WeightedEntropy())/m
}

// Sweep finds the threshold on a single feature with maximum information gain.
// values and labels hold one entry per sample, labels are in [0,classes).
// If no threshold leaves at least cfg.MinLeafSize samples on both sides, or
// if all samples are of the same class, Sweep returns ErrNoSplit.
func Sweep(values []float64, labels []int, classes int, cfg Config) (Split, error) {
	if err := cfg.validate(); err != nil {
		return Split{}, err
	}
	cfg = cfg.normalized()
	if err := checkInput(values, labels, classes); err != nil {
		return Split{}, err
	}
	sw := &sweeper{minLeaf: cfg.MinLeafSize}
	return sw.sweep(values, labels, classes)
}

func checkInput(values []float64, labels []int, classes int) error {
	if classes < 1 {
		return fmt.Errorf("%w: class count %d", ErrInvalidInput, classes)
	}
	if len(values) != len(labels) {
		return fmt.Errorf("%w: %d values for %d labels", ErrInvalidInput, len(values), len(labels))
	}
	for i, l := range labels {
		if l < 0 || l >= classes {
			return fmt.Errorf("%w: label %d of sample %d not in [0,%d)", ErrInvalidInput, l, i, classes)
		}
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: value of sample %d is %g", ErrInvalidInput, i, v)
		}
	}
	return nil
}

// sweeper owns the left and right histograms of a sweep. A sweeper is re-used
// across features by a single worker; histograms keep their storage as long
// as the class count does not change.
type sweeper struct {
	left, right histogram.EntropyHistogram
	order       []int
	minLeaf     int
}

// sweep expects validated input.
func (sw *sweeper) sweep(values []float64, labels []int, classes int) (Split, error) {
	n := len(values)
	sw.left.Resize(classes)
	sw.right.Resize(classes)
	sw.order = sw.order[:0]
	for i := 0; i < n; i++ {
		sw.order = append(sw.order, i)
	}
	slices.SortStableFunc(sw.order, func(a, b int) int {
		return cmp.Compare(values[a], values[b])
	})
	for _, l := range labels {
		sw.right.Increment(l)
	}
	if sw.right.IsPure() {
		return Split{}, fmt.Errorf("%w: node is pure", ErrNoSplit)
	}
	parent := sw.right.Entropy()
	best, found := Split{Gain: math.Inf(-1)}, false
	var leftCounts []int
	for k := 0; k < n-1; k++ {
		i := sw.order[k]
		sw.right.Decrement(labels[i])
		sw.left.Increment(labels[i])
		v, next := values[i], values[sw.order[k+1]]
		if v == next {
			continue
		}
		if int(sw.left.Mass()) < sw.minLeaf || int(sw.right.Mass()) < sw.minLeaf {
			continue
		}
		if gain := InformationGain(parent, &sw.left, &sw.right); gain > best.Gain {
			best.Gain = gain
			best.Threshold = midpoint(v, next)
			leftCounts = sw.left.Counts()
			found = true
		}
	}
	if !found {
		return Split{}, fmt.Errorf("%w: no threshold leaves %d samples per side", ErrNoSplit, sw.minLeaf)
	}
	best.Left = leftCounts
	best.Right = make([]int, classes)
	for _, l := range labels {
		best.Right[l]++
	}
	for c := range best.Right {
		best.Right[c] -= leftCounts[c]
	}
	tracer().Debugf("sweep: threshold %g, gain %.4f, left %v, right %v",
		best.Threshold, best.Gain, best.Left, best.Right)
	return best, nil
}

// midpoint returns a threshold t with a <= t < b for finite a < b.
func midpoint(a, b float64) float64 {
	t := a/2 + b/2 // no overflow near ±MaxFloat64
	if t < a || t >= b {
		return a
	}
	return t
}
