package histogram

import (
	"fmt"
	"strings"
)

// EntropyHistogram is a histogram over class labels which maintains the
// entropy of its distribution incrementally.
//
// The zero value is a valid histogram with zero bins; use Resize or New to
// give it a width. An EntropyHistogram must not be copied by assignment,
// as the copy would share its bins with the original. Use Clone or CopyFrom.
type EntropyHistogram struct {
	counts    []int     // sample count per class
	entropies []float64 // entropyTerm(counts[i]), cached
	binSum    int64     // Σ entropies, fixed point
	mass      float64   // sum of counts
	total     float64   // mass-weighted entropy N·H
}

// New creates a histogram with the given number of bins, all of them empty.
func New(bins int) (*EntropyHistogram, error) {
	h := &EntropyHistogram{}
	if err := h.Resize(bins); err != nil {
		return nil, err
	}
	return h, nil
}

// Resize sets the number of bins and empties the histogram, even if the
// number of bins did not change. Storage is re-allocated only if the width
// changes.
func (h *EntropyHistogram) Resize(bins int) error {
	if bins < 0 {
		tracer().Errorf("histogram: cannot resize to %d bins", bins)
		return fmt.Errorf("%w: bin count %d is negative", ErrInvalidArgument, bins)
	}
	if bins != len(h.counts) {
		if bins == 0 {
			h.counts, h.entropies = nil, nil
		} else {
			h.counts = make([]int, bins)
			h.entropies = make([]float64, bins)
		}
	}
	h.Reset()
	return nil
}

// Reset empties all bins. The number of bins is unchanged.
func (h *EntropyHistogram) Reset() {
	clear(h.counts)
	clear(h.entropies)
	h.binSum = 0
	h.mass = 0
	h.total = 0
}

// Bins returns the number of bins (classes) of h.
func (h *EntropyHistogram) Bins() int {
	return len(h.counts)
}

// At returns the count of class i.
func (h *EntropyHistogram) At(i int) (int, error) {
	if i < 0 || i >= len(h.counts) {
		return 0, h.outOfRange(i)
	}
	return h.counts[i], nil
}

// Increment adds one sample of class i, updating the entropy in O(1).
// A histogram holds at most MaxMass samples.
func (h *EntropyHistogram) Increment(i int) error {
	if i < 0 || i >= len(h.counts) {
		return h.outOfRange(i)
	}
	if h.mass >= MaxMass {
		tracer().Errorf("histogram: increment beyond %d samples", MaxMass)
		return fmt.Errorf("%w: histogram holds %d samples", ErrOverflow, MaxMass)
	}
	h.mass++
	h.binSum -= fixedTerm(h.counts[i])
	h.counts[i]++
	h.entropies[i] = entropyTerm(float64(h.counts[i]))
	h.binSum += fixedTerm(h.counts[i])
	h.update()
	return nil
}

// Decrement removes one sample of class i, updating the entropy in O(1).
// It is an error to decrement an empty bin.
func (h *EntropyHistogram) Decrement(i int) error {
	if i < 0 || i >= len(h.counts) {
		return h.outOfRange(i)
	}
	if h.counts[i] == 0 {
		tracer().Errorf("histogram: decrement of empty bin %d", i)
		return fmt.Errorf("%w: class %d", ErrUnderflow, i)
	}
	h.mass--
	h.binSum -= fixedTerm(h.counts[i])
	h.counts[i]--
	if h.counts[i] == 0 {
		h.entropies[i] = 0 // 0·log2(0) := 0
	} else {
		h.entropies[i] = entropyTerm(float64(h.counts[i]))
		h.binSum += fixedTerm(h.counts[i])
	}
	h.update()
	return nil
}

// update re-derives the cached N·H from the bin sum and the mass term,
// N·H = Σ entropyTerm(c_i) − entropyTerm(N). It is a function of the
// integral state only, so an increment followed by a decrement of the same
// class restores the entropy exactly.
func (h *EntropyHistogram) update() {
	h.total = float64(h.binSum)/fixedScale - entropyTerm(h.mass)
}

// Mass returns the number of samples in h, i.e. the sum of all bin counts.
func (h *EntropyHistogram) Mass() float64 {
	return h.mass
}

// Entropy returns the Shannon entropy (in bits) of the class distribution.
// It does not rescan the bins. An empty histogram has entropy 0.
func (h *EntropyHistogram) Entropy() float64 {
	if h.mass <= 0 {
		return 0
	}
	e := h.total / h.mass
	if e < 0 { // rounding drift on pure histograms
		return 0
	}
	return e
}

// WeightedEntropy returns the entropy multiplied by the mass, N·H. This is
// the quantity cached internally, and the term an information-gain
// computation sums up over the children of a split.
func (h *EntropyHistogram) WeightedEntropy() float64 {
	return h.total
}

// IsPure returns true if at most one bin is non-empty. This includes the
// empty histogram. IsPure scans all bins.
func (h *EntropyHistogram) IsPure() bool {
	seen := false
	for _, c := range h.counts {
		if c > 0 {
			if seen {
				return false
			}
			seen = true
		}
	}
	return true
}

// Counts returns a copy of the bin counts.
func (h *EntropyHistogram) Counts() []int {
	if len(h.counts) == 0 {
		return []int{}
	}
	c := make([]int, len(h.counts))
	copy(c, h.counts)
	return c
}

// Clone returns a deep copy of h.
func (h *EntropyHistogram) Clone() *EntropyHistogram {
	c := &EntropyHistogram{}
	c.CopyFrom(h)
	return c
}

// CopyFrom makes h a deep copy of other. Storage of h is re-used if the
// widths match. Copying from nil leaves h with zero bins.
func (h *EntropyHistogram) CopyFrom(other *EntropyHistogram) {
	if h == other {
		return
	}
	if other == nil {
		h.Resize(0)
		return
	}
	if len(h.counts) != len(other.counts) {
		h.counts = make([]int, len(other.counts))
		h.entropies = make([]float64, len(other.entropies))
	}
	copy(h.counts, other.counts)
	copy(h.entropies, other.entropies)
	h.binSum = other.binSum
	h.mass = other.mass
	h.total = other.total
}

func (h *EntropyHistogram) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, c := range h.counts {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%d", c)
	}
	fmt.Fprintf(&b, "](mass=%g, H=%.4f)", h.mass, h.Entropy())
	return b.String()
}

func (h *EntropyHistogram) outOfRange(i int) error {
	tracer().Errorf("histogram: class index %d not in [0,%d)", i, len(h.counts))
	return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(h.counts))
}
