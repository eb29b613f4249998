/*
Package histogram provides a class histogram which keeps the Shannon entropy
of its label distribution up to date while single samples are added and removed.

Decision-tree training evaluates candidate thresholds on a sorted feature by
moving samples, one at a time, from a "right" histogram into a "left" one, and
re-evaluating information gain after every move. Recomputing entropy for every
move costs O(classes); EntropyHistogram does the bookkeeping in O(1).

The histogram caches the mass-weighted entropy N·H, using the
decomposition

	N·H(p) = N·log2(N) − Σ c_i·log2(c_i)

Each mutation removes the old contribution of the touched bin from a
fixed-point sum of bin contributions and adds the new one, then combines the
sum with the contribution of the new total mass. Integer bookkeeping makes
an increment followed by a decrement exactly reversible. Entropy divides by
the mass on query.

Histograms are not safe for concurrent use. A parallel split search has to
give every goroutine its own pair of histograms.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, the libforest authors

Please refer to the LICENSE file for details.
*/
package histogram

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'forest'
func tracer() tracing.Trace {
	return tracing.Select("forest")
}
