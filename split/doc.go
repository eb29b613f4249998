/*
Package split evaluates candidate splits for decision-tree training.

For a single feature, Sweep sorts the samples by feature value and moves
them one at a time from a "right" into a "left" class histogram
(see package histogram), computing the information gain of every threshold
between two distinct consecutive values:

	gain = H(parent) − (n_L/n)·H(left) − (n_R/n)·H(right)

Search runs one sweep per feature on a bounded set of workers. Every worker
owns its pair of histograms; no histogram is shared between goroutines.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, the libforest authors

Please refer to the LICENSE file for details.
*/
package split

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'forest'
func tracer() tracing.Trace {
	return tracing.Select("forest")
}
