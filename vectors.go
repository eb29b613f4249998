package libforest

import (
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// HammingDist returns the number of positions at which v1 and v2 differ.
// If the vectors are of unequal length, the missing entries count as
// mismatches.
func HammingDist[T comparable](v1, v2 []T) int {
	n, dist := len(v1), 0
	if len(v2) < n {
		n = len(v2)
		dist = len(v1) - len(v2)
	} else {
		dist = len(v2) - len(v1)
	}
	for i := 0; i < n; i++ {
		if v1[i] != v2[i] {
			dist++
		}
	}
	return dist
}

// ArgMax returns the index of the maximum of v. If the maximum occurs more
// than once, the smallest of its indices is returned. For an empty v the
// result is 0.
func ArgMax[T cmp.Ordered](v []T) int {
	if len(v) == 0 {
		return 0
	}
	index, best := 0, v[0]
	for i := 1; i < len(v); i++ {
		if v[i] > best {
			index, best = i, v[i]
		}
	}
	return index
}

// DumpVector writes the entries of v to w, one "index: value" pair per line.
// This is for debugging only. If w is a terminal, indices are colored.
func DumpVector[T any](w io.Writer, v []T) {
	idx := fmt.Sprint
	if isTerminal(w) {
		idx = color.New(color.FgBlue).Sprint
	}
	for i, x := range v {
		fmt.Fprintf(w, "%s: %v\n", idx(i), x)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
