package histogram

import "math"

// termTableSize bounds the integer arguments served from termTable.
// Bin counts and sample masses are integral and mostly small, so a table
// lookup replaces the logarithm on the mutation path.
const termTableSize = 1 << 12

var termTable = makeTermTable(termTableSize)

// Bin contributions are summed in fixed point with a resolution of
// 2^-30 bits. Integer addition is exactly reversible, so removing a sample
// right after adding it restores the sum bit for bit.
const fixedScale = 1 << 30

// MaxMass is the maximum number of samples a histogram holds. It keeps
// Σ c·log2(c) <= MaxMass·log2(MaxMass) within the range of the fixed-point sum.
const MaxMass = 1 << 28

var fixedTable = makeFixedTable(termTable)

func makeFixedTable(terms []float64) []int64 {
	t := make([]int64, len(terms))
	for i, x := range terms {
		t[i] = toFixed(x)
	}
	return t
}

func toFixed(x float64) int64 {
	return int64(math.Round(x * fixedScale))
}

// fixedTerm is entropyTerm(c) in fixed point, for a bin count c >= 0.
func fixedTerm(c int) int64 {
	if c < termTableSize {
		return fixedTable[c]
	}
	return toFixed(entropyTerm(float64(c)))
}

func makeTermTable(n int) []float64 {
	t := make([]float64, n)
	for i := 1; i < n; i++ {
		x := float64(i)
		t[i] = -x * math.Log2(x)
	}
	return t
}

// entropyTerm is the contribution −x·log2(x) of a quantity x, continuously
// extended to 0 for x <= 0.
func entropyTerm(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x < termTableSize {
		if i := int(x); float64(i) == x {
			return termTable[i]
		}
	}
	return -x * math.Log2(x)
}

// Entropy computes the Shannon entropy (in bits) of the distribution given by
// a vector of class counts from scratch. Non-positive counts are ignored.
// An empty or all-zero vector has entropy 0.
//
// This is the O(len(counts)) reference which EntropyHistogram maintains
// incrementally.
func Entropy(counts []int) float64 {
	var mass, sum float64
	for _, c := range counts {
		if c > 0 {
			mass += float64(c)
			sum += entropyTerm(float64(c))
		}
	}
	if mass == 0 {
		return 0
	}
	return (sum - entropyTerm(mass)) / mass
}
