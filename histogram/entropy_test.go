package histogram

import (
	"math"
	"testing"
)

func TestEntropyTermConvention(t *testing.T) {
	for _, x := range []float64{0, -1, -0.5} {
		if e := entropyTerm(x); e != 0 {
			t.Errorf("entropyTerm(%g) should be 0, is %g", x, e)
		}
	}
	for _, x := range []float64{0.5, 1, 2, 3, 4095, 4096, 10000, 2.5} {
		want := -x * math.Log2(x)
		if e := entropyTerm(x); math.Abs(e-want) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Errorf("entropyTerm(%g) = %g, want %g", x, e, want)
		}
	}
}

func TestBatchEntropy(t *testing.T) {
	if e := Entropy(nil); e != 0 {
		t.Errorf("entropy of nil counts should be 0, is %g", e)
	}
	if e := Entropy([]int{0, 0}); e != 0 {
		t.Errorf("entropy of zero counts should be 0, is %g", e)
	}
	if e := Entropy([]int{0, 7, 0}); e != 0 {
		t.Errorf("entropy of a pure distribution should be 0, is %g", e)
	}
	if e := Entropy([]int{5, 5}); math.Abs(e-1) > 1e-12 {
		t.Errorf("entropy of [5 5] should be 1 bit, is %g", e)
	}
	if e := Entropy([]int{3, 1}); math.Abs(e-0.811278) > 1e-6 {
		t.Errorf("entropy of [3 1] should be 0.811278 bits, is %g", e)
	}
}
