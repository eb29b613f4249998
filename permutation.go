package libforest

import (
	"fmt"
	"math/rand"
	"unsafe"
)

// RandomPermutation creates a uniformly distributed random permutation of
// [0,n), given as the list of images of 0…n-1. If rng is nil, the global
// source of package math/rand is used.
func RandomPermutation(n int, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: permutation of negative length %d", ErrIllegalArguments, n)
	}
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	sigma := make([]int, n)
	for i := range sigma {
		sigma[i] = i
	}
	for i := n - 1; i > 0; i-- { // Fisher-Yates
		j := intn(i + 1)
		sigma[i], sigma[j] = sigma[j], sigma[i]
	}
	return sigma, nil
}

// IsValidPermutation returns true if sigma is a permutation of [0,len(sigma)),
// i.e. if every image is in range and no image occurs twice.
func IsValidPermutation(sigma []int) bool {
	seen := make([]bool, len(sigma))
	for _, img := range sigma {
		if img < 0 || img >= len(sigma) || seen[img] {
			return false
		}
		seen[img] = true
	}
	return true
}

// Permute applies a permutation to in and stores the result in out, such that
// out[perm[i]] = in[i]. out is resized to the length of in and returned.
//
// perm must have the same length as in, and in and out must not overlap in
// memory (ErrAliasedStorage).
// Permute does not check perm for being a valid permutation, as this would
// be too expensive for repeated calls. If perm is not valid, out has the
// correct length but undefined content. Clients may check perm with
// IsValidPermutation beforehand.
func Permute[E any](perm []int, in []E, out []E) ([]E, error) {
	if len(perm) != len(in) {
		T().Errorf("permute: permutation of length %d applied to vector of length %d", len(perm), len(in))
		return out, fmt.Errorf("%w: permutation has length %d, vector has length %d",
			ErrIllegalArguments, len(perm), len(in))
	}
	if cap(out) < len(in) {
		out = make([]E, len(in))
	} else {
		out = out[:len(in)]
	}
	if overlapping(in, out) {
		T().Errorf("permute: input and output vector share storage")
		return out, ErrAliasedStorage
	}
	for i, img := range perm {
		if img < 0 || img >= len(out) {
			continue
		}
		out[img] = in[i]
	}
	return out, nil
}

// overlapping reports whether the memory ranges of a and b intersect.
func overlapping[E any](a, b []E) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	if size == 0 {
		return false
	}
	pa := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	pb := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return pa < pb+uintptr(len(b))*size && pb < pa+uintptr(len(a))*size
}
