package intrinsics

import "github.com/zeta1999/libgiddy/util/builtins"

// PopulationCountLanes writes the population count of each src lane to dst.
// It processes min(len(dst), len(src)) lanes and returns that count.
func PopulationCountLanes[T builtins.Integers](dst []int, src []T) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = PopulationCount(src[i])
	}
	return n
}

// FindFirstSetLanes writes FindFirstSet of each src lane to dst.
// It processes min(len(dst), len(src)) lanes and returns that count.
func FindFirstSetLanes[T builtins.Integers](dst []int, src []T) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = FindFirstSet(src[i])
	}
	return n
}

// CountLeadingZerosLanes writes the leading zero count of each src lane to dst.
// It processes min(len(dst), len(src)) lanes and returns that count.
func CountLeadingZerosLanes[T builtins.Integers](dst []int, src []T) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = CountLeadingZeros(src[i])
	}
	return n
}

// BitReverseLanes writes the bit-reversed value of each src lane to dst.
// dst and src may be the same slice.
func BitReverseLanes[T builtins.Integers](dst, src []T) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = BitReverse(src[i])
	}
	return n
}

// MinimumLanes writes the lane-wise minimum of a and b to dst.
// It processes min(len(dst), len(a), len(b)) lanes and returns that count.
func MinimumLanes[T builtins.Lanes](dst, a, b []T) int {
	n := min(len(dst), len(a), len(b))
	for i := 0; i < n; i++ {
		dst[i] = Minimum(a[i], b[i])
	}
	return n
}

// MaximumLanes writes the lane-wise maximum of a and b to dst.
// It processes min(len(dst), len(a), len(b)) lanes and returns that count.
func MaximumLanes[T builtins.Lanes](dst, a, b []T) int {
	n := min(len(dst), len(a), len(b))
	for i := 0; i < n; i++ {
		dst[i] = Maximum(a[i], b[i])
	}
	return n
}
