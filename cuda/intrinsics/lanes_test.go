package intrinsics

import (
	"slices"
	"testing"
)

func TestLanes(t *testing.T) {
	for _, level := range []Level{LevelFaux, LevelNative} {
		withLevel(t, level, func(t *testing.T) {
			src := []uint32{0, 1, 0xFF, 0x80000000, 0xFFFFFFFF}

			counts := make([]int, len(src))
			if n := PopulationCountLanes(counts, src); n != len(src) {
				t.Errorf("PopulationCountLanes: processed %d, want %d", n, len(src))
			}
			if want := []int{0, 1, 8, 1, 32}; !slices.Equal(counts, want) {
				t.Errorf("PopulationCountLanes: got %v, want %v", counts, want)
			}

			ffs := make([]int, len(src))
			FindFirstSetLanes(ffs, src)
			if want := []int{0, 1, 1, 32, 1}; !slices.Equal(ffs, want) {
				t.Errorf("FindFirstSetLanes: got %v, want %v", ffs, want)
			}

			clz := make([]int, len(src))
			CountLeadingZerosLanes(clz, src)
			if want := []int{32, 31, 24, 0, 0}; !slices.Equal(clz, want) {
				t.Errorf("CountLeadingZerosLanes: got %v, want %v", clz, want)
			}

			rev := make([]uint32, len(src))
			BitReverseLanes(rev, src)
			if want := []uint32{0, 0x80000000, 0xFF000000, 1, 0xFFFFFFFF}; !slices.Equal(rev, want) {
				t.Errorf("BitReverseLanes: got %#x, want %#x", rev, want)
			}

			// In place, twice, restores the input.
			inplace := slices.Clone(src)
			BitReverseLanes(inplace, inplace)
			BitReverseLanes(inplace, inplace)
			if !slices.Equal(inplace, src) {
				t.Errorf("BitReverseLanes involution: got %#x, want %#x", inplace, src)
			}
		})
	}
}

func TestMinMaxLanes(t *testing.T) {
	for _, level := range []Level{LevelFaux, LevelNative} {
		withLevel(t, level, func(t *testing.T) {
			a := []int32{1, -5, 7, 0, 9}
			b := []int32{2, -6, 7, 3}
			dst := make([]int32, 8)

			if n := MinimumLanes(dst, a, b); n != 4 {
				t.Errorf("MinimumLanes: processed %d, want 4", n)
			}
			if want := []int32{1, -6, 7, 0}; !slices.Equal(dst[:4], want) {
				t.Errorf("MinimumLanes: got %v, want %v", dst[:4], want)
			}

			if n := MaximumLanes(dst, a, b); n != 4 {
				t.Errorf("MaximumLanes: processed %d, want 4", n)
			}
			if want := []int32{2, -5, 7, 3}; !slices.Equal(dst[:4], want) {
				t.Errorf("MaximumLanes: got %v, want %v", dst[:4], want)
			}
			if dst[4] != 0 {
				t.Errorf("MaximumLanes wrote past the shortest input: dst[4] = %d", dst[4])
			}

			f := make([]float64, 2)
			MinimumLanes(f, []float64{1.5, -2}, []float64{0.5, 3})
			if want := []float64{0.5, -2}; !slices.Equal(f, want) {
				t.Errorf("MinimumLanes float64: got %v, want %v", f, want)
			}
		})
	}
}

func TestLanesShortDst(t *testing.T) {
	src := []uint8{1, 2, 3}
	dst := make([]int, 1)
	if n := PopulationCountLanes(dst, src); n != 1 {
		t.Errorf("processed %d, want 1", n)
	}
	if n := PopulationCountLanes[uint8](nil, src); n != 0 {
		t.Errorf("nil dst: processed %d, want 0", n)
	}
}
