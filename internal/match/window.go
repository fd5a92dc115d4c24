package match

import (
	"sort"

	"github.com/corpuskit/corpuskit/pkg/errors"
)

// Windows builds one index window per true entry in matches: the range
// [i-left, i+right] clipped to the valid index range. Windows are returned
// in ascending order of the match index and may overlap.
func Windows(matches []bool, left, right int) ([][]int, error) {
	if err := checkRadius(left, right); err != nil {
		return nil, err
	}

	var windows [][]int
	for i, m := range matches {
		if !m {
			continue
		}
		win := make([]int, 0, left+right+1)
		for j := i - left; j <= i+right; j++ {
			if j >= 0 && j < len(matches) {
				win = append(win, j)
			}
		}
		windows = append(windows, win)
	}
	return windows, nil
}

// FlatWindows concatenates all window indices into a single slice. With
// removeOverlaps the result is deduplicated and sorted ascending; otherwise
// it is returned as produced and may contain duplicates.
func FlatWindows(matches []bool, left, right int, removeOverlaps bool) ([]int, error) {
	windows, err := Windows(matches, left, right)
	if err != nil {
		return nil, err
	}

	flat := make([]int, 0, len(windows)*(left+right+1))
	for _, win := range windows {
		flat = append(flat, win...)
	}

	if removeOverlaps {
		sort.Ints(flat)
		flat = dedupSorted(flat)
	}
	return flat, nil
}

// KeepMask converts flattened window indices into a boolean keep-mask over a
// view of length n. Indices must be deduplicated, i.e. come from FlatWindows
// with removeOverlaps set.
func KeepMask(indices []int, n int) []bool {
	mask := make([]bool, n)
	for _, i := range indices {
		if i >= 0 && i < n {
			mask[i] = true
		}
	}
	return mask
}

func checkRadius(left, right int) error {
	if left < 0 {
		return errors.Newf(errors.ErrInvalidInput, "left context must be >= 0, got %d", left)
	}
	if right < 0 {
		return errors.Newf(errors.ErrInvalidInput, "right context must be >= 0, got %d", right)
	}
	return nil
}

func dedupSorted(sorted []int) []int {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
