package match

import (
	"github.com/corpuskit/corpuskit/pkg/errors"
)

// Subsequent finds runs of tokens matching the ordered patterns
// consecutively. A candidate set starts out as all token indices; each
// pattern restricts it to the positions directly after the previous
// matches, so every surviving terminal index expands backward into a run of
// exactly len(patterns) consecutive indices. At least two patterns are
// required. Matching stops early with an empty result as soon as the
// candidate set runs dry.
func Subsequent(patterns []string, tokens []string, opts Options) ([][]int, error) {
	if len(patterns) < 2 {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"subsequent matching requires at least two patterns, got %d", len(patterns))
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	var candidates []int
	for step, pat := range patterns {
		var next []int
		if step == 0 {
			next = make([]int, len(tokens))
			for i := range tokens {
				next[i] = i
			}
		} else {
			next = make([]int, 0, len(candidates))
			for _, idx := range candidates {
				if idx+1 < len(tokens) {
					next = append(next, idx+1)
				}
			}
		}

		subset := make([]string, len(next))
		for i, idx := range next {
			subset[i] = tokens[idx]
		}
		matched, err := Match(pat, subset, opts)
		if err != nil {
			return nil, err
		}

		candidates = candidates[:0]
		for i, ok := range matched {
			if ok {
				candidates = append(candidates, next[i])
			}
		}
		if len(candidates) == 0 {
			return nil, nil
		}
	}

	// candidates now holds the terminal index of every fully matched run
	runs := make([][]int, len(candidates))
	for i, end := range candidates {
		run := make([]int, len(patterns))
		for j := range run {
			run[j] = end - len(patterns) + 1 + j
		}
		runs[i] = run
	}
	return runs, nil
}
