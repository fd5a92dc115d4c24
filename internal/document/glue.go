package document

import (
	"strings"

	"github.com/corpuskit/corpuskit/pkg/errors"
)

// GlueRuns merges each run of subsequent token indices into a single token
// joined by glue, placed at the run's first position; the run's remaining
// positions are physically removed from the buffer. The merged token's
// lemma is set to the joined string and its trailing-whitespace flag is
// taken from the run's last token; all other attributes of the merged
// position are reset. Runs must be mutually exclusive, ascending and at
// least two indices long. The document must be compact; the precondition is
// checked before any mutation. Returns the merged token strings in run
// order.
func (d *Document) GlueRuns(runs [][]int, glue string) ([]string, error) {
	if !d.IsCompact() {
		return nil, errors.Newf(errors.ErrNotCompact,
			"document %q has a pending mask, compact it before gluing", d.label)
	}
	if err := d.checkRuns(runs); err != nil {
		return nil, err
	}
	if len(runs) == 0 || len(d.tokens) == 0 {
		return nil, nil
	}

	glued := make([]string, 0, len(runs))
	drop := make([]bool, len(d.tokens))
	for _, run := range runs {
		begin, end := run[0], run[len(run)-1]
		merged := strings.Join(d.tokens[begin:end+1], glue)
		glued = append(glued, merged)

		d.tokens[begin] = merged
		if d.attrs.Lemma != nil {
			d.attrs.Lemma[begin] = merged
		}
		if d.attrs.POS != nil {
			d.attrs.POS[begin] = ""
		}
		if d.attrs.IsPunct != nil {
			d.attrs.IsPunct[begin] = false
		}
		if d.attrs.LikeNum != nil {
			d.attrs.LikeNum[begin] = false
		}
		if d.attrs.Space != nil {
			d.attrs.Space[begin] = d.attrs.Space[end]
		}
		for _, vals := range d.attrs.Custom {
			vals[begin] = ""
		}
		for i := begin + 1; i <= end; i++ {
			drop[i] = true
		}
	}

	d.tokens = dropStrings(d.tokens, drop)
	d.mask = dropBools(d.mask, drop)
	d.attrs.Lemma = dropStrings(d.attrs.Lemma, drop)
	d.attrs.POS = dropStrings(d.attrs.POS, drop)
	d.attrs.IsPunct = dropBools(d.attrs.IsPunct, drop)
	d.attrs.LikeNum = dropBools(d.attrs.LikeNum, drop)
	d.attrs.Space = dropBools(d.attrs.Space, drop)
	for name, vals := range d.attrs.Custom {
		d.attrs.Custom[name] = dropStrings(vals, drop)
	}

	return glued, nil
}

// checkRuns validates runs before mutation: each run must hold at least two
// ascending consecutive indices inside the buffer, and runs must not share
// positions.
func (d *Document) checkRuns(runs [][]int) error {
	seen := make(map[int]struct{})
	for _, run := range runs {
		if len(run) < 2 {
			return errors.Newf(errors.ErrInvalidInput,
				"glue run must span at least two tokens, got %d", len(run))
		}
		for i, idx := range run {
			if idx < 0 || idx >= len(d.tokens) {
				return errors.Newf(errors.ErrInvalidInput,
					"glue run index %d outside document of length %d", idx, len(d.tokens))
			}
			if i > 0 && idx != run[i-1]+1 {
				return errors.Newf(errors.ErrInvalidInput,
					"glue run indices must be consecutive, got %d after %d", idx, run[i-1])
			}
			if _, dup := seen[idx]; dup {
				return errors.Newf(errors.ErrInvalidInput,
					"glue runs overlap at index %d", idx)
			}
			seen[idx] = struct{}{}
		}
	}
	return nil
}

func dropStrings(src []string, drop []bool) []string {
	if src == nil {
		return nil
	}
	out := src[:0]
	for i, v := range src {
		if !drop[i] {
			out = append(out, v)
		}
	}
	return out
}

func dropBools(src []bool, drop []bool) []bool {
	if src == nil {
		return nil
	}
	out := src[:0]
	for i, v := range src {
		if !drop[i] {
			out = append(out, v)
		}
	}
	return out
}
