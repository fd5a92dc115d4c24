package corpus

import (
	"strings"
	"time"

	"github.com/corpuskit/corpuskit/internal/document"
	"github.com/corpuskit/corpuskit/internal/match"
	"github.com/corpuskit/corpuskit/internal/split"
	"github.com/corpuskit/corpuskit/pkg/errors"
)

// Transform applies fn to every live token in every document. Masked tokens
// and token attributes are left untouched.
func (c *Corpus) Transform(fn func(string) string) error {
	defer c.observe("transform", time.Now())
	return c.forEach(func(_ int, d *document.Document) error {
		tokens := d.Tokens()
		for i, t := range tokens {
			tokens[i] = fn(t)
		}
		return d.SetLiveTokens(tokens)
	})
}

// ToLowercase lowercases every live token.
func (c *Corpus) ToLowercase() error {
	return c.Transform(strings.ToLower)
}

// RemoveChars deletes the given characters from every live token. Tokens
// may become empty; CleanTokens with RemoveEmpty masks them afterwards.
func (c *Corpus) RemoveChars(chars []rune) error {
	if len(chars) == 0 {
		return errors.New(errors.ErrInvalidInput, "no characters given")
	}
	drop := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		drop[r] = struct{}{}
	}
	return c.Transform(func(t string) string {
		return strings.Map(func(r rune) rune {
			if _, ok := drop[r]; ok {
				return -1
			}
			return r
		}, t)
	})
}

// ExpandCompounds splits probable compound tokens in every document and
// replaces each document with a new one whose token sequence contains the
// split parts in place of the original token. Split parts carry themselves
// as lemma; the trailing-space flag of the source token moves to the last
// part. All other token attributes are dropped since they no longer align
// with the new positions.
func (c *Corpus) ExpandCompounds(splitChars []rune, minPartLen int, splitOnCase bool) error {
	defer c.observe("expand_compounds", time.Now())

	newDocs := make([]*document.Document, len(c.docs))
	err := c.forEach(func(i int, d *document.Document) error {
		nd, expanded, err := expandDoc(d, splitChars, minPartLen, splitOnCase)
		if err != nil {
			return err
		}
		newDocs[i] = nd
		if c.met != nil && expanded > 0 {
			c.met.CompoundsExpanded.Add(float64(expanded))
		}
		return nil
	})
	if err != nil {
		return err
	}
	c.docs = newDocs
	return c.rebuildIndex()
}

// expandDoc builds the expanded replacement for one document. The second
// return value is the number of tokens that split into more than one part.
func expandDoc(d *document.Document, splitChars []rune, minPartLen int, splitOnCase bool) (*document.Document, int, error) {
	tokens := d.Tokens()
	lemma := d.LiveLemma()
	space := d.LiveSpace()

	newTokens := make([]string, 0, len(tokens))
	newLemma := make([]string, 0, len(tokens))
	newSpace := make([]bool, 0, len(tokens))
	expanded := 0
	for i, t := range tokens {
		parts, err := split.ExpandCompound(t, splitChars, minPartLen, splitOnCase)
		if err != nil {
			return nil, 0, err
		}
		if len(parts) > 1 {
			expanded++
		}
		for j, p := range parts {
			newTokens = append(newTokens, p)
			// an unsplit token keeps its lemma, split parts become their own
			if len(parts) == 1 && lemma != nil {
				newLemma = append(newLemma, lemma[i])
			} else {
				newLemma = append(newLemma, p)
			}
			last := j == len(parts)-1
			if space != nil && last {
				newSpace = append(newSpace, space[i])
			} else {
				newSpace = append(newSpace, false)
			}
		}
	}

	attrs := document.Attributes{
		Lemma: newLemma,
	}
	if space != nil {
		attrs.Space = newSpace
	}
	nd, err := document.New(d.Label(), newTokens, attrs)
	if err != nil {
		return nil, 0, err
	}
	return nd, expanded, nil
}

// GlueTokens finds every occurrence of the subsequent patterns in every
// document and merges each occurrence into a single token joined by glue.
// All documents are compacted first since gluing deletes positions. The
// returned slice holds the distinct merged tokens, sorted.
func (c *Corpus) GlueTokens(patterns []string, glue string, opts match.Options) ([]string, error) {
	defer c.observe("glue_tokens", time.Now())
	c.countMatch(opts)
	c.CompactAll()

	merged := make([][]string, len(c.docs))
	err := c.forEach(func(i int, d *document.Document) error {
		runs, err := match.Subsequent(patterns, d.Tokens(), opts)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			return nil
		}
		glued, err := d.GlueRuns(runs, glue)
		if err != nil {
			return err
		}
		merged[i] = glued
		if c.met != nil {
			c.met.GlueRunsTotal.Add(float64(len(glued)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, docMerged := range merged {
		for _, t := range docMerged {
			seen[t] = struct{}{}
		}
	}
	return sortedKeys(seen), nil
}
