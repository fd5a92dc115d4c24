package corpus

import (
	"sort"
	"time"
	"unicode/utf8"

	"github.com/corpuskit/corpuskit/internal/document"
	"github.com/corpuskit/corpuskit/internal/match"
	"github.com/corpuskit/corpuskit/internal/pos"
	"github.com/corpuskit/corpuskit/pkg/errors"
)

// FilterOptions bundles the match parameters of a token filter. Inverse
// removes matching tokens instead of keeping them.
type FilterOptions struct {
	Match   match.Options
	Inverse bool
}

// Document-frequency comparators for RemoveTokensByDocFrequency.
const (
	DFCommon       = "common" // alias for >=
	DFGreater      = ">"
	DFGreaterEqual = ">="
	DFUncommon     = "uncommon" // alias for <=
	DFLess         = "<"
	DFLessEqual    = "<="
)

// FilterTokens keeps only the live tokens matching any of patterns (or
// removes them with Inverse set). Masked-out tokens are untouched.
func (c *Corpus) FilterTokens(patterns []string, opts FilterOptions) error {
	defer c.observe("tokens", time.Now())
	c.countMatch(opts.Match)
	return c.forEach(func(_ int, d *document.Document) error {
		m, err := match.MatchAny(patterns, d.Tokens(), opts.Match)
		if err != nil {
			return err
		}
		return c.applyMask(d, m, opts.Inverse)
	})
}

// RemoveTokens is FilterTokens with the match inverted.
func (c *Corpus) RemoveTokens(patterns []string, opts FilterOptions) error {
	opts.Inverse = !opts.Inverse
	return c.FilterTokens(patterns, opts)
}

// FilterTokensByMask narrows each document's mask with the corresponding
// entry of masks, which must hold one sub-mask per document defined over
// that document's live view.
func (c *Corpus) FilterTokensByMask(masks [][]bool, inverse bool) error {
	if len(masks) != len(c.docs) {
		return errors.Newf(errors.ErrShapeMismatch,
			"%d masks for %d documents", len(masks), len(c.docs))
	}
	defer c.observe("mask", time.Now())
	return c.forEach(func(i int, d *document.Document) error {
		return c.applyMask(d, masks[i], inverse)
	})
}

// RemoveTokensByMask is FilterTokensByMask with the mask inverted.
func (c *Corpus) RemoveTokensByMask(masks [][]bool) error {
	return c.FilterTokensByMask(masks, true)
}

// FilterTokensByAttr matches patterns against a per-token attribute instead
// of the token text: "lemma", "pos", or the name of a custom attribute.
func (c *Corpus) FilterTokensByAttr(attr string, patterns []string, opts FilterOptions) error {
	defer c.observe("attr", time.Now())
	c.countMatch(opts.Match)
	return c.forEach(func(_ int, d *document.Document) error {
		values, err := liveAttrValues(d, attr)
		if err != nil {
			return err
		}
		m, err := match.MatchAny(patterns, values, opts.Match)
		if err != nil {
			return err
		}
		return c.applyMask(d, m, opts.Inverse)
	})
}

// CleanOptions selects the token cleaning steps applied by CleanTokens.
// Length bounds are rune counts; zero disables a bound.
type CleanOptions struct {
	RemovePunct   bool // uses the is-punctuation attribute
	RemoveEmpty   bool
	RemoveNumbers bool     // uses the numeric-like attribute
	Stopwords     []string // caller-supplied; list loading is external
	RemoveTokens  []string // explicit token blacklist
	MinLength     int
	MaxLength     int
}

// CleanTokens removes punctuation, stopwords, empty, overly short or long,
// and numeric-like tokens from every document's live view, depending on the
// options.
func (c *Corpus) CleanTokens(opts CleanOptions) error {
	if opts.MinLength < 0 {
		return errors.Newf(errors.ErrInvalidInput, "MinLength must be >= 0, got %d", opts.MinLength)
	}
	if opts.MaxLength < 0 {
		return errors.Newf(errors.ErrInvalidInput, "MaxLength must be >= 0, got %d", opts.MaxLength)
	}
	defer c.observe("clean", time.Now())

	blacklist := make(map[string]struct{}, len(opts.Stopwords)+len(opts.RemoveTokens)+1)
	if opts.RemoveEmpty {
		blacklist[""] = struct{}{}
	}
	for _, t := range opts.Stopwords {
		blacklist[t] = struct{}{}
	}
	for _, t := range opts.RemoveTokens {
		blacklist[t] = struct{}{}
	}

	return c.forEach(func(_ int, d *document.Document) error {
		tokens := d.Tokens()
		remove := make([]bool, len(tokens))

		if opts.RemovePunct {
			for i, p := range d.LiveIsPunct() {
				remove[i] = remove[i] || p
			}
		}
		if opts.RemoveNumbers {
			for i, num := range d.LiveLikeNum() {
				remove[i] = remove[i] || num
			}
		}
		for i, t := range tokens {
			if _, drop := blacklist[t]; drop {
				remove[i] = true
				continue
			}
			if opts.MinLength > 0 || opts.MaxLength > 0 {
				n := utf8.RuneCountInString(t)
				if opts.MinLength > 0 && n < opts.MinLength {
					remove[i] = true
				}
				if opts.MaxLength > 0 && n > opts.MaxLength {
					remove[i] = true
				}
			}
		}
		return c.applyMask(d, remove, true)
	})
}

// POSFilterOptions configures FilterForPOS. An empty Tagset means universal
// dependencies.
type POSFilterOptions struct {
	Simplify bool
	Tagset   string
	Inverse  bool
}

// FilterForPOS keeps only tokens whose part-of-speech tag is in required,
// optionally simplifying tags ("N", "V", "ADJ", "ADV") before comparing.
// Documents without a POS attribute keep an all-false match, i.e. lose all
// live tokens unless Inverse is set.
func (c *Corpus) FilterForPOS(required []string, opts POSFilterOptions) error {
	tagset := opts.Tagset
	if tagset == "" {
		tagset = pos.TagsetUD
	}
	defer c.observe("pos", time.Now())

	wanted := make(map[string]struct{}, len(required))
	for _, p := range required {
		wanted[p] = struct{}{}
	}

	return c.forEach(func(_ int, d *document.Document) error {
		tags := d.LivePOS()
		m := make([]bool, d.LiveLen())
		for i, tag := range tags {
			if opts.Simplify {
				simplified, err := pos.Simplify(tag, tagset)
				if err != nil {
					return err
				}
				tag = simplified
			}
			_, m[i] = wanted[tag]
		}
		return c.applyMask(d, m, opts.Inverse)
	})
}

// RemoveTokensByDocFrequency removes tokens whose document frequency
// compares to threshold according to which: "common"/">"/">=" removes
// frequent tokens, "uncommon"/"<"/"<=" removes rare ones. With absolute
// set, threshold is a document count in [0, len(docs)], otherwise a
// proportion in [0, 1]. Returns the sorted blacklist of removed tokens.
func (c *Corpus) RemoveTokensByDocFrequency(which string, threshold float64, absolute bool) ([]string, error) {
	var cmp func(a, b float64) bool
	switch which {
	case DFCommon, DFGreaterEqual:
		cmp = func(a, b float64) bool { return a >= b }
	case DFGreater:
		cmp = func(a, b float64) bool { return a > b }
	case DFLess:
		cmp = func(a, b float64) bool { return a < b }
	case DFUncommon, DFLessEqual:
		cmp = func(a, b float64) bool { return a <= b }
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown comparator %q", which)
	}

	if absolute {
		if threshold < 0 || threshold > float64(len(c.docs)) {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"absolute threshold must be in [0, %d], got %g", len(c.docs), threshold)
		}
	} else if threshold < 0 || threshold > 1 {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"proportional threshold must be in [0, 1], got %g", threshold)
	}
	defer c.observe("docfreq", time.Now())

	freqs := make(map[string]float64)
	if absolute {
		for t, f := range c.DocFrequencies() {
			freqs[t] = float64(f)
		}
	} else {
		freqs = c.DocFrequencyProportions()
	}

	blacklist := make([]string, 0)
	for t, f := range freqs {
		if cmp(f, threshold) {
			blacklist = append(blacklist, t)
		}
	}
	sort.Strings(blacklist)

	err := c.forEach(func(_ int, d *document.Document) error {
		tokens := d.Tokens()
		remove := make([]bool, len(tokens))
		for i, t := range tokens {
			remove[i] = cmp(freqs[t], threshold)
		}
		return c.applyMask(d, remove, true)
	})
	if err != nil {
		return nil, err
	}
	return blacklist, nil
}

// RemoveCommonTokens removes tokens with a proportional document frequency
// of at least threshold.
func (c *Corpus) RemoveCommonTokens(threshold float64) ([]string, error) {
	return c.RemoveTokensByDocFrequency(DFCommon, threshold, false)
}

// RemoveUncommonTokens removes tokens with a proportional document
// frequency of at most threshold.
func (c *Corpus) RemoveUncommonTokens(threshold float64) ([]string, error) {
	return c.RemoveTokensByDocFrequency(DFUncommon, threshold, false)
}

// FilterTokensWithKWIC keeps only tokens inside the context windows around
// pattern matches (or, with Inverse, removes those windows).
func (c *Corpus) FilterTokensWithKWIC(patterns []string, left, right int, opts FilterOptions) error {
	defer c.observe("kwic", time.Now())
	c.countMatch(opts.Match)
	return c.forEach(func(_ int, d *document.Document) error {
		m, err := match.MatchAny(patterns, d.Tokens(), opts.Match)
		if err != nil {
			return err
		}
		flat, err := match.FlatWindows(m, left, right, true)
		if err != nil {
			return err
		}
		keep := match.KeepMask(flat, d.LiveLen())
		return c.applyMask(d, keep, opts.Inverse)
	})
}

// DocFilterOptions configures document-level filtering. MatchThreshold is
// the minimum number of token matches a document needs to be kept; zero
// means one. InverseMatches inverts the per-token match vector before
// counting; InverseResult drops the documents that meet the threshold.
type DocFilterOptions struct {
	Match          match.Options
	MatchThreshold int
	InverseMatches bool
	InverseResult  bool
}

// FilterDocuments keeps only the documents containing enough live tokens
// matching any of patterns, and drops the rest from the corpus.
func (c *Corpus) FilterDocuments(patterns []string, opts DocFilterOptions) error {
	threshold := opts.MatchThreshold
	if threshold <= 0 {
		threshold = 1
	}
	defer c.observe("documents", time.Now())
	c.countMatch(opts.Match)

	keep := make([]bool, len(c.docs))
	err := c.forEach(func(i int, d *document.Document) error {
		m, err := match.MatchAny(patterns, d.Tokens(), opts.Match)
		if err != nil {
			return err
		}
		n := 0
		for _, b := range m {
			if b != opts.InverseMatches {
				n++
			}
		}
		keep[i] = (n >= threshold) != opts.InverseResult
		return nil
	})
	if err != nil {
		return err
	}
	return c.keepDocuments(keep)
}

// RemoveDocuments is FilterDocuments with the result inverted.
func (c *Corpus) RemoveDocuments(patterns []string, opts DocFilterOptions) error {
	opts.InverseResult = !opts.InverseResult
	return c.FilterDocuments(patterns, opts)
}

// FilterDocumentsByName keeps only the documents whose label matches every
// pattern (with Inverse, every pattern must not match).
func (c *Corpus) FilterDocumentsByName(patterns []string, opts FilterOptions) error {
	defer c.observe("names", time.Now())
	c.countMatch(opts.Match)
	labels := c.Labels()
	keep := make([]bool, len(labels))
	for i := range keep {
		keep[i] = true
	}
	for _, pat := range patterns {
		m, err := match.Match(pat, labels, opts.Match)
		if err != nil {
			return err
		}
		for i, b := range m {
			if opts.Inverse {
				b = !b
			}
			keep[i] = keep[i] && b
		}
	}
	return c.keepDocuments(keep)
}

// RemoveDocumentsByName drops the documents whose label matches any
// pattern.
func (c *Corpus) RemoveDocumentsByName(patterns []string, opts FilterOptions) error {
	opts.Inverse = !opts.Inverse
	return c.FilterDocumentsByName(patterns, opts)
}

// applyMask narrows d's mask and accounts for the hidden tokens.
func (c *Corpus) applyMask(d *document.Document, submask []bool, invert bool) error {
	before := d.LiveLen()
	if err := d.ApplyMask(submask, invert); err != nil {
		return err
	}
	if c.met != nil {
		c.met.TokensMaskedTotal.Add(float64(before - d.LiveLen()))
	}
	return nil
}

// keepDocuments drops every document whose keep flag is false and rebuilds
// the label index.
func (c *Corpus) keepDocuments(keep []bool) error {
	kept := c.docs[:0]
	dropped := 0
	for i, d := range c.docs {
		if keep[i] {
			kept = append(kept, d)
		} else {
			dropped++
		}
	}
	c.docs = kept
	if dropped > 0 {
		c.log.Debug("documents dropped", "count", dropped)
		if c.met != nil {
			c.met.DocsFilteredTotal.Add(float64(dropped))
		}
	}
	return c.rebuildIndex()
}

// countMatch accounts for one pattern match operation by mode.
func (c *Corpus) countMatch(opts match.Options) {
	if c.met == nil {
		return
	}
	mode := opts.Mode
	if mode == "" {
		mode = match.ModeExact
	}
	c.met.MatchOpsTotal.WithLabelValues(string(mode)).Inc()
}

// observe records the latency of a filter operation.
func (c *Corpus) observe(filter string, start time.Time) {
	if c.met != nil {
		c.met.FilterDuration.WithLabelValues(filter).Observe(time.Since(start).Seconds())
	}
}

// liveAttrValues resolves the live view of a named attribute for matching.
func liveAttrValues(d *document.Document, attr string) ([]string, error) {
	var values []string
	switch attr {
	case "lemma":
		values = d.LiveLemma()
	case "pos":
		values = d.LivePOS()
	default:
		values = d.LiveCustom(attr)
	}
	if values == nil {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"document %q has no attribute %q", d.Label(), attr)
	}
	return values, nil
}
