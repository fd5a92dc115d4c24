// Package document implements the token document: a dense token buffer
// paired with a parallel boolean mask. Filtering hides tokens by narrowing
// the mask; the buffer itself only shrinks through compaction or gluing.
package document

import (
	"github.com/corpuskit/corpuskit/pkg/errors"
)

// Attributes are optional per-token annotations delivered by the external
// NLP pipeline. Each non-nil slice must be index-aligned with the token
// buffer and follows the same mask rules as the tokens.
type Attributes struct {
	Lemma   []string
	POS     []string
	IsPunct []bool
	LikeNum []bool
	Space   []bool // trailing-whitespace flag
	Custom  map[string][]string
}

// Document is a tokenized document. The mask defines its live view: token i
// is part of the logical document iff mask[i] is true. Masking never moves
// data; Compact rebuilds the buffer from the live entries.
type Document struct {
	label  string
	tokens []string
	mask   []bool
	attrs  Attributes
}

// New creates a document with an all-true mask. Attribute slices, when
// present, must have the same length as tokens.
func New(label string, tokens []string, attrs Attributes) (*Document, error) {
	if err := checkAttrShape(len(tokens), attrs); err != nil {
		return nil, err
	}
	mask := make([]bool, len(tokens))
	for i := range mask {
		mask[i] = true
	}
	return &Document{
		label:  label,
		tokens: append([]string(nil), tokens...),
		mask:   mask,
		attrs:  copyAttrs(attrs),
	}, nil
}

// Label returns the document identifier.
func (d *Document) Label() string { return d.label }

// Len returns the buffer length, including masked-out tokens.
func (d *Document) Len() int { return len(d.tokens) }

// LiveLen returns the logical document length, i.e. the number of live
// tokens.
func (d *Document) LiveLen() int {
	n := 0
	for _, m := range d.mask {
		if m {
			n++
		}
	}
	return n
}

// IsCompact reports whether no token is masked out.
func (d *Document) IsCompact() bool {
	for _, m := range d.mask {
		if !m {
			return false
		}
	}
	return true
}

// Tokens returns the live tokens in buffer order.
func (d *Document) Tokens() []string {
	return d.liveStrings(d.tokens)
}

// RawTokens returns a copy of the full token buffer, masked entries
// included.
func (d *Document) RawTokens() []string {
	return append([]string(nil), d.tokens...)
}

// Mask returns a copy of the mask.
func (d *Document) Mask() []bool {
	return append([]bool(nil), d.mask...)
}

// Attrs returns the document's attributes. The returned slices are shared
// with the document and must not be modified.
func (d *Document) Attrs() Attributes { return d.attrs }

// LiveLemma returns the live view of the lemma attribute, or nil when the
// attribute is absent.
func (d *Document) LiveLemma() []string { return d.liveStrings(d.attrs.Lemma) }

// LivePOS returns the live view of the POS attribute, or nil when absent.
func (d *Document) LivePOS() []string { return d.liveStrings(d.attrs.POS) }

// LiveIsPunct returns the live view of the punctuation flag, or nil.
func (d *Document) LiveIsPunct() []bool { return d.liveBools(d.attrs.IsPunct) }

// LiveLikeNum returns the live view of the numeric-like flag, or nil.
func (d *Document) LiveLikeNum() []bool { return d.liveBools(d.attrs.LikeNum) }

// LiveSpace returns the live view of the trailing-whitespace flag, or nil.
func (d *Document) LiveSpace() []bool { return d.liveBools(d.attrs.Space) }

// LiveCustom returns the live view of a named custom attribute, or nil when
// the attribute is absent.
func (d *Document) LiveCustom(name string) []string {
	if d.attrs.Custom == nil {
		return nil
	}
	return d.liveStrings(d.attrs.Custom[name])
}

// ApplyMask narrows the document's mask: submask is defined over the
// currently-live view and is scattered back into the live positions.
// Positions already masked out stay masked out, so the logical length never
// grows. With invert set, the negation of submask is applied instead.
func (d *Document) ApplyMask(submask []bool, invert bool) error {
	if len(submask) != d.LiveLen() {
		return errors.Newf(errors.ErrShapeMismatch,
			"document %q: submask has length %d, live view has %d",
			d.label, len(submask), d.LiveLen())
	}
	j := 0
	for i, m := range d.mask {
		if !m {
			continue
		}
		keep := submask[j]
		if invert {
			keep = !keep
		}
		d.mask[i] = keep
		j++
	}
	return nil
}

// SetLiveTokens replaces the live tokens in place, leaving masked-out
// entries untouched.
func (d *Document) SetLiveTokens(tokens []string) error {
	if len(tokens) != d.LiveLen() {
		return errors.Newf(errors.ErrShapeMismatch,
			"document %q: %d replacement tokens for a live view of %d",
			d.label, len(tokens), d.LiveLen())
	}
	j := 0
	for i, m := range d.mask {
		if m {
			d.tokens[i] = tokens[j]
			j++
		}
	}
	return nil
}

// Compact builds a new document containing only the live tokens and
// attributes, with the mask reset to all-true. A fully live document is
// returned unchanged.
func (d *Document) Compact() *Document {
	if d.IsCompact() {
		return d
	}

	nd := &Document{
		label:  d.label,
		tokens: d.liveStrings(d.tokens),
		attrs: Attributes{
			Lemma:   d.liveStrings(d.attrs.Lemma),
			POS:     d.liveStrings(d.attrs.POS),
			IsPunct: d.liveBools(d.attrs.IsPunct),
			LikeNum: d.liveBools(d.attrs.LikeNum),
			Space:   d.liveBools(d.attrs.Space),
		},
	}
	if d.attrs.Custom != nil {
		nd.attrs.Custom = make(map[string][]string, len(d.attrs.Custom))
		for name, vals := range d.attrs.Custom {
			nd.attrs.Custom[name] = d.liveStrings(vals)
		}
	}
	nd.mask = make([]bool, len(nd.tokens))
	for i := range nd.mask {
		nd.mask[i] = true
	}
	return nd
}

func (d *Document) liveStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, 0, len(src))
	for i, m := range d.mask {
		if m {
			out = append(out, src[i])
		}
	}
	return out
}

func (d *Document) liveBools(src []bool) []bool {
	if src == nil {
		return nil
	}
	out := make([]bool, 0, len(src))
	for i, m := range d.mask {
		if m {
			out = append(out, src[i])
		}
	}
	return out
}

func checkAttrShape(n int, attrs Attributes) error {
	check := func(name string, l, want int) error {
		if l != want {
			return errors.Newf(errors.ErrShapeMismatch,
				"attribute %s has length %d, token buffer has %d", name, l, want)
		}
		return nil
	}
	if attrs.Lemma != nil {
		if err := check("lemma", len(attrs.Lemma), n); err != nil {
			return err
		}
	}
	if attrs.POS != nil {
		if err := check("pos", len(attrs.POS), n); err != nil {
			return err
		}
	}
	if attrs.IsPunct != nil {
		if err := check("punct", len(attrs.IsPunct), n); err != nil {
			return err
		}
	}
	if attrs.LikeNum != nil {
		if err := check("num", len(attrs.LikeNum), n); err != nil {
			return err
		}
	}
	if attrs.Space != nil {
		if err := check("space", len(attrs.Space), n); err != nil {
			return err
		}
	}
	for name, vals := range attrs.Custom {
		if err := check(name, len(vals), n); err != nil {
			return err
		}
	}
	return nil
}

func copyAttrs(attrs Attributes) Attributes {
	out := Attributes{
		Lemma:   append([]string(nil), attrs.Lemma...),
		POS:     append([]string(nil), attrs.POS...),
		IsPunct: append([]bool(nil), attrs.IsPunct...),
		LikeNum: append([]bool(nil), attrs.LikeNum...),
		Space:   append([]bool(nil), attrs.Space...),
	}
	if attrs.Custom != nil {
		out.Custom = make(map[string][]string, len(attrs.Custom))
		for name, vals := range attrs.Custom {
			out.Custom[name] = append([]string(nil), vals...)
		}
	}
	return out
}
