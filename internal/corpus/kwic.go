package corpus

import (
	"strings"
	"time"

	"github.com/corpuskit/corpuskit/internal/document"
	"github.com/corpuskit/corpuskit/internal/match"
)

// ContextSize is the number of tokens kept left and right of a keyword.
type ContextSize struct {
	Left  int
	Right int
}

// Symmetric returns a context of n tokens on both sides.
func Symmetric(n int) ContextSize {
	return ContextSize{Left: n, Right: n}
}

// KWICOptions configures keyword-in-context search. A nil Context uses the
// corpus defaults. Highlight, when non-empty, wraps the matched keyword on
// both sides. With NonEmpty set, documents without any match are omitted
// from the result.
type KWICOptions struct {
	Context   *ContextSize
	Match     match.Options
	Inverse   bool
	Highlight string
	NonEmpty  bool
}

// Window is one keyword context: the window's tokens and their positions in
// the document's live view. Match is the live-view position of the keyword
// itself.
type Window struct {
	Tokens  []string
	Indices []int
	Match   int
}

// DocWindows holds the context windows found in one document.
type DocWindows struct {
	Doc     string
	Windows []Window
}

// KWIC searches every document for the patterns and returns the context
// windows around each match, in corpus order.
func (c *Corpus) KWIC(patterns []string, opts KWICOptions) ([]DocWindows, error) {
	defer c.observe("kwic_query", time.Now())
	c.countMatch(opts.Match)
	if c.met != nil {
		c.met.KwicQueriesTotal.Inc()
	}
	left, right := c.contextOrDefault(opts.Context)

	results := make([]DocWindows, len(c.docs))
	err := c.forEach(func(i int, d *document.Document) error {
		windows, err := c.docWindows(d, patterns, left, right, opts)
		if err != nil {
			return err
		}
		results[i] = DocWindows{Doc: d.Label(), Windows: windows}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if opts.NonEmpty {
		nonEmpty := results[:0]
		for _, r := range results {
			if len(r.Windows) > 0 {
				nonEmpty = append(nonEmpty, r)
			}
		}
		results = nonEmpty
	}
	return results, nil
}

// GluedWindows holds one document's context windows joined into strings.
type GluedWindows struct {
	Doc     string
	Windows []string
}

// KWICGlued is KWIC with every window joined into a single string by glue.
func (c *Corpus) KWICGlued(patterns []string, glue string, opts KWICOptions) ([]GluedWindows, error) {
	results, err := c.KWIC(patterns, opts)
	if err != nil {
		return nil, err
	}
	glued := make([]GluedWindows, len(results))
	for i, r := range results {
		windows := make([]string, len(r.Windows))
		for j, w := range r.Windows {
			windows[j] = strings.Join(w.Tokens, glue)
		}
		glued[i] = GluedWindows{Doc: r.Doc, Windows: windows}
	}
	return glued, nil
}

// docWindows builds the context windows of a single document.
func (c *Corpus) docWindows(d *document.Document, patterns []string, left, right int, opts KWICOptions) ([]Window, error) {
	tokens := d.Tokens()
	m, err := match.MatchAny(patterns, tokens, opts.Match)
	if err != nil {
		return nil, err
	}
	if opts.Inverse {
		for i := range m {
			m[i] = !m[i]
		}
	}

	ranges, err := match.Windows(m, left, right)
	if err != nil {
		return nil, err
	}

	windows := make([]Window, 0, len(ranges))
	k := 0
	for i, matched := range m {
		if !matched {
			continue
		}
		win := ranges[k]
		k++
		winTokens := make([]string, len(win))
		for j, idx := range win {
			winTokens[j] = tokens[idx]
			if opts.Highlight != "" && idx == i {
				winTokens[j] = opts.Highlight + winTokens[j] + opts.Highlight
			}
		}
		windows = append(windows, Window{Tokens: winTokens, Indices: win, Match: i})
	}
	return windows, nil
}

func (c *Corpus) contextOrDefault(ctx *ContextSize) (left, right int) {
	if ctx != nil {
		return ctx.Left, ctx.Right
	}
	return c.defaults.ContextLeft, c.defaults.ContextRight
}
