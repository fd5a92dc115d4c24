package corpus

import (
	"sort"
	"strconv"

	"github.com/corpuskit/corpuskit/internal/document"
)

// KWICTableRow is one row of the compact KWIC table: the document label, a
// per-document context ID, and the window pre-joined into a highlighted
// string.
type KWICTableRow struct {
	Doc     string
	Context int
	KWIC    string
}

// KWICTable runs a KWIC search and emits the compact tabular form for the
// reporting collaborator: one row per context window, highlighted with the
// corpus default marker (unless overridden), joined by the corpus default
// glue string, empty documents omitted, rows sorted by (doc, context).
func (c *Corpus) KWICTable(patterns []string, opts KWICOptions) ([]KWICTableRow, error) {
	if opts.Highlight == "" {
		opts.Highlight = c.defaults.Highlight
	}
	opts.NonEmpty = true

	results, err := c.KWICGlued(patterns, c.defaults.GlueString, opts)
	if err != nil {
		return nil, err
	}

	var rows []KWICTableRow
	for _, r := range results {
		for i, w := range r.Windows {
			rows = append(rows, KWICTableRow{Doc: r.Doc, Context: i, KWIC: w})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Doc != rows[j].Doc {
			return rows[i].Doc < rows[j].Doc
		}
		return rows[i].Context < rows[j].Context
	})
	return rows, nil
}

// KWICRow is one row of the expanded KWIC table: one token of one context
// window, keyed by (doc, context, position), with the requested per-token
// attribute values.
type KWICRow struct {
	Doc      string
	Context  int
	Position int
	Token    string
	Attrs    map[string]string
}

// KWICRows runs a KWIC search and emits the expanded tabular form: one row
// per window token with its attribute columns. The returned column names
// are stable: base attributes (lemma, num, pos, punct, space) sorted first,
// then custom attributes sorted by name. Rows are ordered by
// (doc, context, position).
func (c *Corpus) KWICRows(patterns []string, opts KWICOptions) ([]KWICRow, []string, error) {
	opts.Highlight = ""
	results, err := c.KWIC(patterns, opts)
	if err != nil {
		return nil, nil, err
	}

	attrCols := c.attrColumns()

	var rows []KWICRow
	for _, r := range results {
		d, err := c.Get(r.Doc)
		if err != nil {
			return nil, nil, err
		}
		attrs := liveAttrTable(d, attrCols)
		for i, w := range r.Windows {
			for j, idx := range w.Indices {
				row := KWICRow{
					Doc:      r.Doc,
					Context:  i,
					Position: idx,
					Token:    w.Tokens[j],
				}
				if len(attrCols) > 0 {
					row.Attrs = make(map[string]string, len(attrCols))
					for _, col := range attrCols {
						row.Attrs[col] = attrs[col][idx]
					}
				}
				rows = append(rows, row)
			}
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Doc != rows[j].Doc {
			return rows[i].Doc < rows[j].Doc
		}
		if rows[i].Context != rows[j].Context {
			return rows[i].Context < rows[j].Context
		}
		return rows[i].Position < rows[j].Position
	})
	return rows, attrCols, nil
}

// attrColumns collects the attribute columns present anywhere in the
// corpus: base attributes sorted before custom attributes.
func (c *Corpus) attrColumns() []string {
	base := make(map[string]struct{})
	custom := make(map[string]struct{})
	for _, d := range c.docs {
		attrs := d.Attrs()
		if attrs.Lemma != nil {
			base["lemma"] = struct{}{}
		}
		if attrs.POS != nil {
			base["pos"] = struct{}{}
		}
		if attrs.IsPunct != nil {
			base["punct"] = struct{}{}
		}
		if attrs.LikeNum != nil {
			base["num"] = struct{}{}
		}
		if attrs.Space != nil {
			base["space"] = struct{}{}
		}
		for name := range attrs.Custom {
			custom[name] = struct{}{}
		}
	}

	cols := sortedKeys(base)
	cols = append(cols, sortedKeys(custom)...)
	return cols
}

// liveAttrTable resolves every attribute column to its live string values
// for one document. Absent attributes yield empty strings.
func liveAttrTable(d *document.Document, cols []string) map[string][]string {
	table := make(map[string][]string, len(cols))
	n := d.LiveLen()
	for _, col := range cols {
		var values []string
		switch col {
		case "lemma":
			values = d.LiveLemma()
		case "pos":
			values = d.LivePOS()
		case "punct":
			values = boolStrings(d.LiveIsPunct())
		case "num":
			values = boolStrings(d.LiveLikeNum())
		case "space":
			values = boolStrings(d.LiveSpace())
		default:
			values = d.LiveCustom(col)
		}
		if values == nil {
			values = make([]string, n)
		}
		table[col] = values
	}
	return table
}

func boolStrings(flags []bool) []string {
	if flags == nil {
		return nil
	}
	out := make([]string, len(flags))
	for i, b := range flags {
		out[i] = strconv.FormatBool(b)
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
