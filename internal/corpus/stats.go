package corpus

import (
	"sort"
	"strings"

	"github.com/corpuskit/corpuskit/pkg/errors"
)

// Vocabulary returns the distinct live tokens across all documents. With
// sorted set, the result is in lexicographic order — the deterministic
// order promised to the document-term-matrix builder.
func (c *Corpus) Vocabulary(sorted bool) []string {
	seen := make(map[string]struct{})
	for _, d := range c.docs {
		for _, t := range d.Tokens() {
			seen[t] = struct{}{}
		}
	}
	vocab := make([]string, 0, len(seen))
	for t := range seen {
		vocab = append(vocab, t)
	}
	if sorted {
		sort.Strings(vocab)
	}
	return vocab
}

// VocabularyCounts returns the number of occurrences of each live token
// across all documents.
func (c *Corpus) VocabularyCounts() map[string]int {
	counts := make(map[string]int)
	for _, d := range c.docs {
		for _, t := range d.Tokens() {
			counts[t]++
		}
	}
	return counts
}

// DocFrequencies returns, for each vocabulary token, the number of
// documents in which it occurs at least once in the live view.
func (c *Corpus) DocFrequencies() map[string]int {
	freqs := make(map[string]int)
	for _, d := range c.docs {
		seen := make(map[string]struct{})
		for _, t := range d.Tokens() {
			seen[t] = struct{}{}
		}
		for t := range seen {
			freqs[t]++
		}
	}
	return freqs
}

// DocFrequencyProportions returns document frequencies normalized by the
// number of documents.
func (c *Corpus) DocFrequencyProportions() map[string]float64 {
	props := make(map[string]float64, len(c.docs))
	if len(c.docs) == 0 {
		return props
	}
	n := float64(len(c.docs))
	for t, f := range c.DocFrequencies() {
		props[t] = float64(f) / n
	}
	return props
}

// NGrams returns, per document, the sliding windows of n consecutive live
// tokens joined by joinStr. A document shorter than n yields one n-gram
// equal to the whole document; an empty document yields none. n must be at
// least 2.
func (c *Corpus) NGrams(n int, joinStr string) ([][]string, error) {
	lists, err := c.NGramTokens(n)
	if err != nil {
		return nil, err
	}
	out := make([][]string, len(lists))
	for i, grams := range lists {
		joined := make([]string, len(grams))
		for j, g := range grams {
			joined[j] = strings.Join(g, joinStr)
		}
		out[i] = joined
	}
	return out, nil
}

// NGramTokens is NGrams without joining: each n-gram stays a token list.
func (c *Corpus) NGramTokens(n int) ([][][]string, error) {
	if n < 2 {
		return nil, errors.Newf(errors.ErrInvalidInput, "ngram length must be >= 2, got %d", n)
	}
	out := make([][][]string, len(c.docs))
	for i, d := range c.docs {
		out[i] = ngramsFromTokens(d.Tokens(), n)
	}
	return out, nil
}

// TokenIDs encodes the corpus as vocabulary-indexed token IDs: the sorted
// vocabulary, per-document ID sequences over the live view, and the total
// count of each vocabulary entry.
func (c *Corpus) TokenIDs() (vocab []string, ids [][]int, counts []int) {
	vocab = c.Vocabulary(true)
	lookup := make(map[string]int, len(vocab))
	for i, t := range vocab {
		lookup[t] = i
	}
	counts = make([]int, len(vocab))
	ids = make([][]int, len(c.docs))
	for i, d := range c.docs {
		tokens := d.Tokens()
		docIDs := make([]int, len(tokens))
		for j, t := range tokens {
			id := lookup[t]
			docIDs[j] = id
			counts[id]++
		}
		ids[i] = docIDs
	}
	return vocab, ids, counts
}

// TokensFromIDs reverses TokenIDs for the given vocabulary.
func TokensFromIDs(vocab []string, ids [][]int) [][]string {
	out := make([][]string, len(ids))
	for i, docIDs := range ids {
		tokens := make([]string, len(docIDs))
		for j, id := range docIDs {
			tokens[j] = vocab[id]
		}
		out[i] = tokens
	}
	return out
}

// DTMInput returns the sorted vocabulary and each document's live token
// list in corpus order — the contract consumed by an external
// document-term-matrix builder.
func (c *Corpus) DTMInput() (vocab []string, docTokens [][]string) {
	vocab = c.Vocabulary(true)
	docTokens = make([][]string, len(c.docs))
	for i, d := range c.docs {
		docTokens[i] = d.Tokens()
	}
	return vocab, docTokens
}

func ngramsFromTokens(tokens []string, n int) [][]string {
	if len(tokens) == 0 {
		return nil
	}
	if len(tokens) < n {
		return [][]string{tokens}
	}
	grams := make([][]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		gram := make([]string, n)
		copy(gram, tokens[i:i+n])
		grams = append(grams, gram)
	}
	return grams
}
