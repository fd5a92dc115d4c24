package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpuskit/corpuskit/internal/document"
	"github.com/corpuskit/corpuskit/pkg/errors"
)

func mustDoc(t *testing.T, label string, tokens []string, attrs document.Attributes) *document.Document {
	t.Helper()
	d, err := document.New(label, tokens, attrs)
	require.NoError(t, err)
	return d
}

// testCorpus builds the fixture used across the statistics and filter
// tests: three documents with overlapping vocabularies.
func testCorpus(t *testing.T, opts ...Option) *Corpus {
	t.Helper()
	docs := []*document.Document{
		mustDoc(t, "d1", []string{"a", "b", "c"}, document.Attributes{}),
		mustDoc(t, "d2", []string{"a", "c"}, document.Attributes{}),
		mustDoc(t, "d3", []string{"a", "b", "d"}, document.Attributes{}),
	}
	c, err := New(docs, opts...)
	require.NoError(t, err)
	return c
}

func TestNewCorpus(t *testing.T) {
	c := testCorpus(t)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"d1", "d2", "d3"}, c.Labels())
	assert.Equal(t, []int{3, 2, 3}, c.Lengths())

	d, err := c.Get("d2")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, d.Tokens())

	t.Run("unknown label", func(t *testing.T) {
		_, err := c.Get("nope")
		assert.ErrorIs(t, err, errors.ErrDocumentNotFound)
	})

	t.Run("duplicate labels rejected", func(t *testing.T) {
		docs := []*document.Document{
			mustDoc(t, "same", []string{"a"}, document.Attributes{}),
			mustDoc(t, "same", []string{"b"}, document.Attributes{}),
		}
		_, err := New(docs)
		assert.ErrorIs(t, err, errors.ErrDuplicateLabel)
	})

	t.Run("empty corpus", func(t *testing.T) {
		c, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
		assert.Empty(t, c.Vocabulary(true))
	})
}

func TestCompactAll(t *testing.T) {
	c := testCorpus(t)
	require.NoError(t, c.RemoveTokens([]string{"a"}, FilterOptions{}))

	d, err := c.Get("d1")
	require.NoError(t, err)
	assert.False(t, d.IsCompact())
	assert.Equal(t, 3, d.Len())

	c.CompactAll()
	d, err = c.Get("d1")
	require.NoError(t, err)
	assert.True(t, d.IsCompact())
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"b", "c"}, d.Tokens())
}

func TestConcurrentFanOut(t *testing.T) {
	// the same filter over a parallel corpus must produce the same state
	seq := testCorpus(t)
	par := testCorpus(t, WithWorkers(4))

	require.NoError(t, seq.FilterTokens([]string{"a", "b"}, FilterOptions{}))
	require.NoError(t, par.FilterTokens([]string{"a", "b"}, FilterOptions{}))

	assert.Equal(t, seq.Lengths(), par.Lengths())
	for _, label := range seq.Labels() {
		sd, err := seq.Get(label)
		require.NoError(t, err)
		pd, err := par.Get(label)
		require.NoError(t, err)
		assert.Equal(t, sd.Tokens(), pd.Tokens())
	}
}
