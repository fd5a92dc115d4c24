package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpuskit/corpuskit/internal/document"
	"github.com/corpuskit/corpuskit/internal/match"
	"github.com/corpuskit/corpuskit/pkg/errors"
)

func TestTransform(t *testing.T) {
	docs := []*document.Document{
		mustDoc(t, "d1", []string{"Hello", "WORLD"}, document.Attributes{}),
	}
	c, err := New(docs)
	require.NoError(t, err)

	require.NoError(t, c.Transform(func(s string) string { return s + "!" }))
	assert.Equal(t, []string{"Hello!", "WORLD!"}, liveTokens(t, c, "d1"))

	t.Run("masked tokens untouched", func(t *testing.T) {
		docs := []*document.Document{
			mustDoc(t, "d1", []string{"A", "B", "C"}, document.Attributes{}),
		}
		c, err := New(docs)
		require.NoError(t, err)
		require.NoError(t, c.RemoveTokens([]string{"B"}, FilterOptions{}))

		require.NoError(t, c.Transform(strings.ToLower))
		d, err := c.Get("d1")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, d.Tokens())
		assert.Equal(t, []string{"a", "B", "c"}, d.RawTokens())
	})
}

func TestToLowercase(t *testing.T) {
	docs := []*document.Document{
		mustDoc(t, "d1", []string{"Hello", "WORLD", "ok"}, document.Attributes{}),
	}
	c, err := New(docs)
	require.NoError(t, err)

	require.NoError(t, c.ToLowercase())
	assert.Equal(t, []string{"hello", "world", "ok"}, liveTokens(t, c, "d1"))
}

func TestRemoveChars(t *testing.T) {
	docs := []*document.Document{
		mustDoc(t, "d1", []string{"dont't", "a-b", "clean"}, document.Attributes{}),
	}
	c, err := New(docs)
	require.NoError(t, err)

	require.NoError(t, c.RemoveChars([]rune{'\'', '-'}))
	assert.Equal(t, []string{"dontt", "ab", "clean"}, liveTokens(t, c, "d1"))

	t.Run("no characters", func(t *testing.T) {
		err := c.RemoveChars(nil)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})
}

func TestExpandCompounds(t *testing.T) {
	docs := []*document.Document{
		mustDoc(t, "d1", []string{"US-Student", "stays"}, document.Attributes{
			Space: []bool{true, false},
		}),
	}
	c, err := New(docs)
	require.NoError(t, err)

	require.NoError(t, c.ExpandCompounds([]rune{'-'}, 2, false))
	d, err := c.Get("d1")
	require.NoError(t, err)

	assert.Equal(t, []string{"US", "Student", "stays"}, d.Tokens())
	assert.Equal(t, []string{"US", "Student", "stays"}, d.LiveLemma())
	// the source token's whitespace flag moves to its last part
	assert.Equal(t, []bool{false, true, false}, d.LiveSpace())
	assert.True(t, d.IsCompact())

	t.Run("unsplit tokens keep their lemma", func(t *testing.T) {
		docs := []*document.Document{
			mustDoc(t, "d1", []string{"cats", "US-Student"}, document.Attributes{
				Lemma: []string{"cat", "US-Student"},
			}),
		}
		c, err := New(docs)
		require.NoError(t, err)

		require.NoError(t, c.ExpandCompounds([]rune{'-'}, 2, false))
		d, err := c.Get("d1")
		require.NoError(t, err)
		assert.Equal(t, []string{"cats", "US", "Student"}, d.Tokens())
		assert.Equal(t, []string{"cat", "US", "Student"}, d.LiveLemma())
	})

	t.Run("masked compounds are not expanded", func(t *testing.T) {
		docs := []*document.Document{
			mustDoc(t, "d1", []string{"a-b", "keep"}, document.Attributes{}),
		}
		c, err := New(docs)
		require.NoError(t, err)
		require.NoError(t, c.RemoveTokens([]string{"a-b"}, FilterOptions{}))

		require.NoError(t, c.ExpandCompounds([]rune{'-'}, 1, false))
		assert.Equal(t, []string{"keep"}, liveTokens(t, c, "d1"))
	})

	t.Run("invalid min part length", func(t *testing.T) {
		err := c.ExpandCompounds([]rune{'-'}, 0, false)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})
}

func TestGlueTokens(t *testing.T) {
	docs := []*document.Document{
		mustDoc(t, "d1", []string{"I", "live", "in", "New", "York"}, document.Attributes{}),
		mustDoc(t, "d2", []string{"New", "York", "or", "New", "Jersey"}, document.Attributes{}),
	}
	c, err := New(docs)
	require.NoError(t, err)

	glued, err := c.GlueTokens([]string{"New", "York"}, " ", match.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"New York"}, glued)

	assert.Equal(t, []string{"I", "live", "in", "New York"}, liveTokens(t, c, "d1"))
	assert.Equal(t, []string{"New York", "or", "New", "Jersey"}, liveTokens(t, c, "d2"))
	assert.Equal(t, []int{4, 4}, c.Lengths())

	t.Run("compacts masked documents first", func(t *testing.T) {
		docs := []*document.Document{
			mustDoc(t, "d1", []string{"drop", "New", "York"}, document.Attributes{}),
		}
		c, err := New(docs)
		require.NoError(t, err)
		require.NoError(t, c.RemoveTokens([]string{"drop"}, FilterOptions{}))

		glued, err := c.GlueTokens([]string{"New", "York"}, "_", match.Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"New_York"}, glued)
		assert.Equal(t, []string{"New_York"}, liveTokens(t, c, "d1"))
	})

	t.Run("distinct merged tokens sorted", func(t *testing.T) {
		docs := []*document.Document{
			mustDoc(t, "d1", []string{"b", "x", "a", "x"}, document.Attributes{}),
		}
		c, err := New(docs)
		require.NoError(t, err)

		glued, err := c.GlueTokens([]string{"*", "x"}, "+", match.Options{Mode: match.ModeGlob})
		require.NoError(t, err)
		assert.Equal(t, []string{"a+x", "b+x"}, glued)
	})

	t.Run("too few patterns", func(t *testing.T) {
		_, err := c.GlueTokens([]string{"solo"}, " ", match.Options{})
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})
}
