package split

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpuskit/corpuskit/pkg/errors"
)

func TestMultiSplit(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		chars []rune
		want  []string
	}{
		{"single char", "US-Student-X", []rune{'-'}, []string{"US", "Student", "X"}},
		{"two chars", "no-way_sir", []rune{'-', '_'}, []string{"no", "way", "sir"}},
		{"no separator present", "plain", []rune{'-'}, []string{"plain"}},
		{"consecutive separators", "a--b", []rune{'-'}, []string{"a", "", "b"}},
		{"no chars", "a-b", nil, []string{"a-b"}},
		{"empty string", "", []rune{'-'}, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MultiSplit(tt.s, tt.chars))
		})
	}
}

func TestShape(t *testing.T) {
	assert.Equal(t, []int{1, 0, 0, 0, 0, 1, 0, 0, 0}, Shape("CamelCase"))
	assert.Equal(t, []int{0, 0, 0}, Shape("abc"))
	assert.Equal(t, []int{1, 1, 1}, Shape("AB1"))
	assert.Empty(t, Shape(""))
}

func TestShapeSplit(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		minPartLen int
		want       []string
	}{
		{"camel case", "CamelCase", 2, []string{"Camel", "Case"}},
		{"lower first", "camelCase", 2, []string{"camel", "Case"}},
		{"short head merges", "eMobility", 2, []string{"eMobility"}},
		{"no boundary", "plain", 2, []string{"plain"}},
		{"all upper", "NASA", 2, []string{"NASA"}},
		{"empty", "", 2, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShapeSplit(tt.s, tt.minPartLen)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("concatenation reproduces input", func(t *testing.T) {
		for _, s := range []string{"CamelCase", "eMobility", "USStudent", "aBcDeFg", "x"} {
			parts, err := ShapeSplit(s, 2)
			require.NoError(t, err)
			assert.Equal(t, s, strings.Join(parts, ""))
		}
	})

	t.Run("invalid min part length", func(t *testing.T) {
		_, err := ShapeSplit("x", 0)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})
}

func TestExpandCompound(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		splitChars  []rune
		minPartLen  int
		splitOnCase bool
		want        []string
	}{
		{"hyphen compound", "US-Student", []rune{'-'}, 2, false, []string{"US", "Student"}},
		{"short part pulls next", "E-Mobility", []rune{'-'}, 2, false, []string{"EMobility"}},
		{"no compound", "hello", []rune{'-'}, 2, false, []string{"hello"}},
		{"case only", "CamelCase", nil, 2, true, []string{"Camel", "Case"}},
		{"chars then case", "Camel-CamelCase", []rune{'-'}, 2, true, []string{"Camel", "Camel", "Case"}},
		{"empty parts dropped", "a--b", []rune{'-'}, 1, false, []string{"a", "b"}},
		{"only separators", "--", []rune{'-'}, 2, false, []string{"--"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandCompound(tt.token, tt.splitChars, tt.minPartLen, tt.splitOnCase)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("trailing short part merges backward", func(t *testing.T) {
		got, err := ExpandCompound("Student-X", []rune{'-'}, 2, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"StudentX"}, got)
	})

	t.Run("uppercase rule only with case splitting", func(t *testing.T) {
		// "US" is short of nothing, but "E" is: with splitOnCase the
		// all-uppercase single letter pulls the next part in
		got, err := ExpandCompound("E-Mobility", []rune{'-'}, 2, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"EMobility"}, got)
	})

	t.Run("invalid min part length", func(t *testing.T) {
		_, err := ExpandCompound("x", []rune{'-'}, 0, false)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})
}
