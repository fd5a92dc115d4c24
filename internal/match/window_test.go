package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpuskit/corpuskit/pkg/errors"
)

func TestWindows(t *testing.T) {
	matches := []bool{false, false, true, false, false, true}

	t.Run("symmetric", func(t *testing.T) {
		got, err := Windows(matches, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2, 3}, {4, 5}}, got)
	})

	t.Run("clipped at both edges", func(t *testing.T) {
		got, err := Windows([]bool{true, false, true}, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 1, 2}, {0, 1, 2}}, got)
	})

	t.Run("asymmetric", func(t *testing.T) {
		got, err := Windows(matches, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{2, 3, 4}, {5}}, got)
	})

	t.Run("no matches", func(t *testing.T) {
		got, err := Windows([]bool{false, false}, 1, 1)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("negative radius", func(t *testing.T) {
		_, err := Windows(matches, -1, 0)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
		_, err = Windows(matches, 0, -1)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})
}

func TestFlatWindows(t *testing.T) {
	matches := []bool{true, false, true, false, false, true}

	t.Run("zero radius equals match indices", func(t *testing.T) {
		got, err := FlatWindows(matches, 0, 0, true)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2, 5}, got)
	})

	t.Run("overlaps removed", func(t *testing.T) {
		got, err := FlatWindows(matches, 1, 1, true)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, got)
	})

	t.Run("overlaps kept", func(t *testing.T) {
		got, err := FlatWindows(matches, 1, 1, false)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 1, 2, 3, 4, 5}, got)
	})
}

func TestKeepMask(t *testing.T) {
	assert.Equal(t, []bool{true, false, true, false}, KeepMask([]int{0, 2}, 4))
	assert.Equal(t, []bool{false, false}, KeepMask(nil, 2))

	// out-of-range indices are ignored
	assert.Equal(t, []bool{false, true}, KeepMask([]int{-1, 1, 7}, 2))
}
