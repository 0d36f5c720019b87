package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{""}, Wrap("", 10))
	})
	t.Run("fits", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"enable verbose output"}, Wrap("enable verbose output", 40))
	})
	t.Run("breaks on words", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"path to the", "config file"}, Wrap("path to the config file", 11))
	})
	t.Run("long word kept whole", func(t *testing.T) {
		t.Parallel()
		got := Wrap("see https://example.com/a/very/long/path", 10)
		require.Equal(t, []string{"see", "https://example.com/a/very/long/path"}, got)
	})
	t.Run("words as long as width", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"ab", "cd"}, Wrap("ab cd", 2))
		require.Equal(t, []string{"a b", "cdef", "gh"}, Wrap("a b cdef gh", 3))
	})
	t.Run("width one", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"a", "b", "cd"}, Wrap("a b cd", 1))
	})
	t.Run("non-positive width", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"a", "b"}, Wrap("a b", 0))
	})
}
