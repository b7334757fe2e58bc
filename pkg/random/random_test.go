package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("same seed gives the same sequence", func(t *testing.T) {
		a, b := New(42), New(42)
		for i := 0; i < 100; i++ {
			require.Equal(t, a.Intn(1000), b.Intn(1000))
		}
	})

	t.Run("values stay in range", func(t *testing.T) {
		src := New(7)
		seen := make(map[int]bool)
		for i := 0; i < 1000; i++ {
			v := src.Intn(5)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 5)
			seen[v] = true
		}

		require.Len(t, seen, 5, "every value of a small range should show up")
	})
}

func TestSeeded(t *testing.T) {
	a, b := Seeded(3), New(3)
	require.Equal(t, a.Intn(1<<30), b.Intn(1<<30))

	require.NotNil(t, Seeded(0))
}
