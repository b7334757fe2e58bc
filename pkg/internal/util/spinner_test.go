package util

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSpin(t *testing.T) {
	t.Run("elapses", func(t *testing.T) {
		require.True(t, Spin(io.Discard, "", time.Millisecond, nil))
	})

	t.Run("cancelled", func(t *testing.T) {
		done := make(chan struct{})
		close(done)

		require.False(t, Spin(io.Discard, "", time.Hour, done))
	})
}
