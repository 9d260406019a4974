package vec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// panicErr runs f and returns the error it panicked with.
func panicErr(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	f()
	return nil
}

type unit struct{}

var unitDrops int

// dropUnit is a zero-sized type that counts its drops.
type dropUnit struct{}

func (dropUnit) Drop() { unitDrops++ }

type big struct {
	_ [2048]byte
}
