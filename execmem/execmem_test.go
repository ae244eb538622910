package execmem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageLifecycle(t *testing.T) {
	if !supported(t) {
		return
	}
	code := []byte{0xC3} // RET
	p, err := New(code)
	require.NoError(t, err)
	require.Equal(t, len(code), p.Len())
	require.NotZero(t, p.Addr())

	require.NoError(t, p.MakeExecutable())
	// A second transition is a no-op, not an error.
	require.NoError(t, p.MakeExecutable())

	require.NoError(t, p.Release())
}

func TestNewRejectsEmptyCode(t *testing.T) {
	if !supported(t) {
		return
	}
	_, err := New(nil)
	require.Error(t, err)
}

func supported(t *testing.T) bool {
	t.Helper()
	p, err := New([]byte{0x90})
	if err != nil {
		t.Skip("JIT compilation unsupported on this GOARCH")
		return false
	}
	require.NoError(t, p.Release())
	return true
}
