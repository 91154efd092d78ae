//go:build !windows

package trash

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListWithFIFO(t *testing.T) {
	env := newTestEnv(t, NeverConfirm)
	pipe := env.path("pipe")
	require.NoError(t, syscall.Mkfifo(pipe, 0644))

	outcome, err := env.engine.Trash(pipe, false)
	require.NoError(t, err)

	type result struct {
		entries []Entry
		err     error
	}
	done := make(chan result, 1)
	go func() {
		entries, err := env.engine.List()
		done <- result{entries, err}
	}()

	select {
	case r := <-done:
		require.NoError(t, r.err)
		require.Len(t, r.entries, 1)
		assert.Equal(t, outcome.Name, r.entries[0].Name)
		assert.Equal(t, pipe, r.entries[0].OriginalPath)
		assert.Empty(t, r.entries[0].MIME)
		assert.True(t, r.entries[0].Restorable())
	case <-time.After(5 * time.Second):
		t.Fatal("List did not return with a FIFO in the trash")
	}
}
