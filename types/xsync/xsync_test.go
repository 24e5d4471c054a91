package xsync

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLatch(t *testing.T) {
	l := NewLatch()
	require.False(t, l.Test())
	select {
	case <-l.WaitChan():
		t.Fatal("latch triggered before Trigger")
	default:
	}

	l.Trigger()
	require.True(t, l.Test())
	l.Wait() // Returns immediately once triggered.
	<-l.WaitChan()

	// Re-triggering is a no-op.
	require.NotPanics(t, l.Trigger)
	require.True(t, l.Test())
}

func TestLatchWakesWaiters(t *testing.T) {
	l := NewLatch()
	done := make(chan struct{})
	go func() {
		l.Wait()
		close(done)
	}()
	l.Trigger()
	<-done
}
