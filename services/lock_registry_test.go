package services

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockRegistry_TryAcquire(t *testing.T) {
	reg := NewLockRegistry()

	h := reg.TryAcquire("company-a")
	require.NotNil(t, h)
	assert.True(t, reg.IsLocked("company-a"))

	// Second attempt on the same company fails while held.
	assert.Nil(t, reg.TryAcquire("company-a"))

	// Independent companies are unaffected.
	h2 := reg.TryAcquire("company-b")
	require.NotNil(t, h2)

	h.Release()
	assert.False(t, reg.IsLocked("company-a"))
	assert.True(t, reg.IsLocked("company-b"))

	// Re-acquirable after release.
	h3 := reg.TryAcquire("company-a")
	require.NotNil(t, h3)
	h3.Release()
	h2.Release()
}

func TestLockRegistry_ReleaseIdempotent(t *testing.T) {
	reg := NewLockRegistry()

	h := reg.TryAcquire("company-a")
	require.NotNil(t, h)

	h.Release()
	h.Release()
	assert.False(t, reg.IsLocked("company-a"))

	// A stale second release must not free a newly acquired lock.
	h2 := reg.TryAcquire("company-a")
	require.NotNil(t, h2)
	h.Release()
	assert.True(t, reg.IsLocked("company-a"))
	h2.Release()
}

func TestLockRegistry_IsLockedDoesNotCreateEntries(t *testing.T) {
	reg := NewLockRegistry()

	assert.False(t, reg.IsLocked("never-seen"))

	reg.mu.Lock()
	_, exists := reg.locks["never-seen"]
	reg.mu.Unlock()
	assert.False(t, exists)
}

func TestLockRegistry_ConcurrentSingleWinner(t *testing.T) {
	reg := NewLockRegistry()

	const goroutines = 64
	var won atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if h := reg.TryAcquire("company-a"); h != nil {
				won.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), won.Load())
	assert.True(t, reg.IsLocked("company-a"))
}

func TestLockRegistry_ConcurrentAcquireRelease(t *testing.T) {
	reg := NewLockRegistry()

	var wg sync.WaitGroup
	var total atomic.Int32
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if h := reg.TryAcquire("company-a"); h != nil {
					total.Add(1)
					h.Release()
				}
			}
		}()
	}
	wg.Wait()

	assert.False(t, reg.IsLocked("company-a"))
	assert.Greater(t, total.Load(), int32(0))
}
