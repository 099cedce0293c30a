package syncx

import (
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
)

func TestLockFunc(t *testing.T) {
	var (
		mux     sync.Mutex
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				LockFunc(&mux, func() {
					counter++
				})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1000, counter)
	assert.True(t, mux.TryLock(), "Lock should be released")
}

func TestLockFuncT(t *testing.T) {
	var mux sync.Mutex
	result := LockFuncT(&mux, func() string {
		assert.False(t, mux.TryLock(), "Lock should be held")
		return "done"
	})
	assert.Equal(t, "done", result)
	assert.True(t, mux.TryLock(), "Lock should be released")
}
