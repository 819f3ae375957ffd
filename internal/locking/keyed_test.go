package locking_test

import (
	"sync"
	"testing"

	"github.com/HugoFdezTbres/fairplay/internal/locking"
	"github.com/stretchr/testify/assert"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := locking.NewKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("court-1|2025-03-14")
			defer km.Unlock("court-1|2025-03-14")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := locking.NewKeyedMutex()

	km.Lock("a")
	defer km.Unlock("a")

	// A different key must not block.
	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()
	<-done
}
