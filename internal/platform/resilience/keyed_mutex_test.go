package resilience

import (
	"sync"
	"testing"
	"time"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	var m KeyedMutex
	var active, maxActive int
	var mu sync.Mutex

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := m.Lock("fx-1::HOME")
			defer unlock()

			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}

	wg.Wait()

	if maxActive != 1 {
		t.Fatalf("expected at most one concurrent holder, got %d", maxActive)
	}
	if len(m.locks) != 0 {
		t.Fatalf("expected lock table to drain, got %d entries", len(m.locks))
	}
}

func TestKeyedMutex_IndependentKeysDoNotBlock(t *testing.T) {
	var m KeyedMutex

	unlockHome := m.Lock("fx-1::HOME")
	defer unlockHome()

	done := make(chan struct{})
	go func() {
		unlockAway := m.Lock("fx-1::AWAY")
		unlockAway()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on an unrelated key blocked")
	}
}
