package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err, _ := g.Do("squad-key", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_Do_RunsAgainAfterCompletion(t *testing.T) {
	var g SingleFlight
	var counter int32

	fn := func() (any, error) {
		atomic.AddInt32(&counter, 1)
		return nil, nil
	}

	if _, _, shared := g.Do("k", fn); shared {
		t.Fatal("first call should not be shared")
	}
	if _, _, shared := g.Do("k", fn); shared {
		t.Fatal("sequential call should not be shared")
	}

	if got := atomic.LoadInt32(&counter); got != 2 {
		t.Fatalf("expected function to run twice, got %d", got)
	}
}
