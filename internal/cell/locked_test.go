package cell

import (
	"sync"
	"testing"

	"github.com/vladislavmarkov/data-registry/pkg/reg"
)

func TestLockedLoadStore(t *testing.T) {
	c := NewLocked("idle")
	if got := c.Load(); got != "idle" {
		t.Fatalf("expected idle, got %q", got)
	}
	c.Store("busy")
	if got := c.Load(); got != "busy" {
		t.Fatalf("expected busy, got %q", got)
	}
}

func TestLockedAsReadWriteEntry(t *testing.T) {
	counter := NewLocked(0)
	hits := reg.ReadWrite(counter.Load, counter.Store)

	const n = 64
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			counter.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()

	if got := reg.Get(hits); got != n {
		t.Fatalf("expected %d, got %d", n, got)
	}

	reg.Set(hits, 0)
	if got := counter.Load(); got != 0 {
		t.Fatalf("expected 0 after Set, got %d", got)
	}
}
