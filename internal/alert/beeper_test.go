package alert

import (
	"sync"
	"testing"
	"time"
)

type cueRecorder struct {
	mu    sync.Mutex
	edges []bool
}

func (r *cueRecorder) sink(on bool) {
	r.mu.Lock()
	r.edges = append(r.edges, on)
	r.mu.Unlock()
}

func (r *cueRecorder) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.edges...)
}

func TestBeeperStartStop(t *testing.T) {
	rec := &cueRecorder{}
	b := NewBeeper(5*time.Millisecond, rec.sink)

	b.Start()
	if !b.Active() {
		t.Fatal("beeper not active after Start")
	}
	time.Sleep(30 * time.Millisecond)
	b.Stop()
	if b.Active() {
		t.Fatal("beeper active after Stop")
	}

	edges := rec.snapshot()
	if len(edges) < 3 {
		t.Fatalf("expected several cue edges, got %v", edges)
	}
	if edges[0] != true {
		t.Error("cue must start with an on edge")
	}
	if edges[len(edges)-1] != false {
		t.Error("cue must end with an off edge")
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] == edges[i-1] {
			// The final forced off edge may repeat an off state; anything
			// else must alternate.
			if i != len(edges)-1 {
				t.Fatalf("cue edges do not alternate: %v", edges)
			}
		}
	}
}

func TestBeeperStartIsIdempotent(t *testing.T) {
	rec := &cueRecorder{}
	b := NewBeeper(time.Hour, rec.sink)

	b.Start()
	b.Start()
	b.Start()
	defer b.Stop()

	time.Sleep(10 * time.Millisecond)
	if got := len(rec.snapshot()); got != 1 {
		t.Fatalf("expected a single on edge from one cue loop, got %d", got)
	}
}

func TestBeeperStopIsIdempotent(t *testing.T) {
	b := NewBeeper(time.Hour, nil)
	b.Start()
	b.Stop()
	b.Stop() // must not panic or block
}
