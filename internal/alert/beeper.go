package alert

import (
	"sync"
	"time"
)

// Beeper drives the repeating audio cue while an alarm is active. It owns one
// ticker goroutine and toggles its sink at a fixed on/off duty cycle. The
// sink typically pushes CUE messages down the client's websocket; tests plug
// in a recorder. Start while running and Stop while stopped are no-ops.
type Beeper struct {
	interval time.Duration
	sink     func(on bool)

	mu      sync.Mutex
	stopC   chan struct{}
	stopped chan struct{}
}

func NewBeeper(interval time.Duration, sink func(on bool)) *Beeper {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	if sink == nil {
		sink = func(bool) {}
	}
	return &Beeper{interval: interval, sink: sink}
}

// Start begins the cue; idempotent.
func (b *Beeper) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopC != nil {
		return
	}
	b.stopC = make(chan struct{})
	b.stopped = make(chan struct{})
	go b.run(b.stopC, b.stopped)
}

// Stop silences the cue immediately; idempotent. It returns after the cue
// goroutine has emitted its final off edge.
func (b *Beeper) Stop() {
	b.mu.Lock()
	stopC, stopped := b.stopC, b.stopped
	b.stopC, b.stopped = nil, nil
	b.mu.Unlock()
	if stopC == nil {
		return
	}
	close(stopC)
	<-stopped
}

// Active reports whether the cue is currently running.
func (b *Beeper) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stopC != nil
}

func (b *Beeper) run(stopC, stopped chan struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	on := true
	b.sink(true)
	for {
		select {
		case <-stopC:
			b.sink(false)
			return
		case <-ticker.C:
			on = !on
			b.sink(on)
		}
	}
}
