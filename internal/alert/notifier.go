package alert

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"wakeguard/go-backend/internal/services"
)

// Sender delivers one outbound alert message.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// Nop is a no-op sender used when SMS is not configured and in tests.
type Nop struct{}

func (Nop) Send(_ context.Context, _, _ string) error { return nil }

type task struct {
	to   string
	body string
}

// Dispatcher sends rate-limited SMS alerts on a background worker so frame
// processing never waits on the network. Cooldown and in-flight state are
// tracked per recipient: one alarm within the cooldown window produces at
// most one delivery attempt to that number, and alarms for different
// recipients never throttle each other. Transport failures are logged and
// never retried automatically.
type Dispatcher struct {
	sender   Sender
	logger   *logrus.Logger
	metrics  *services.Metrics
	cooldown time.Duration
	message  string
	now      func() time.Time

	mu       sync.Mutex
	lastSent map[string]time.Time
	pending  map[string]bool

	tasks  chan task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher(sender Sender, message string, cooldown time.Duration, metrics *services.Metrics, logger *logrus.Logger) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		sender:   sender,
		logger:   logger,
		metrics:  metrics,
		cooldown: cooldown,
		message:  message,
		now:      time.Now,
		lastSent: make(map[string]time.Time),
		pending:  make(map[string]bool),
		tasks:    make(chan task, 16),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the delivery worker.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go d.worker()
}

// Close stops the worker. Queued tasks are abandoned; an SMS that did not go
// out before shutdown is not worth blocking shutdown for.
func (d *Dispatcher) Close() {
	d.cancel()
	d.wg.Wait()
}

// Notify requests one alert delivery to the given recipient. The request is
// skipped silently when the recipient is empty, when a delivery to that
// number is already in flight, or when its cooldown since the last
// successful send has not elapsed.
func (d *Dispatcher) Notify(to string) {
	if to == "" {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending[to] {
		d.skip()
		return
	}
	if last, ok := d.lastSent[to]; ok && d.now().Sub(last) < d.cooldown {
		d.logger.Debugf("SMS to %s skipped, cooldown active (last sent %s)", to, last.Format(time.RFC3339))
		d.skip()
		return
	}

	select {
	case d.tasks <- task{to: to, body: d.message}:
		d.pending[to] = true
	default:
		d.logger.Errorf("SMS queue full, dropping alert for %s", to)
		d.skip()
	}
}

func (d *Dispatcher) skip() {
	if d.metrics != nil {
		d.metrics.IncrementSMSSkipped()
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for {
		select {
		case <-d.ctx.Done():
			return
		case t := <-d.tasks:
			d.deliver(t)
		}
	}
}

func (d *Dispatcher) deliver(t task) {
	ctx, cancel := context.WithTimeout(d.ctx, 10*time.Second)
	err := d.sender.Send(ctx, t.to, t.body)
	cancel()

	d.mu.Lock()
	delete(d.pending, t.to)
	if err == nil {
		d.lastSent[t.to] = d.now()
	}
	d.mu.Unlock()

	if err != nil {
		// Logged only; the alarm state machine never sees transport errors.
		d.logger.Errorf("SMS delivery to %s failed: %v", t.to, err)
		if d.metrics != nil {
			d.metrics.IncrementSMSFailed()
		}
		return
	}
	d.logger.Infof("SMS alert sent to %s", t.to)
	if d.metrics != nil {
		d.metrics.IncrementSMSSent()
	}
}
