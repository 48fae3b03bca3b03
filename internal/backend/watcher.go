// Package backend runs the background pollers that feed the presentation
// layer. Nothing here touches shell state; events are delivered to the UI,
// which decides what to repaint.
package backend

import (
	"context"
	"sync"
	"time"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindClock Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindClock:
		return "clock"
	default:
		return "unknown"
	}
}

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Time returns the event payload as a time when it is one.
func (e Event) Time() (time.Time, bool) {
	t, ok := e.Data.(time.Time)
	return t, ok
}

// Clock supplies the current time.
type Clock func() time.Time

// Watcher polls its sources at a fixed interval and publishes events.
type Watcher struct {
	interval time.Duration
	now      Clock

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that reads the clock every interval. A nil
// clock means time.Now.
func NewWatcher(parent context.Context, interval time.Duration, now Clock) *Watcher {
	if parent == nil {
		parent = context.Background()
	}
	if now == nil {
		now = time.Now
	}
	if interval <= 0 {
		interval = time.Second
	}
	ctx, cancel := context.WithCancel(parent)
	w := &Watcher{
		interval: interval,
		now:      now,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.startClockPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events. It is closed once every
// poller has exited.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startClockPoller() {
	var last time.Time
	w.wg.Add(1)
	go w.poll(KindClock, func(context.Context) (interface{}, bool, error) {
		minute := w.now().Truncate(time.Minute)
		if minute.Equal(last) {
			return nil, false, nil
		}
		last = minute
		return minute, true, nil
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, bool, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, changed, err := fetch(w.ctx)
		if !changed && err == nil {
			return true
		}
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
