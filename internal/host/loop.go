package host

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Loop runs posted functions one at a time on a single goroutine.
type Loop struct {
	log *zap.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	pending int // queued, running, or in-flight Go work
	closed  bool
}

// NewLoop returns a loop; call Run to start processing.
func NewLoop(log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Loop{log: log.Named("loop")}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Post queues fn. Functions posted after the loop stops are dropped.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.queue = append(l.queue, fn)
	l.pending++
	l.cond.Broadcast()
}

// Go runs work on its own goroutine and posts the completion it returns.
// A nil completion posts nothing.
func (l *Loop) Go(work func() (done func())) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.pending++
	l.mu.Unlock()

	go func() {
		if done := work(); done != nil {
			l.Post(done)
		}
		l.finish()
	}()
}

func (l *Loop) finish() {
	l.mu.Lock()
	l.pending--
	l.cond.Broadcast()
	l.mu.Unlock()
}

// Run processes posted functions until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		l.mu.Lock()
		l.closed = true
		l.cond.Broadcast()
		l.mu.Unlock()
	})
	defer stop()

	for {
		l.mu.Lock()
		for len(l.queue) == 0 && !l.closed {
			l.cond.Wait()
		}
		if l.closed {
			l.queue = nil
			l.mu.Unlock()
			return ctx.Err()
		}
		fn := l.queue[0]
		l.queue = l.queue[1:]
		l.mu.Unlock()

		l.run(fn)
		l.finish()
	}
}

// run calls fn, keeping the loop alive if it panics.
func (l *Loop) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("panic in loop callback", zap.Any("panic", r), zap.Stack("stack"))
		}
	}()
	fn()
}

// Wait blocks until nothing is queued, running or in flight, or the loop
// stops.
func (l *Loop) Wait() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for l.pending > 0 && !l.closed {
		l.cond.Wait()
	}
}

// Queue runs work one item at a time, in the order Go was called, off the
// loop goroutine. Completions are posted to the loop in the same order.
type Queue struct {
	loop *Loop

	mu      sync.Mutex
	work    []func() func()
	running bool
}

// NewQueue returns a queue whose completions run on l.
func (l *Loop) NewQueue() *Queue {
	return &Queue{loop: l}
}

// Go queues work behind everything issued earlier on q. A nil completion
// posts nothing.
func (q *Queue) Go(work func() (done func())) {
	l := q.loop
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.pending++
	l.mu.Unlock()

	q.mu.Lock()
	q.work = append(q.work, work)
	if q.running {
		q.mu.Unlock()
		return
	}
	q.running = true
	q.mu.Unlock()

	go q.drain()
}

// drain exits once the queue is empty; the next Go starts a new one.
func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if len(q.work) == 0 {
			q.running = false
			q.mu.Unlock()
			return
		}
		work := q.work[0]
		q.work = q.work[1:]
		q.mu.Unlock()

		if done := work(); done != nil {
			q.loop.Post(done)
		}
		q.loop.finish()
	}
}
