package workpool

import "sync"

// Future holds the eventual result of a forked task.
type Future[T any] struct {
	mu    sync.Mutex
	done  bool
	value T
	err   error
}

func (f *Future[T]) settle(value T, err error) {
	f.mu.Lock()
	f.value, f.err, f.done = value, err, true
	f.mu.Unlock()
}

// Done reports whether the task has finished.
func (f *Future[T]) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

func (f *Future[T]) result() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.err
}

// Fork submits fn to p and returns a Future for its result. It reports
// ok=false, with a nil Future, if the pool has been closed: the caller is
// then responsible for propagating that abandonment up its own
// recursion, per the pool's cancellation model.
func Fork[T any](p *Pool, fn func() (T, error)) (future *Future[T], ok bool) {
	p.m.L.Lock()
	closed := p.closed
	p.m.L.Unlock()
	if closed {
		return nil, false
	}

	f := &Future[T]{}
	p.push(func() {
		value, err := fn()
		f.settle(value, err)
		p.m.L.Lock()
		p.m.Broadcast()
		p.m.L.Unlock()
	})
	return f, true
}

// Join waits for f to settle. Rather than blocking the calling goroutine
// outright, it keeps popping and running other queued tasks from p while
// it waits, so a worker that forked children and joins them immediately
// keeps the pool productive instead of deadlocking once every worker is
// similarly waiting.
func Join[T any](p *Pool, f *Future[T]) (T, error) {
	for {
		if f.Done() {
			return f.result()
		}
		if fn, ok := p.pop(false); ok {
			fn()
			continue
		}
		p.m.L.Lock()
		if !f.Done() && len(p.queue) == 0 && !p.closed {
			p.m.Wait()
		}
		p.m.L.Unlock()
	}
}
