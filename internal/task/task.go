// Package task runs deferred operations that stand in for network round
// trips. Every task can be cancelled until its function has run.
package task

import (
	"context"
	"sync"
	"time"
)

type Task[T any] struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	val    T
	err    error
}

// Run calls fn once after delay unless the task or parent is cancelled
// first. fn receives the task context; owners that mutate shared state must
// check ctx.Err() under their own lock before writing.
func Run[T any](parent context.Context, delay time.Duration, fn func(ctx context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(parent)
	t := &Task[T]{ctx: ctx, cancel: cancel, done: make(chan struct{})}
	go t.run(delay, fn)
	return t
}

func (t *Task[T]) run(delay time.Duration, fn func(ctx context.Context) (T, error)) {
	defer close(t.done)
	defer t.cancel()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-t.ctx.Done():
		t.err = t.ctx.Err()
		return
	case <-timer.C:
	}
	t.val, t.err = fn(t.ctx)
}

func (t *Task[T]) Cancel() { t.cancel() }

func (t *Task[T]) Done() <-chan struct{} { return t.done }

func (t *Task[T]) Pending() bool {
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

// Wait blocks until the task finishes or ctx ends. A cancelled task reports
// context.Canceled.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

type canceler interface {
	Cancel()
	Done() <-chan struct{}
}

// Group tracks the pending tasks of one owner. The zero value is ready to use.
type Group struct {
	mu    sync.Mutex
	tasks map[canceler]struct{}
}

// Go starts fn through Run and tracks it in g until it finishes.
func Go[T any](g *Group, parent context.Context, delay time.Duration, fn func(ctx context.Context) (T, error)) *Task[T] {
	t := Run(parent, delay, fn)
	g.track(t)
	return t
}

func (g *Group) track(c canceler) {
	g.mu.Lock()
	if g.tasks == nil {
		g.tasks = make(map[canceler]struct{})
	}
	g.tasks[c] = struct{}{}
	g.mu.Unlock()

	go func() {
		<-c.Done()
		g.mu.Lock()
		delete(g.tasks, c)
		g.mu.Unlock()
	}()
}

// CancelAll cancels every tracked task and reports how many were pending.
func (g *Group) CancelAll() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for c := range g.tasks {
		select {
		case <-c.Done():
			continue
		default:
		}
		c.Cancel()
		n++
	}
	return n
}

func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.tasks)
}
