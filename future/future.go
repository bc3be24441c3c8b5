// Package future provides a small promise/future pair used to run a
// function on a background goroutine and collect its result later.
package future

import (
	"context"
	"sync"

	"go.uber.org/atomic"

	"github.com/amp-labs/tuples/try"
)

// Future represents the read-only side of an asynchronous computation.
// It is fulfilled exactly once by its associated Promise; every waiter and
// every registered callback observes that single result.
type Future[T any] struct {
	resultReady chan struct{} // closed exactly once, on fulfillment
	result      try.Try[T]
	once        sync.Once
	completed   *atomic.Bool

	mu               sync.Mutex
	successCallbacks []func(T)
	errorCallbacks   []func(error)
}

// New creates an unfulfilled future and the promise that completes it.
// The promise holds a reference to the future, not the other way around, so
// futures can be handed out without exposing the ability to complete them.
func New[T any]() (*Future[T], *Promise[T]) {
	fut := &Future[T]{
		resultReady: make(chan struct{}),
		completed:   atomic.NewBool(false),
	}

	return fut, &Promise[T]{future: fut}
}

// IsCompleted reports whether the future has been fulfilled.
func (f *Future[T]) IsCompleted() bool {
	return f.completed.Load()
}

// Await blocks until the future is fulfilled and returns its result.
func (f *Future[T]) Await() (T, error) { //nolint:ireturn
	<-f.resultReady

	return f.result.Get()
}

// AwaitContext blocks until the future is fulfilled or the context is done,
// whichever comes first. On context expiry the context's error is returned;
// the underlying computation keeps running.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) { //nolint:ireturn
	select {
	case <-f.resultReady:
		return f.result.Get()
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}

// OnSuccess registers a callback invoked with the value if the future
// succeeds. If the future is already fulfilled, the callback fires
// immediately on its own goroutine.
func (f *Future[T]) OnSuccess(callback func(T)) {
	f.mu.Lock()

	if !f.completed.Load() {
		f.successCallbacks = append(f.successCallbacks, callback)
		f.mu.Unlock()

		return
	}

	f.mu.Unlock()

	if f.result.IsSuccess() {
		invokeCallback("OnSuccess", callback, f.result.Value)
	}
}

// OnError registers a callback invoked with the error if the future fails.
// If the future is already fulfilled, the callback fires immediately on its
// own goroutine.
func (f *Future[T]) OnError(callback func(error)) {
	f.mu.Lock()

	if !f.completed.Load() {
		f.errorCallbacks = append(f.errorCallbacks, callback)
		f.mu.Unlock()

		return
	}

	f.mu.Unlock()

	if f.result.IsFailure() {
		invokeCallback("OnError", callback, f.result.Error)
	}
}
