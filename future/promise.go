package future

import (
	"github.com/amp-labs/tuples/try"
)

// Promise represents the write-only side of an asynchronous computation.
// A promise can only be fulfilled once; later calls to Success, Failure or
// Complete are ignored. Fulfillment is safe from any goroutine and unblocks
// every waiter on the associated future.
type Promise[T any] struct {
	future *Future[T]
}

// fulfill stores the result, closes the broadcast channel and invokes the
// registered callbacks. sync.Once makes it idempotent; the mutex is held
// while the channel closes so callback registration stays atomic with
// respect to fulfillment.
func (p *Promise[T]) fulfill(result try.Try[T]) {
	p.future.once.Do(func() {
		p.future.result = result

		p.future.mu.Lock()

		p.future.completed.Store(true)
		close(p.future.resultReady)

		successCallbacks := p.future.successCallbacks
		errorCallbacks := p.future.errorCallbacks

		// Ensure that callbacks only get called once, and let the GC
		// reclaim them afterwards.
		p.future.successCallbacks = nil
		p.future.errorCallbacks = nil

		p.future.mu.Unlock()

		if result.IsSuccess() {
			for _, callback := range successCallbacks {
				invokeCallback("OnSuccess", callback, result.Value)
			}
		} else {
			for _, callback := range errorCallbacks {
				invokeCallback("OnError", callback, result.Error)
			}
		}
	})
}

// Success fulfills the promise with a successful value.
func (p *Promise[T]) Success(value T) {
	p.fulfill(try.Try[T]{Value: value})
}

// Failure fulfills the promise with an error.
func (p *Promise[T]) Failure(err error) {
	var zero T

	p.fulfill(try.Try[T]{Value: zero, Error: err})
}

// Complete fulfills the promise with a value and error pair, matching Go's
// standard return shape: a non-nil error wins, otherwise the value does.
func (p *Promise[T]) Complete(value T, err error) {
	if err != nil {
		p.Failure(err)
	} else {
		p.Success(value)
	}
}
