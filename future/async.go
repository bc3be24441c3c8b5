package future

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/amp-labs/tuples/logger"
)

// Go runs f on a new goroutine and returns a future that completes with its
// result. A panic inside f fails the future instead of crashing the process.
func Go[T any](f func() (T, error)) *Future[T] {
	fut, promise := New[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				promise.Failure(panicError(r, debug.Stack()))
			}
		}()

		promise.Complete(f())
	}()

	return fut
}

// GoContext runs f on a new goroutine with the given context and returns a
// future that completes with its result. Cancellation is cooperative: f is
// expected to honor the context.
func GoContext[T any](ctx context.Context, f func(ctx context.Context) (T, error)) *Future[T] {
	if ctx == nil {
		ctx = context.Background()
	}

	fut, promise := New[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				promise.Failure(panicError(r, debug.Stack()))
			}
		}()

		promise.Complete(f(ctx))
	}()

	return fut
}

// panicError converts a recovered panic value into an error carrying the
// goroutine's stack trace.
func panicError(recovered any, stack []byte) error {
	return fmt.Errorf("panic in future: %v\n%s", recovered, stack) //nolint:err113
}

// invokeCallback invokes a callback on its own goroutine with panic recovery,
// so a misbehaving callback can neither block fulfillment nor crash the
// process. Nil callbacks are ignored.
func invokeCallback[T any](kind string, callback func(T), value T) {
	if callback == nil {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Get().Error("panic encountered in future."+kind+" callback",
					"error", panicError(r, debug.Stack()))
			}
		}()

		callback(value)
	}()
}
