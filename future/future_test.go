package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

func TestNew_Success(t *testing.T) {
	t.Parallel()

	fut, promise := New[int]()

	go func() {
		promise.Success(42)
	}()

	result, err := fut.Await()

	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestNew_Error(t *testing.T) {
	t.Parallel()

	fut, promise := New[int]()

	go func() {
		promise.Failure(errTest)
	}()

	result, err := fut.Await()

	require.Error(t, err)
	assert.Equal(t, errTest, err)
	assert.Equal(t, 0, result)
}

func TestPromise_Complete(t *testing.T) {
	t.Parallel()

	fut, promise := New[string]()

	go func() {
		promise.Complete("done", nil)
	}()

	result, err := fut.Await()

	require.NoError(t, err)
	assert.Equal(t, "done", result)
}

func TestPromise_FulfillOnlyOnce(t *testing.T) {
	t.Parallel()

	fut, promise := New[int]()

	promise.Success(1)
	promise.Success(2)
	promise.Failure(errTest)

	result, err := fut.Await()

	require.NoError(t, err)
	assert.Equal(t, 1, result)
	assert.True(t, fut.IsCompleted())
}

func TestGo_ReturnsResult(t *testing.T) {
	t.Parallel()

	fut := Go(func() (int, error) {
		return 7, nil
	})

	result, err := fut.Await()

	require.NoError(t, err)
	assert.Equal(t, 7, result)
}

func TestGo_RecoversPanic(t *testing.T) {
	t.Parallel()

	fut := Go(func() (int, error) {
		panic("boom")
	})

	_, err := fut.Await()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestGoContext_HonorsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fut := GoContext(ctx, func(ctx context.Context) (int, error) {
		<-ctx.Done()

		return 0, ctx.Err()
	})

	_, err := fut.Await()

	require.ErrorIs(t, err, context.Canceled)
}

func TestAwaitContext_Expiry(t *testing.T) {
	t.Parallel()

	fut, _ := New[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := fut.AwaitContext(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOnSuccess_BeforeAndAfterFulfillment(t *testing.T) {
	t.Parallel()

	fut, promise := New[int]()

	before := make(chan int, 1)
	fut.OnSuccess(func(v int) { before <- v })

	promise.Success(5)

	after := make(chan int, 1)
	fut.OnSuccess(func(v int) { after <- v })

	assert.Equal(t, 5, <-before)
	assert.Equal(t, 5, <-after)
}

func TestOnError_FiresOnFailure(t *testing.T) {
	t.Parallel()

	fut, promise := New[int]()

	got := make(chan error, 1)
	fut.OnError(func(err error) { got <- err })

	promise.Failure(errTest)

	assert.Equal(t, errTest, <-got)
}

func TestOnError_NotFiredOnSuccess(t *testing.T) {
	t.Parallel()

	fut, promise := New[int]()

	fired := make(chan struct{}, 1)
	fut.OnError(func(error) { fired <- struct{}{} })

	promise.Success(1)

	_, _ = fut.Await()

	select {
	case <-fired:
		t.Fatal("OnError fired for a successful future")
	case <-time.After(50 * time.Millisecond):
	}
}
