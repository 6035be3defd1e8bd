package swikly

import "context"

// Result carries the outcome of a call started with Async.
type Result[T any] struct {
	Value T
	Err   error
}

// Async runs fn in its own goroutine and delivers its result on the returned
// channel, which receives exactly one value. Retries and Retry-After waits
// happen inside that goroutine, and cancelling ctx stops them:
//
//	pending := swikly.Async(ctx, func(ctx context.Context) (*swikly.Request, error) {
//	    return client.Requests.Get(ctx, accountID, requestID, nil)
//	})
//	// ... other work ...
//	res := <-pending
func Async[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		v, err := fn(ctx)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}

// Await waits for a result from Async or for ctx to be done, whichever
// comes first.
func Await[T any](ctx context.Context, ch <-chan Result[T]) (T, error) {
	select {
	case res := <-ch:
		return res.Value, res.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
