package retry

import (
	"context"

	"github.com/jzx17/goretry/pkg/types"
)

// DoAsync executes fn with retry in a new goroutine and delivers the
// outcome on the returned channel
func DoAsync[T any](e *Executor, ctx context.Context, fn Func[T]) <-chan types.Result[T] {
	return DoAsyncOn(e, ctx, nil, fn)
}

// DoAsyncOn is DoOn in a new goroutine, delivering the outcome on the
// returned channel
func DoAsyncOn[T any](e *Executor, ctx context.Context, receiver any, fn Func[T]) <-chan types.Result[T] {
	resultChan := make(chan types.Result[T], 1)

	go func() {
		defer close(resultChan)

		clock := e.clockFor(ctx)
		start := clock.Now()
		value, err := DoOn(e, ctx, receiver, fn)

		resultChan <- types.Result[T]{
			Value:   value,
			Err:     err,
			Elapsed: clock.Since(start),
		}
	}()

	return resultChan
}
