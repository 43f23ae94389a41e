package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/goerr/v2"
)

// Await executes a handler function asynchronously and returns a
// channel that delivers its outcome exactly once.
//
// Parameters:
//   - ctx: Context passed through to the handler; cancellation is
//     observed by the handler itself
//   - handler: Function to execute asynchronously
//
// Behavior:
//   - Executes handler in a new goroutine
//   - Recovers from panics and converts them into errors
//   - Delivers the handler's error (or nil) on the returned channel
//
// The channel is buffered, so the result can be collected at any time
// without leaking the goroutine.
func Await(ctx context.Context, handler func(ctx context.Context) error) <-chan error {
	done := make(chan error, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				done <- goerr.New("panic in async handler",
					goerr.V("recover", r),
					goerr.V("stack", string(stack)),
				)
			}
		}()

		done <- handler(ctx)
	}()

	return done
}
