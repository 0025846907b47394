package fbconnect

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// await bridges one callback-style external entry point into a blocking call.
//
// invoke must start the external call, handing it deliver as the single-shot
// callback. A synchronous panic raised while starting the call is captured and
// returned as a SetupError, the same failure channel as callback-delivered
// errors. The external SDK is trusted to invoke the callback exactly once; a
// duplicate delivery is dropped rather than blocking its caller.
//
// The external SDK offers no cancellation, so ctx only abandons the wait: the
// external call, once started, runs to completion on its own.
func (a *Adapter) await(ctx context.Context, op string, invoke func(deliver func(raw any))) (any, error) {
	callID := uuid.NewString()
	results := make(chan any, 1)
	deliver := func(raw any) {
		select {
		case results <- raw:
			a.opts.logger.Debug("external callback delivered", "op", op, "call_id", callID)
		default:
		}
	}

	a.opts.logger.Debug("starting external call", "op", op, "call_id", callID)
	if err := guard(op, func() { invoke(deliver) }); err != nil {
		a.opts.logger.Debug("external call setup failed", "op", op, "call_id", callID, "error", err)
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	case raw := <-results:
		return raw, nil
	}
}

// guard runs fn, converting a panic into a SetupError that carries the
// raiser's own message unmodified.
func guard(op string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &SetupError{Op: op, Cause: r}
		}
	}()
	fn()
	return nil
}
