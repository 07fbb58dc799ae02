package core

import (
	"context"

	"github.com/ib-77/result/pkg/result"
	"go.uber.org/zap"
)

// Engine turns one input result into one output result.
type Engine[In, Out, E any] func(ctx context.Context, input result.Result[In, E]) result.Result[Out, E]

// Locomotive pulls results from inputCh, runs them through engine and pushes
// the outputs to outCh until inputCh closes or ctx is done. It never closes
// outCh; the caller owns it.
func Locomotive[In, Out, E any](ctx context.Context, inputCh <-chan result.Result[In, E],
	outCh chan<- result.Result[Out, E], engine Engine[In, Out, E],
	onProcessed func(ctx context.Context, out result.Result[Out, E])) error {

	logger := LoggerFrom(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-inputCh:
			if !ok {
				return nil
			}

			pr := engine(ctx, in)

			select {
			case <-ctx.Done():
				logger.Debug("dropping processed result", zap.Stringer("result", pr))
				return ctx.Err()
			case outCh <- pr:
				if onProcessed != nil {
					onProcessed(ctx, pr)
				}
			}
		}
	}
}
