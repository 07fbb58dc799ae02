package lite

import (
	"context"

	"github.com/creachadair/taskgroup"
	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/core"
	"github.com/ib-77/result/pkg/result/solo"
	"go.uber.org/zap"
)

// Run drives a stage that keeps the payload types.
func Run[T, E any](ctx context.Context, inputCh <-chan result.Result[T, E],
	engine core.Engine[T, T, E], lines int) <-chan result.Result[T, E] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout runs lines locomotives over inputCh and closes the returned channel
// once all of them have stopped.
func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan result.Result[In, E],
	engine core.Engine[In, Out, E], lines int) <-chan result.Result[Out, E] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan result.Result[Out, E])
	logger := core.LoggerFrom(ctx)

	var g taskgroup.Group
	for range lines {
		g.Go(func() error {
			return core.Locomotive(ctx, inputCh, out, engine, nil)
		})
	}

	go func() {
		switch err := g.Wait(); {
		case err == nil:
		case result.IsCancellation(err):
			logger.Debug("turnout cancelled", zap.Error(err))
		default:
			logger.Warn("turnout stopped", zap.Error(err))
		}
		close(out)
	}()

	return out
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) core.Engine[T, T, error] {
	return func(ctx context.Context, input result.Result[T, error]) result.Result[T, error] {
		return solo.AndValidate(ctx, input, validate)
	}
}

func Switch[In, Out, E any](switchOnSuccess func(ctx context.Context, r In) result.Result[Out, E]) core.Engine[In, Out, E] {
	return func(ctx context.Context, input result.Result[In, E]) result.Result[Out, E] {
		return solo.Switch(ctx, input, switchOnSuccess)
	}
}

func Map[In, Out, E any](mapOnSuccess func(ctx context.Context, r In) Out) core.Engine[In, Out, E] {
	return func(ctx context.Context, input result.Result[In, E]) result.Result[Out, E] {
		return solo.Map(ctx, input, mapOnSuccess)
	}
}

func Tee[T, E any](sideEffect func(ctx context.Context, r result.Result[T, E])) core.Engine[T, T, E] {
	return func(ctx context.Context, input result.Result[T, E]) result.Result[T, E] {
		return solo.Tee(ctx, input, sideEffect)
	}
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) core.Engine[In, Out, error] {
	return func(ctx context.Context, input result.Result[In, error]) result.Result[Out, error] {
		return solo.Try(ctx, input, onTryExecute)
	}
}

type FinallyHandlers[In, Out, E any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err E) Out
}

// Finally folds every result from input into an Out. The returned channel
// closes when input closes or ctx is done.
func Finally[In, Out, E any](ctx context.Context, input <-chan result.Result[In, E],
	handlers FinallyHandlers[In, Out, E]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-input:
				if !ok {
					return
				}

				select {
				case out <- solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
