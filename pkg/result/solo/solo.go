package solo

import (
	"context"
	"errors"

	"github.com/ib-77/result/pkg/result"
)

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) result.Result[T, error] {
	return AndValidate(ctx, result.Ok[T, error](input), validate)
}

func AndValidate[T any](ctx context.Context, input result.Result[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) result.Result[T, error] {

	v, ok := input.Ok()
	if !ok {
		return input
	}
	if isValid, errMsg := validate(ctx, v); !isValid {
		return result.Err[T](errors.New(errMsg))
	}
	return input
}

// ValidateAll runs every validator against input and joins the failures.
// With breakOnError it stops at the first one.
func ValidateAll[T any](
	ctx context.Context,
	input result.Result[T, error],
	breakOnError bool,
	inputsF ...func(ctx context.Context, in result.Result[T, error]) result.Result[T, error]) result.Result[T, error] {

	if input.IsErr() {
		return input
	}

	var errs []error
	for _, validate := range inputsF {
		if ctx.Err() != nil {
			break
		}
		if e, failed := validate(ctx, input).Err(); failed {
			errs = append(errs, result.Errors(e)...)
			if breakOnError {
				break
			}
		}
	}

	if len(errs) == 0 {
		return input
	}
	return result.Err[T](errors.Join(errs...))
}

func Switch[In, Out, E any](ctx context.Context,
	input result.Result[In, E],
	onSuccess func(ctx context.Context, r In) result.Result[Out, E]) result.Result[Out, E] {

	return result.AndThen(input, func(v In) result.Result[Out, E] {
		return onSuccess(ctx, v)
	})
}

func Map[In, Out, E any](ctx context.Context,
	input result.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) result.Result[Out, E] {

	return result.Map(input, func(v In) Out {
		return onSuccess(ctx, v)
	})
}

// DoubleMap maps whichever side is present.
func DoubleMap[In, Out, E, E2 any](ctx context.Context, input result.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) E2) result.Result[Out, E2] {

	if v, ok := input.Ok(); ok {
		return result.Ok[Out, E2](onSuccess(ctx, v))
	}
	return result.Err[Out](onError(ctx, input.ErrUnchecked()))
}

func Tee[T, E any](ctx context.Context,
	input result.Result[T, E],
	onSuccess func(ctx context.Context, r result.Result[T, E])) result.Result[T, E] {

	if input.IsOk() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T, E any](ctx context.Context,
	input result.Result[T, E],
	condition func(ctx context.Context, r result.Result[T, E]) bool,
	onSuccessAndCondition func(ctx context.Context, r result.Result[T, E])) result.Result[T, E] {

	if input.IsOk() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}

	return input
}

func DoubleTee[T, E any](ctx context.Context, input result.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err E)) result.Result[T, E] {

	if v, ok := input.Ok(); ok {
		onSuccess(ctx, v)
	} else {
		onError(ctx, input.ErrUnchecked())
	}

	return input
}

func Try[In, Out any](ctx context.Context, input result.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) result.Result[Out, error] {

	return result.AndThen(input, func(v In) result.Result[Out, error] {
		out, err := onTryExecute(ctx, v)
		return result.Of(out, err)
	})
}

func FailOnError[T any](ctx context.Context, input result.Result[T, error],
	maybeErr func(ctx context.Context, in T) error) result.Result[T, error] {

	if v, ok := input.Ok(); ok {
		if err := maybeErr(ctx, v); err != nil {
			return result.Err[T](err)
		}
	}
	return input
}

func Finally[In, Out, E any](ctx context.Context, input result.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) Out) Out {

	return result.Match(input,
		func(v In) Out { return onSuccess(ctx, v) },
		func(e E) Out { return onError(ctx, e) })
}

// Join feeds input through each of inputsF in turn, passing every
// intermediate result through concat. A done context stops the fold.
func Join[T, E any](ctx context.Context,
	input result.Result[T, E],
	breakOnError bool,
	concat func(ctx context.Context, current result.Result[T, E]) result.Result[T, E],
	inputsF ...func(ctx context.Context, in result.Result[T, E]) result.Result[T, E]) result.Result[T, E] {

	if len(inputsF) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if ctx.Err() != nil {
		return finalResult
	}

	if finalResult.IsOk() || !breakOnError {
		for _, in := range inputsF[1:] {
			if ctx.Err() != nil {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsErr() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
