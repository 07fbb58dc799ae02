package core

import (
	"context"

	"github.com/ib-77/result/pkg/result"
)

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs(ctx, value)
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs(ctx, values...)
}

// ToChanManyResults emits every value as an Ok result.
func ToChanManyResults[T, E any](ctx context.Context, values []T) <-chan result.Result[T, E] {
	in := make(chan result.Result[T, E])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- result.Ok[T, E](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChanFirstOrDefault returns the first value received, or defaultV if the
// channel closes or ctx is done first.
func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

// FromChanMany drains out until it closes or ctx is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
