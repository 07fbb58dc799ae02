package tiny

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/core"
	"github.com/ib-77/result/pkg/result/solo"
	"go.uber.org/zap"
)

type Chain[T, E any] struct {
	ctx       context.Context
	id        uuid.UUID
	createdAt time.Time
	logger    *zap.Logger
	res       result.Result[T, E]
}

func Start[T, E any](ctx context.Context, r result.Result[T, E]) Chain[T, E] {
	id := uuid.New()
	c := Chain[T, E]{
		ctx:       ctx,
		id:        id,
		createdAt: time.Now().UTC(),
		logger:    core.LoggerFrom(ctx).With(zap.Stringer("chain_id", id)),
		res:       r,
	}
	c.logger.Debug("chain started", zap.Stringer("result", r))
	return c
}

func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, result.Ok[T, E](v))
}

func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

func (c Chain[T, E]) ID() uuid.UUID {
	return c.id
}

// CreatedAt is the UTC time Start was called.
func (c Chain[T, E]) CreatedAt() time.Time {
	return c.createdAt
}

func (c Chain[T, E]) with(step string, r result.Result[T, E]) Chain[T, E] {
	c.logger.Debug("chain step", zap.String("step", step), zap.Stringer("result", r))
	c.res = r
	return c
}

// Then composes functions that already return a Result.
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, t T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return c.with("then", solo.Switch(c.ctx, c.res, onSuccess))
}

// Map transforms the successful value.
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return c.with("map", solo.Map(c.ctx, c.res, onSuccess))
}

// MapErr transforms the failure value.
func (c Chain[T, E]) MapErr(onFailure func(ctx context.Context, e E) E) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	return c.with("map_err", result.MapErr(c.res, func(e E) E { return onFailure(c.ctx, e) }))
}

// RepeatUntil runs onSuccess at least once, then again for as long as until
// holds and the chain stays Ok.
func (c Chain[T, E]) RepeatUntil(onSuccess func(ctx context.Context, t T) result.Result[T, E],
	until func(ctx context.Context, t T) bool) Chain[T, E] {

	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		v, ok := c.res.Ok()
		if !ok || !until(c.ctx, v) {
			return c
		}
	}
}

// While runs onSuccess for as long as while holds and the chain stays Ok.
func (c Chain[T, E]) While(onSuccess func(ctx context.Context, t T) result.Result[T, E],
	while func(ctx context.Context, t T) bool) Chain[T, E] {

	for {
		v, ok := c.res.Ok()
		if !ok || !while(c.ctx, v) {
			return c
		}
		c = c.Then(onSuccess)
	}
}

// Or returns the first Ok among c and alternatives. If none is Ok, the first
// failure wins.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsOk() {
			return c.with("or", result.Or(c.res, alt.res))
		}
	}
	return c
}

// And returns the first failure among c and required, or the last chain's
// result when all are Ok.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	res := c.res
	for _, req := range required {
		res = result.And(res, req.res)
		if res.IsErr() {
			break
		}
	}
	return c.with("and", res)
}

// Ensure triggers side effects for success or failure without changing the
// result. Nil callbacks are skipped.
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, E)) Chain[T, E] {
	if v, ok := c.res.Ok(); ok {
		if onSuccess != nil {
			onSuccess(c.ctx, v)
		}
		return c
	}
	if onFailure != nil {
		onFailure(c.ctx, c.res.ErrUnchecked())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally.
func (c Chain[T, E]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, E) T,
) T {
	c.logger.Debug("chain finished", zap.Stringer("result", c.res),
		zap.Duration("elapsed", time.Since(c.createdAt)))
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}

// ThenTry composes functions that return (T, error), like repository calls.
func ThenTry[T any](c Chain[T, error], try func(ctx context.Context, t T) (T, error)) Chain[T, error] {
	if c.res.IsErr() {
		return c
	}
	return c.with("then_try", solo.Try(c.ctx, c.res, try))
}
