package entity

import (
	"context"
)

type CtxKey int

const (
	CtxKeyCaller CtxKey = iota
)

func CtxWithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, CtxKeyCaller, caller)
}

// CallerFromCtx returns the caller from context or ErrUnauthenticated if absent.
func CallerFromCtx(ctx context.Context) (Caller, error) {
	caller, ok := ctx.Value(CtxKeyCaller).(Caller)
	if !ok {
		return caller, ErrUnauthenticated
	}

	return caller, nil
}
