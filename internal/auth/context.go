package auth

import (
	"context"
	"errors"
)

type ctxKey int

const principalCtxKey ctxKey = iota + 1

var ErrNoPrincipal = errors.New("no principal in context")

// ContextWithPrincipal returns a new context carrying the authenticated principal.
//
//nolint:ireturn // returning context.Context is intentional: it's the standard context type
func ContextWithPrincipal(baseCtx context.Context, p *Principal) context.Context {
	return context.WithValue(baseCtx, principalCtxKey, p)
}

func PrincipalFromContext(ctx context.Context) (*Principal, error) {
	p, ok := ctx.Value(principalCtxKey).(*Principal)
	if !ok || p == nil {
		return nil, ErrNoPrincipal
	}
	return p, nil
}
