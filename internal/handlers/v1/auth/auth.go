package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mehmetgencv/expense-tracker/internal/service"
)

// Directory resolves bearer tokens to users.
type Directory interface {
	Resolve(ctx context.Context, token string) (*service.User, error)
}

type callerKey struct{}

// NewMiddleware returns a huma middleware that resolves the caller from
// the Authorization header once per request and stores it in the
// request context. Requests without a resolvable identity are rejected
// with 401; no default identity is ever substituted.
func NewMiddleware(api huma.API, directory Directory) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := strings.TrimPrefix(ctx.Header("Authorization"), "Bearer ")
		caller, err := directory.Resolve(ctx.Context(), token)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or missing credentials")
			return
		}
		next(huma.WithValue(ctx, callerKey{}, caller))
	}
}

// CallerFromContext returns the caller stored by the middleware.
func CallerFromContext(ctx context.Context) (*service.User, bool) {
	caller, ok := ctx.Value(callerKey{}).(*service.User)
	return caller, ok
}
