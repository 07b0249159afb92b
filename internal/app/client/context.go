package client

import (
	"context"
)

type ctxKey struct{}

// NewContext returns a context carrying the app for the command tree.
func NewContext(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, app)
}

// FromContext returns the app stored by NewContext, or nil.
func FromContext(ctx context.Context) *App {
	app, _ := ctx.Value(ctxKey{}).(*App)
	return app
}
