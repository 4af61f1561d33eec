package api

import (
	"context"

	"salonbooking/internal/admin"
)

type ctxKey string

const ctxKeyAdmin ctxKey = "admin"

func WithAdmin(ctx context.Context, a *admin.Admin) context.Context {
	return context.WithValue(ctx, ctxKeyAdmin, a)
}

func AdminFromContext(ctx context.Context) *admin.Admin {
	v := ctx.Value(ctxKeyAdmin)
	if v == nil {
		return nil
	}
	a, _ := v.(*admin.Admin)
	return a
}
