package middleware

import (
	"context"
	"net/http"

	"github.com/mindbridge/campus-care/backend/internal/model/navigation"
)

// ViewerHeader carries the role the frontend is rendering for.
const ViewerHeader = "X-Viewer-Role"

type viewerKey struct{}

// Viewer resolves the viewer role of each request into its context.
func Viewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := navigation.ParseRole(r.Header.Get(ViewerHeader))
		next.ServeHTTP(w, r.WithContext(WithViewer(r.Context(), role)))
	})
}

// WithViewer returns a copy of ctx carrying role.
func WithViewer(ctx context.Context, role navigation.Role) context.Context {
	return context.WithValue(ctx, viewerKey{}, role)
}

// ViewerFrom returns the viewer role stored in ctx, defaulting to student.
func ViewerFrom(ctx context.Context) navigation.Role {
	if role, ok := ctx.Value(viewerKey{}).(navigation.Role); ok {
		return role
	}
	return navigation.RoleStudent
}
