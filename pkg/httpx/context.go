package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyUserRole ctxKey = "user_role"
)

// UserIDFromCtx returns the caller's id, or "" when the request carried no
// identity.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// UserRoleFromCtx returns the caller's role, or "" when the request carried
// no identity.
func UserRoleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserRole).(string); ok {
		return v
	}
	return ""
}
