package shared

import "context"

type sessionContextKey struct{}

// ContextWithSession stores the session in context.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// SessionFromContext extracts the session from context, nil when absent.
func SessionFromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionContextKey{}).(*Session)
	return sess
}

// AddFlash queues a flash message on the session carried by ctx. It reports
// false when ctx holds no session.
func AddFlash(ctx context.Context, kind, message string) bool {
	sess := SessionFromContext(ctx)
	if sess == nil {
		return false
	}
	sess.AddFlash(FlashMessage{Kind: kind, Message: message})
	return true
}
