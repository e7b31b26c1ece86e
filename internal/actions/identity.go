package actions

import "context"

type actingUserKey struct{}

// WithActingUser returns a context carrying the resolved session user ID.
// The session layer at the HTTP boundary is the only writer.
func WithActingUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actingUserKey{}, userID)
}

// ActingUser resolves the acting user from the context, failing closed with
// ErrUnauthenticated when no session identity is present. Actions trust only
// this value, never an identity supplied in the input payload.
func ActingUser(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(actingUserKey{}).(string)
	if !ok || userID == "" {
		return "", ErrUnauthenticated
	}
	return userID, nil
}
