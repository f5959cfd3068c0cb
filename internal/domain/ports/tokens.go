package ports

import "context"

// TokenSource yields the bearer credential for remote operations. The
// authentication handshake itself is outside this interface; implementations
// only hand out the current token and must never persist it beyond process
// memory.
type TokenSource interface {
	// Token returns the current bearer token, or an AuthError when no
	// credential is available.
	Token(ctx context.Context) (string, error)

	// OnChange registers a callback invoked whenever the credential changes
	// (refresh, re-login, logout). The callback receives the new token,
	// which may be empty on logout.
	OnChange(fn func(token string))
}
