package mocks

import (
	"context"

	"github.com/seanwalsh/declog/internal/domain/ports"
)

// TokenSource is a mock implementation of ports.TokenSource.
type TokenSource struct {
	TokenValue string
	Err        error

	TokenCallCount int
	listeners      []func(string)
}

// Token returns the configured token or error. An empty token with no error
// yields an AuthError, mimicking real sources.
func (m *TokenSource) Token(ctx context.Context) (string, error) {
	m.TokenCallCount++
	if m.Err != nil {
		return "", m.Err
	}
	if m.TokenValue == "" {
		return "", &ports.AuthError{Reason: "no credential available"}
	}
	return m.TokenValue, nil
}

// OnChange registers a listener.
func (m *TokenSource) OnChange(fn func(string)) {
	m.listeners = append(m.listeners, fn)
}

// Rotate simulates a credential change, notifying listeners.
func (m *TokenSource) Rotate(token string) {
	m.TokenValue = token
	for _, fn := range m.listeners {
		fn(token)
	}
}
