// Package auth provides the bearer-credential source for remote operations.
// The authentication handshake itself happens outside this process; this
// package only yields the resulting token and keeps it in process memory.
package auth

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/seanwalsh/declog/internal/domain/ports"
)

// Source implements ports.TokenSource. The token is resolved from an
// environment variable on first use and can be replaced at runtime through
// SetToken (e.g. after a re-login). It is never written to disk.
type Source struct {
	mu        sync.Mutex
	envVar    string
	token     string
	resolved  bool
	listeners []func(string)
}

// NewSource creates a token source reading the initial credential from the
// given environment variable.
func NewSource(envVar string) *Source {
	return &Source{envVar: envVar}
}

// NewStaticSource creates a token source holding a fixed credential.
func NewStaticSource(token string) *Source {
	return &Source{token: token, resolved: true}
}

// Token returns the current bearer token, or an AuthError when none is
// available.
func (s *Source) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.resolved {
		s.token = strings.TrimSpace(os.Getenv(s.envVar))
		s.resolved = true
	}
	if s.token == "" {
		reason := "no credential available"
		if s.envVar != "" {
			reason = "set " + s.envVar + " and retry"
		}
		return "", &ports.AuthError{Reason: reason}
	}
	return s.token, nil
}

// OnChange registers a callback invoked whenever the credential changes.
func (s *Source) OnChange(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// SetToken replaces the credential and notifies listeners. An empty token
// represents logout.
func (s *Source) SetToken(token string) {
	s.mu.Lock()
	s.token = strings.TrimSpace(token)
	s.resolved = true
	listeners := make([]func(string), len(s.listeners))
	copy(listeners, s.listeners)
	token = s.token
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(token)
	}
}
