// Package auth supplies the value of the Authorization header.
package auth

import (
	"context"
)

// TokenProvider returns the Authorization header value for a request.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider that always returns the same value.
// The value is sent verbatim, empty included. No scheme prefix is added and
// it is never refreshed.
type StaticToken struct {
	token string
}

// NewStaticToken creates a provider for a fixed token.
func NewStaticToken(token string) *StaticToken {
	return &StaticToken{token: token}
}

// GetToken implements TokenProvider.
func (s *StaticToken) GetToken(ctx context.Context) (string, error) {
	return s.token, nil
}

// TokenProviderFunc adapts a function to TokenProvider.
type TokenProviderFunc func(ctx context.Context) (string, error)

// GetToken implements TokenProvider.
func (f TokenProviderFunc) GetToken(ctx context.Context) (string, error) {
	return f(ctx)
}
