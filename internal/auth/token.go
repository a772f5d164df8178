// Package auth supplies access tokens to the HTTP layer.
//
// Canvas access tokens are user-generated and long-lived; there is no
// OAuth2 refresh flow here. The interface exists so cookie-session or
// future token sources can be swapped in without touching the transport.
package auth

import (
	"context"
)

// TokenManager provides the bearer token for outgoing requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenManager serves a fixed token.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}
