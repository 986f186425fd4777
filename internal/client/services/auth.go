// Package services contains application services for the peer review client.
// This file defines the authentication service: registration, login and
// liveness probe against the backend.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/peerreview/internal/client/client"
	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/dmitrijs2005/peerreview/internal/cryptox"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a new account on the server.
//   - Login: authenticate against the server.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, wallet, education string, password []byte) error
	Login(ctx context.Context, wallet string, password []byte) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client.
type authService struct {
	client client.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client client.Client) AuthService {
	return &authService{client: client}
}

// Register creates a new account on the server. It generates a random salt,
// derives a key from the provided password, computes a verifier, and sends
// salt/verifier to the server. The password itself never leaves the client.
func (a *authService) Register(ctx context.Context, wallet, education string, password []byte) error {
	salt := common.GenerateRandByteArray(32)
	key := cryptox.DeriveMasterKey(password, salt)
	verifier := cryptox.MakeVerifier(key)

	if err := a.client.Register(ctx, wallet, education, salt, verifier); err != nil {
		return err
	}
	return nil
}

// Login fetches the account salt from the server, re-derives the verifier
// from (password, salt) and authenticates with it. On success the underlying
// client holds the issued token pair.
func (a *authService) Login(ctx context.Context, wallet string, password []byte) error {
	salt, err := a.client.GetSalt(ctx, wallet)
	if err != nil {
		return fmt.Errorf("get salt error: %w", err)
	}

	key := cryptox.DeriveMasterKey(password, salt)
	verifierCandidate := cryptox.MakeVerifier(key)

	if err := a.client.Login(ctx, wallet, verifierCandidate); err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	return nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
