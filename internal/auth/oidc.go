package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Identity is the subset of ID-token claims this service keeps for a
// session.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Authenticator drives the OIDC authorization-code flow against the
// configured identity provider.
type Authenticator struct {
	config   oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// NewAuthenticator discovers the provider's endpoints from the issuer URL.
func NewAuthenticator(ctx context.Context, issuer, clientID, clientSecret, redirectURL string) (*Authenticator, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}
	return &Authenticator{
		config: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

// AuthCodeURL returns the provider redirect carrying state and nonce.
func (a *Authenticator) AuthCodeURL(state, nonce string) string {
	return a.config.AuthCodeURL(state, oidc.Nonce(nonce))
}

// Exchange trades the callback code for a token set and verifies the
// embedded ID token against the nonce saved at login time.
func (a *Authenticator) Exchange(ctx context.Context, code, nonce string) (*Identity, error) {
	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange: %w", err)
	}
	raw, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, errors.New("token response has no id_token")
	}
	idToken, err := a.verifier.Verify(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("verify id_token: %w", err)
	}
	if idToken.Nonce != nonce {
		return nil, errors.New("id_token nonce mismatch")
	}
	var ident Identity
	if err := idToken.Claims(&ident); err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}
	if ident.Email == "" {
		return nil, errors.New("id_token carries no email claim")
	}
	return &ident, nil
}
