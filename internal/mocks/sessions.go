package mocks

import (
	"context"
	"fmt"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/auth"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/session"
)

// MockSessionStore is an in-memory implementation of session.Store
type MockSessionStore struct {
	Sessions map[string]*auth.Identity
	Logins   map[string]string
	nextID   int
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		Sessions: make(map[string]*auth.Identity),
		Logins:   make(map[string]string),
	}
}

func (m *MockSessionStore) Create(ctx context.Context, ident *auth.Identity) (string, error) {
	m.nextID++
	token := fmt.Sprintf("token-%d", m.nextID)
	m.Sessions[token] = ident
	return token, nil
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (*auth.Identity, error) {
	ident, ok := m.Sessions[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	return ident, nil
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	delete(m.Sessions, token)
	return nil
}

func (m *MockSessionStore) SaveLogin(ctx context.Context, state, nonce string) error {
	m.Logins[state] = nonce
	return nil
}

func (m *MockSessionStore) TakeLogin(ctx context.Context, state string) (string, error) {
	nonce, ok := m.Logins[state]
	if !ok {
		return "", session.ErrNotFound
	}
	delete(m.Logins, state)
	return nonce, nil
}

// Add registers a session under a fixed token for test setup.
func (m *MockSessionStore) Add(token string, ident *auth.Identity) {
	m.Sessions[token] = ident
}
