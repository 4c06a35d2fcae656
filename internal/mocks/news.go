package mocks

import (
	"context"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/auth"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/news"
)

// MockSearcher is a mock implementation of news.Searcher
type MockSearcher struct {
	DocsByQuery map[string][]news.Doc
	ErrByQuery  map[string]error
	Calls       []news.Facet
}

func NewMockSearcher() *MockSearcher {
	return &MockSearcher{
		DocsByQuery: make(map[string][]news.Doc),
		ErrByQuery:  make(map[string]error),
	}
}

func (m *MockSearcher) Search(ctx context.Context, apiKey string, facet news.Facet) ([]news.Doc, error) {
	m.Calls = append(m.Calls, facet)
	if err := m.ErrByQuery[facet.Query]; err != nil {
		return nil, err
	}
	return m.DocsByQuery[facet.Query], nil
}

// MockAuthenticator is a mock implementation of the api.Authenticator
// interface.
type MockAuthenticator struct {
	RedirectBase string
	Identity     *auth.Identity
	ExchangeErr  error
	LastNonce    string
}

func (m *MockAuthenticator) AuthCodeURL(state, nonce string) string {
	return m.RedirectBase + "?state=" + state + "&nonce=" + nonce
}

func (m *MockAuthenticator) Exchange(ctx context.Context, code, nonce string) (*auth.Identity, error) {
	m.LastNonce = nonce
	if m.ExchangeErr != nil {
		return nil, m.ExchangeErr
	}
	return m.Identity, nil
}
