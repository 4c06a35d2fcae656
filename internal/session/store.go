package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/auth"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a token maps to no live session or login
// record.
var ErrNotFound = errors.New("session not found")

const (
	sessionTTL = 24 * time.Hour
	loginTTL   = 10 * time.Minute

	sessionPrefix = "session:"
	loginPrefix   = "login:"
)

// Store keeps server-side sessions plus the short-lived state/nonce records
// that bind an OIDC exchange to the browser that started it.
type Store interface {
	Create(ctx context.Context, ident *auth.Identity) (string, error)
	Get(ctx context.Context, token string) (*auth.Identity, error)
	Delete(ctx context.Context, token string) error
	SaveLogin(ctx context.Context, state, nonce string) error
	TakeLogin(ctx context.Context, state string) (string, error)
}

// RedisStore implements Store on a Redis client. Sessions are JSON
// identities under opaque random tokens; TTLs bound both kinds of record.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// NewToken returns a 256-bit random hex token.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Create stores the identity under a fresh token and returns the token.
func (s *RedisStore) Create(ctx context.Context, ident *auth.Identity) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}
	payload, err := json.Marshal(ident)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionPrefix+token, payload, sessionTTL).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Get resolves a token to its identity.
func (s *RedisStore) Get(ctx context.Context, token string) (*auth.Identity, error) {
	raw, err := s.rdb.Get(ctx, sessionPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var ident auth.Identity
	if err := json.Unmarshal(raw, &ident); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &ident, nil
}

// Delete destroys the session. Deleting an unknown token is not an error.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionPrefix+token).Err()
}

// SaveLogin records the nonce for a pending OIDC exchange keyed by state.
func (s *RedisStore) SaveLogin(ctx context.Context, state, nonce string) error {
	if err := s.rdb.Set(ctx, loginPrefix+state, nonce, loginTTL).Err(); err != nil {
		return fmt.Errorf("store login state: %w", err)
	}
	return nil
}

// TakeLogin consumes the pending login record for state and returns its
// nonce. Each state is single-use.
func (s *RedisStore) TakeLogin(ctx context.Context, state string) (string, error) {
	nonce, err := s.rdb.GetDel(ctx, loginPrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load login state: %w", err)
	}
	return nonce, nil
}
