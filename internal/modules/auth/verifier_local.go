package auth

import (
	"context"
	"crypto/subtle"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"photosite/internal/domain"
)

// LocalVerifier checks credentials against the fixed admin pair from
// configuration. The stored password may be either plain text or a bcrypt
// hash; hashes are detected by prefix. Its initial snapshot is always
// signed-out and is delivered synchronously on Subscribe, so the guard's
// loading window is effectively zero in local mode.
type LocalVerifier struct {
	username string
	password string

	mu      sync.Mutex
	current *domain.Identity
	subs    []func(*domain.Identity)
}

func NewLocalVerifier(username, password string) *LocalVerifier {
	return &LocalVerifier{username: username, password: password}
}

func (v *LocalVerifier) SignIn(ctx context.Context, username, secret string) (*domain.Identity, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) != 1 {
		return nil, ErrInvalidCredentials
	}
	if !v.passwordMatches(secret) {
		return nil, ErrInvalidCredentials
	}

	id := &domain.Identity{UID: "admin", Email: v.username}

	v.mu.Lock()
	v.current = id
	subs := append([]func(*domain.Identity){}, v.subs...)
	v.mu.Unlock()

	for _, fn := range subs {
		fn(id)
	}
	return id, nil
}

func (v *LocalVerifier) SignOut() {
	v.mu.Lock()
	v.current = nil
	subs := append([]func(*domain.Identity){}, v.subs...)
	v.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
}

func (v *LocalVerifier) Subscribe(fn func(*domain.Identity)) {
	v.mu.Lock()
	v.subs = append(v.subs, fn)
	current := v.current
	v.mu.Unlock()

	fn(current)
}

func (v *LocalVerifier) passwordMatches(secret string) bool {
	if strings.HasPrefix(v.password, "$2a$") || strings.HasPrefix(v.password, "$2b$") || strings.HasPrefix(v.password, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(v.password), []byte(secret)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(v.password)) == 1
}
