package auth

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"photosite/internal/domain"
	"photosite/internal/pkg/jwt"
)

// Service is the session guard. It subscribes to the credential verifier
// and keeps a tri-state snapshot: loading until the verifier reports its
// initial state, then authenticated or anonymous. Protected routes consult
// the snapshot through Session and Authenticate.
type Service struct {
	verifier Verifier
	tokens   *jwt.Service
	log      *zap.Logger

	mu      sync.RWMutex
	state   domain.SessionState
	ident   *domain.Identity
	loginAt time.Time
}

func NewService(verifier Verifier, tokens *jwt.Service, log *zap.Logger) *Service {
	s := &Service{
		verifier: verifier,
		tokens:   tokens,
		log:      log,
		state:    domain.SessionLoading,
	}
	verifier.Subscribe(s.onIdentity)
	return s
}

func (s *Service) onIdentity(id *domain.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ident = id
	if id != nil {
		s.state = domain.SessionAuthenticated
		if s.loginAt.IsZero() {
			s.loginAt = time.Now().UTC()
		}
	} else {
		s.state = domain.SessionAnonymous
		s.loginAt = time.Time{}
	}
}

// Session returns the guard's current snapshot.
func (s *Service) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Session{
		State:    s.state,
		Identity: s.ident,
		LoginAt:  s.loginAt,
	}
}

// Login verifies the credential pair and issues a session token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	id, err := s.verifier.SignIn(ctx, req.Username, req.Password)
	if err != nil {
		s.log.Warn("login rejected", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(id.UID, id.Email)
	if err != nil {
		return nil, err
	}

	s.log.Info("admin logged in", zap.String("uid", id.UID))
	return &LoginResponse{Token: token, UID: id.UID, Email: id.Email}, nil
}

// Logout clears the verifier session. Outstanding tokens stay valid until
// they expire; the guard snapshot flips to anonymous immediately.
func (s *Service) Logout() {
	s.verifier.SignOut()
	s.log.Info("admin logged out")
}

// Authenticate resolves a bearer token against the guard. During the
// loading window it refuses with ErrSessionVerifying rather than treating
// the caller as anonymous.
func (s *Service) Authenticate(token string) (*domain.Identity, error) {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()

	if state == domain.SessionLoading {
		return nil, ErrSessionVerifying
	}

	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &domain.Identity{UID: claims.UID, Email: claims.Email}, nil
}
