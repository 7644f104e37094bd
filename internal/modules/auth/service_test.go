package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"photosite/internal/domain"
	"photosite/internal/pkg/jwt"
)

// asyncVerifier never reports an initial snapshot on its own, so the guard
// stays in the loading window until the test drives it.
type asyncVerifier struct {
	subs []func(*domain.Identity)
}

func (v *asyncVerifier) SignIn(ctx context.Context, username, secret string) (*domain.Identity, error) {
	return nil, ErrInvalidCredentials
}

func (v *asyncVerifier) SignOut() {
	for _, fn := range v.subs {
		fn(nil)
	}
}

func (v *asyncVerifier) Subscribe(fn func(*domain.Identity)) {
	v.subs = append(v.subs, fn)
}

func (v *asyncVerifier) emit(id *domain.Identity) {
	for _, fn := range v.subs {
		fn(id)
	}
}

func newTokens() *jwt.Service {
	return jwt.New("test-secret", time.Hour)
}

func TestService_StartsLoadingUntilFirstSnapshot(t *testing.T) {
	v := &asyncVerifier{}
	svc := NewService(v, newTokens(), zap.NewNop())

	assert.Equal(t, domain.SessionLoading, svc.Session().State)

	v.emit(nil)
	assert.Equal(t, domain.SessionAnonymous, svc.Session().State)
}

func TestService_TransitionsToAuthenticatedAndBack(t *testing.T) {
	v := &asyncVerifier{}
	svc := NewService(v, newTokens(), zap.NewNop())

	v.emit(&domain.Identity{UID: "admin", Email: "admin@studio.kz"})

	sess := svc.Session()
	assert.Equal(t, domain.SessionAuthenticated, sess.State)
	assert.Equal(t, "admin", sess.Identity.UID)
	assert.False(t, sess.LoginAt.IsZero())

	v.emit(nil)
	sess = svc.Session()
	assert.Equal(t, domain.SessionAnonymous, sess.State)
	assert.Nil(t, sess.Identity)
	assert.True(t, sess.LoginAt.IsZero())
}

func TestService_AuthenticateRefusesDuringLoading(t *testing.T) {
	v := &asyncVerifier{}
	svc := NewService(v, newTokens(), zap.NewNop())

	_, err := svc.Authenticate("whatever")
	assert.ErrorIs(t, err, ErrSessionVerifying)
}

func TestService_LoginIssuesValidatableToken(t *testing.T) {
	v := NewLocalVerifier("admin@studio.kz", "s3cret")
	svc := NewService(v, newTokens(), zap.NewNop())

	res, err := svc.Login(context.Background(), LoginRequest{Username: "admin@studio.kz", Password: "s3cret"})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	id, err := svc.Authenticate(res.Token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", id.UID)
	assert.Equal(t, "admin@studio.kz", id.Email)
}

func TestService_LoginRejectsBadCredentials(t *testing.T) {
	v := NewLocalVerifier("admin@studio.kz", "s3cret")
	svc := NewService(v, newTokens(), zap.NewNop())

	_, err := svc.Login(context.Background(), LoginRequest{Username: "admin@studio.kz", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginRequest{Username: "intruder", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_LogoutFlipsSnapshotTokensStayValid(t *testing.T) {
	v := NewLocalVerifier("admin@studio.kz", "s3cret")
	svc := NewService(v, newTokens(), zap.NewNop())

	res, err := svc.Login(context.Background(), LoginRequest{Username: "admin@studio.kz", Password: "s3cret"})
	assert.NoError(t, err)
	assert.Equal(t, domain.SessionAuthenticated, svc.Session().State)

	svc.Logout()
	assert.Equal(t, domain.SessionAnonymous, svc.Session().State)

	// Token validation is stateless; the issued token expires on its own.
	_, err = svc.Authenticate(res.Token)
	assert.NoError(t, err)
}

func TestService_AuthenticateRejectsGarbageToken(t *testing.T) {
	v := NewLocalVerifier("admin@studio.kz", "s3cret")
	svc := NewService(v, newTokens(), zap.NewNop())

	_, err := svc.Authenticate("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLocalVerifier_BcryptHashAccepted(t *testing.T) {
	// bcrypt hash of "secret"
	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	v := NewLocalVerifier("admin@studio.kz", hash)

	_, err := v.SignIn(context.Background(), "admin@studio.kz", "secret")
	assert.NoError(t, err)

	_, err = v.SignIn(context.Background(), "admin@studio.kz", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
