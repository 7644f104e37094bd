package auth

import (
	"context"
	"fmt"
	"sync"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"photosite/internal/domain"
)

// FirebaseVerifier delegates credential checks to the Firebase identity
// service: SignIn treats the secret as a Firebase ID token and verifies
// it, ignoring the username. Unlike the local verifier its initial
// snapshot arrives asynchronously, so subscribers observe a real loading
// window before the first callback.
type FirebaseVerifier struct {
	client *fbauth.Client

	mu      sync.Mutex
	ready   bool
	current *domain.Identity
	subs    []func(*domain.Identity)
}

func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}

	v := &FirebaseVerifier{client: client}

	// Initial snapshot is delivered off the construction path, mirroring
	// the async session restore the identity SDK performs on startup.
	go v.emitInitial()
	return v, nil
}

func (v *FirebaseVerifier) SignIn(ctx context.Context, _ string, secret string) (*domain.Identity, error) {
	tok, err := v.client.VerifyIDToken(ctx, secret)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	email, _ := tok.Claims["email"].(string)
	id := &domain.Identity{UID: tok.UID, Email: email}

	v.mu.Lock()
	v.current = id
	subs := append([]func(*domain.Identity){}, v.subs...)
	v.mu.Unlock()

	for _, fn := range subs {
		fn(id)
	}
	return id, nil
}

func (v *FirebaseVerifier) SignOut() {
	v.mu.Lock()
	v.current = nil
	subs := append([]func(*domain.Identity){}, v.subs...)
	v.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
}

func (v *FirebaseVerifier) Subscribe(fn func(*domain.Identity)) {
	v.mu.Lock()
	v.subs = append(v.subs, fn)
	ready, current := v.ready, v.current
	v.mu.Unlock()

	// Late subscribers still get a snapshot once the initial emit ran.
	if ready {
		fn(current)
	}
}

func (v *FirebaseVerifier) emitInitial() {
	v.mu.Lock()
	v.ready = true
	current := v.current
	subs := append([]func(*domain.Identity){}, v.subs...)
	v.mu.Unlock()

	for _, fn := range subs {
		fn(current)
	}
}
