package auth

import (
	"context"

	"photosite/internal/domain"
)

// Verifier abstracts the credential backend behind the session guard.
// SignIn checks a credential pair and returns the admin identity on
// success. Subscribe registers a callback that receives the current
// identity snapshot (nil when signed out); the first callback marks the
// end of the guard's loading window. Implementations must deliver the
// initial snapshot exactly once per subscription.
type Verifier interface {
	SignIn(ctx context.Context, username, secret string) (*domain.Identity, error)
	SignOut()
	Subscribe(fn func(*domain.Identity))
}
