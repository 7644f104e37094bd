package domain

import "time"

type SessionState string

const (
	// SessionLoading means the credential verifier has not reported its
	// initial snapshot yet. Distinct from anonymous: protected views wait
	// instead of redirecting to login.
	SessionLoading       SessionState = "loading"
	SessionAuthenticated SessionState = "authenticated"
	SessionAnonymous     SessionState = "anonymous"
)

// Identity is the admin identity reported by the credential verifier.
// Exactly one admin identity is supported per deployment.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Session is the guard's current snapshot; it is never persisted as a
// domain entity.
type Session struct {
	State    SessionState `json:"state"`
	Identity *Identity    `json:"identity,omitempty"`
	LoginAt  time.Time    `json:"loginAt,omitempty"`
}
