package service

import (
	"context"

	"github.com/shiftlog/portal-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Credentials is the input of one verification attempt. The legacy path
// reads Username and Password; the federated path reads Email. A filled
// field set never mixes the two.
type Credentials struct {
	Username string
	Password string
	Email    string
}

// Verifier is the single capability both identity providers implement.
// The two concrete verifiers carry divergent trust models — the legacy
// one decrypts and compares a secret locally, the federated one trusts
// the backend's role assertion — but both collapse into one normalized
// [models.Outcome], so callers never branch on provider.
//
// A Verifier must not write any session field unless the outcome is
// Authenticated, and then only through one atomic commit.
type Verifier interface {
	Verify(ctx context.Context, creds Credentials) models.Outcome
}

// AuthService is the portal-facing surface of the verification core: the
// two providers behind a single in-flight guard, the compatibility
// helpers with the historical call shapes, and session teardown.
type AuthService interface {
	// Login runs the legacy username/password verification.
	Login(ctx context.Context, username, password string) models.Outcome

	// FederatedLogin runs the federated email verification.
	FederatedLogin(ctx context.Context, email string) models.Outcome

	// FederatedLoginWithIDToken extracts the email claim from an
	// externally-issued ID token and delegates to FederatedLogin.
	FederatedLoginWithIDToken(ctx context.Context, rawToken string) models.Outcome

	// LoginCheck is the historical boolean contract of the legacy path:
	// true iff the outcome is Authenticated. Nothing ever escapes as an
	// error.
	LoginCheck(ctx context.Context, username, password string) bool

	// FederatedCheck is the historical contract of the federated path:
	// the company id on success, an error carrying the refusal or the
	// failure cause otherwise.
	FederatedCheck(ctx context.Context, email string) (string, error)

	// Logout clears every session key, current and legacy. Idempotent.
	Logout(ctx context.Context) error
}
