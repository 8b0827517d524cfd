package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/shiftlog/portal-auth/internal/adapter"
	"github.com/shiftlog/portal-auth/internal/crypto"
	"github.com/shiftlog/portal-auth/internal/logger"
	"github.com/shiftlog/portal-auth/internal/session"
	"github.com/shiftlog/portal-auth/internal/utils"
	"github.com/shiftlog/portal-auth/models"
)

type authService struct {
	legacy    Verifier
	federated Verifier
	store     session.Store

	// inflight admits at most one verification at a time against this
	// session: a second concurrent call waits for the first to finish
	// instead of racing its session commit. Context-aware, so a waiting
	// caller can still be cancelled.
	inflight *semaphore.Weighted

	logger *logger.Logger
}

// NewAuthService wires both verifiers, the session store, and the
// in-flight guard into the portal-facing [AuthService].
func NewAuthService(backend adapter.BackendAdapter, cipher crypto.SecretCipher, key []byte, store session.Store, log *logger.Logger) AuthService {
	return &authService{
		legacy:    NewLegacyPasswordVerifier(backend, cipher, key, store, log),
		federated: NewFederatedRoleVerifier(backend, store, log),
		store:     store,
		inflight:  semaphore.NewWeighted(1),
		logger:    log,
	}
}

func (s *authService) guarded(ctx context.Context, verify func(context.Context) models.Outcome) models.Outcome {
	if err := s.inflight.Acquire(ctx, 1); err != nil {
		return failed(fmt.Errorf("verification guard: %w", err))
	}
	defer s.inflight.Release(1)

	return verify(ctx)
}

// Login implements [AuthService].
func (s *authService) Login(ctx context.Context, username, password string) models.Outcome {
	return s.guarded(ctx, func(ctx context.Context) models.Outcome {
		return s.legacy.Verify(ctx, Credentials{Username: username, Password: password})
	})
}

// FederatedLogin implements [AuthService].
func (s *authService) FederatedLogin(ctx context.Context, email string) models.Outcome {
	return s.guarded(ctx, func(ctx context.Context) models.Outcome {
		return s.federated.Verify(ctx, Credentials{Email: email})
	})
}

// FederatedLoginWithIDToken implements [AuthService]. The token is only
// a carrier for the email claim; the login-check endpoint remains the
// authority on whether that email belongs to an admin.
func (s *authService) FederatedLoginWithIDToken(ctx context.Context, rawToken string) models.Outcome {
	email, err := utils.EmailFromIDToken(rawToken)
	if err != nil {
		return failed(fmt.Errorf("extract email from id token: %w", err))
	}

	return s.FederatedLogin(ctx, email)
}

// LoginCheck implements [AuthService]. It preserves the historical
// shape: every non-authenticated outcome, whatever its cause, collapses
// to false.
func (s *authService) LoginCheck(ctx context.Context, username, password string) bool {
	outcome := s.Login(ctx, username, password)
	if outcome.Status == models.OutcomeFailed {
		s.logger.Err(outcome.Cause).Msg("login check failed")
	}

	return outcome.Authenticated()
}

// FederatedCheck implements [AuthService]. Success returns the company
// id; a policy rejection surfaces as an error wrapping
// [ErrInvalidAdminType] so callers can still show the offending value.
func (s *authService) FederatedCheck(ctx context.Context, email string) (string, error) {
	outcome := s.FederatedLogin(ctx, email)

	switch outcome.Status {
	case models.OutcomeAuthenticated:
		return outcome.CompanyID, nil
	case models.OutcomeRejected:
		return "", fmt.Errorf("%w: %s", ErrInvalidAdminType, outcome.Reason)
	default:
		if outcome.Cause != nil {
			return "", outcome.Cause
		}
		return "", errors.New("federated login failed")
	}
}

// Logout implements [AuthService]. Teardown is the only transition out
// of an authenticated state; it removes the enumerated namespace and the
// legacy aliases in one sweep and can be called any number of times.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.store.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.logger.Info().Msg("session cleared")
	return nil
}
