// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiftlog/portal-auth/internal/adapter"
	"github.com/shiftlog/portal-auth/internal/crypto"
	"github.com/shiftlog/portal-auth/internal/logger"
	"github.com/shiftlog/portal-auth/internal/session"
	"github.com/shiftlog/portal-auth/models"
)

// legacyPasswordVerifier validates a username/password pair against the
// legacy company-account endpoint: fetch the record, decrypt the embedded
// password with the configured symmetric key, compare locally. The
// backend is never told whether the comparison succeeded.
type legacyPasswordVerifier struct {
	adapter adapter.BackendAdapter
	cipher  crypto.SecretCipher
	key     []byte
	store   session.Store
	logger  *logger.Logger
}

// NewLegacyPasswordVerifier constructs the legacy-path [Verifier].
// key is the symmetric key shared with the backend's provisioning side;
// how it got here is configuration's business.
func NewLegacyPasswordVerifier(backend adapter.BackendAdapter, cipher crypto.SecretCipher, key []byte, store session.Store, log *logger.Logger) Verifier {
	return &legacyPasswordVerifier{
		adapter: backend,
		cipher:  cipher,
		key:     key,
		store:   store,
		logger:  log,
	}
}

// Verify implements [Verifier].
//
// The full session field set is composed before the credential comparison
// but committed only after it succeeds, so a failed or errored attempt
// leaves the session exactly as it was. An integrity failure on the
// stored secret is a Failed outcome whose cause wraps
// [crypto.ErrIntegrity] — distinguishable from the Rejected outcome of a
// plain wrong password.
func (v *legacyPasswordVerifier) Verify(ctx context.Context, creds Credentials) models.Outcome {
	account, err := v.adapter.GetCompanyAccount(ctx, creds.Username)
	if err != nil {
		v.logger.Err(err).Str("username", creds.Username).Msg("company account lookup failed")
		return failed(fmt.Errorf("fetch company account: %w", err))
	}

	plaintext, err := v.cipher.Open(account.Password, v.key)
	if err != nil {
		if errors.Is(err, crypto.ErrIntegrity) {
			v.logger.Warn().Str("username", creds.Username).Msg("stored password failed integrity check")
		}
		return failed(fmt.Errorf("decrypt stored password: %w", err))
	}

	fields := map[models.SessionKey]string{
		models.SessionCompanyID:         account.CID,
		models.SessionCompanyName:       account.CName,
		models.SessionCompanyLogo:       account.CLogo,
		models.SessionCompanyAddress:    account.CAddress,
		models.SessionUserName:          account.UserName,
		models.SessionPassword:          account.Password,
		models.SessionDecryptedPassword: string(plaintext),
		models.SessionReportType:        account.ReportType,
		models.SessionAdminType:         string(models.RoleCustomer),
	}

	// Username mismatch rejects even when the password happens to match.
	if account.UserName != creds.Username || string(plaintext) != creds.Password {
		return rejected(ErrCredentialsMismatch.Error())
	}

	if err := v.store.SetAll(ctx, fields); err != nil {
		return failed(fmt.Errorf("commit session: %w", err))
	}

	v.logger.Info().Str("companyID", account.CID).Msg("legacy login verified")
	return authenticated(models.RoleCustomer, account.CID, fields)
}
