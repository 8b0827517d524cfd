// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shiftlog/portal-auth/internal/adapter"
	"github.com/shiftlog/portal-auth/internal/crypto"
	"github.com/shiftlog/portal-auth/internal/logger"
	"github.com/shiftlog/portal-auth/internal/mock"
	"github.com/shiftlog/portal-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newTestLegacyVerifier(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	Verifier,
	*mock.MockBackendAdapter,
	*mock.MockSecretCipher,
	*mock.MockStore,
) {
	t.Helper()
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockCipher := mock.NewMockSecretCipher(ctrl)
	mockStore := mock.NewMockStore(ctrl)

	v := NewLegacyPasswordVerifier(mockAdapter, mockCipher, testKey, mockStore, logger.Nop())

	return v, mockAdapter, mockCipher, mockStore
}

func aliceAccount() models.CompanyAccount {
	return models.CompanyAccount{
		CID:        "C-1001",
		CName:      "Acme Cleaning",
		CLogo:      "https://cdn.example.com/acme.png",
		CAddress:   "1 Main St, Springfield",
		UserName:   "alice",
		Password:   "dGVzdC1ibG9i",
		ReportType: "weekly",
	}
}

// ── Verify: success ──────────────────────────────────────────────────────────

func TestLegacyVerifier_Verify_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, mockAdapter, mockCipher, mockStore := newTestLegacyVerifier(t, ctrl)
	ctx := context.Background()
	account := aliceAccount()

	var committed map[models.SessionKey]string
	gomock.InOrder(
		mockAdapter.EXPECT().GetCompanyAccount(ctx, "alice").Return(account, nil),
		mockCipher.EXPECT().Open(account.Password, testKey).Return([]byte("secret1"), nil),
		mockStore.EXPECT().SetAll(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[models.SessionKey]string) error {
				committed = fields
				return nil
			},
		),
	)

	outcome := v.Verify(ctx, Credentials{Username: "alice", Password: "secret1"})

	require.Equal(t, models.OutcomeAuthenticated, outcome.Status)
	assert.True(t, outcome.Authenticated())
	assert.Equal(t, models.RoleCustomer, outcome.Role)
	assert.Equal(t, "C-1001", outcome.CompanyID)

	require.NotNil(t, committed)
	assert.Equal(t, "C-1001", committed[models.SessionCompanyID])
	assert.Equal(t, "Acme Cleaning", committed[models.SessionCompanyName])
	assert.Equal(t, "alice", committed[models.SessionUserName])
	assert.Equal(t, account.Password, committed[models.SessionPassword])
	assert.Equal(t, "secret1", committed[models.SessionDecryptedPassword])
	assert.Equal(t, "weekly", committed[models.SessionReportType])
	assert.Equal(t, string(models.RoleCustomer), committed[models.SessionAdminType])
}

// ── Verify: rejection leaves the session untouched ───────────────────────────

func TestLegacyVerifier_Verify_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, mockAdapter, mockCipher, _ := newTestLegacyVerifier(t, ctrl)
	ctx := context.Background()
	account := aliceAccount()

	mockAdapter.EXPECT().GetCompanyAccount(ctx, "alice").Return(account, nil)
	mockCipher.EXPECT().Open(account.Password, testKey).Return([]byte("secret1"), nil)
	// No SetAll expectation: a mismatch must not write anything.

	outcome := v.Verify(ctx, Credentials{Username: "alice", Password: "wrong"})

	require.Equal(t, models.OutcomeRejected, outcome.Status)
	assert.False(t, outcome.Authenticated())
	assert.Equal(t, ErrCredentialsMismatch.Error(), outcome.Reason)
	assert.Nil(t, outcome.Fields)
}

func TestLegacyVerifier_Verify_UsernameMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, mockAdapter, mockCipher, _ := newTestLegacyVerifier(t, ctrl)
	ctx := context.Background()
	account := aliceAccount()

	// Stored record is for "alice"; the caller asked for a different
	// casing. Even a matching password must not authenticate.
	mockAdapter.EXPECT().GetCompanyAccount(ctx, "Alice").Return(account, nil)
	mockCipher.EXPECT().Open(account.Password, testKey).Return([]byte("secret1"), nil)

	outcome := v.Verify(ctx, Credentials{Username: "Alice", Password: "secret1"})

	require.Equal(t, models.OutcomeRejected, outcome.Status)
	assert.Equal(t, ErrCredentialsMismatch.Error(), outcome.Reason)
}

// ── Verify: failures ─────────────────────────────────────────────────────────

func TestLegacyVerifier_Verify_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, mockAdapter, _, _ := newTestLegacyVerifier(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetCompanyAccount(ctx, "alice").
		Return(models.CompanyAccount{}, adapter.ErrNotFound)

	outcome := v.Verify(ctx, Credentials{Username: "alice", Password: "secret1"})

	require.Equal(t, models.OutcomeFailed, outcome.Status)
	assert.False(t, outcome.Authenticated())
	assert.ErrorIs(t, outcome.Cause, adapter.ErrNotFound)
}

func TestLegacyVerifier_Verify_IntegrityFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, mockAdapter, mockCipher, _ := newTestLegacyVerifier(t, ctrl)
	ctx := context.Background()
	account := aliceAccount()

	mockAdapter.EXPECT().GetCompanyAccount(ctx, "alice").Return(account, nil)
	mockCipher.EXPECT().Open(account.Password, testKey).
		Return(nil, fmt.Errorf("open secret: %w", crypto.ErrIntegrity))

	outcome := v.Verify(ctx, Credentials{Username: "alice", Password: "secret1"})

	// A corrupted or wrongly-keyed stored secret is a failure, not a
	// credential rejection.
	require.Equal(t, models.OutcomeFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Cause, crypto.ErrIntegrity)
	assert.Empty(t, outcome.Reason)
}

func TestLegacyVerifier_Verify_CommitError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, mockAdapter, mockCipher, mockStore := newTestLegacyVerifier(t, ctrl)
	ctx := context.Background()
	account := aliceAccount()
	errCommit := errors.New("disk full")

	mockAdapter.EXPECT().GetCompanyAccount(ctx, "alice").Return(account, nil)
	mockCipher.EXPECT().Open(account.Password, testKey).Return([]byte("secret1"), nil)
	mockStore.EXPECT().SetAll(ctx, gomock.Any()).Return(errCommit)

	outcome := v.Verify(ctx, Credentials{Username: "alice", Password: "secret1"})

	require.Equal(t, models.OutcomeFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Cause, errCommit)
}
