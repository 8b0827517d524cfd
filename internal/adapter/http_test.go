// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shiftlog/portal-auth/internal/config"
	"github.com/shiftlog/portal-auth/internal/logger"
	"github.com/shiftlog/portal-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpBackendAdapter pointed at a test server.
func newTestAdapter(t *testing.T, serverURL string) *httpBackendAdapter {
	t.Helper()
	adapterCfg := config.PortalAdapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPBackendAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

// ── GetCompanyAccount ────────────────────────────────────────────────────────

func TestGetCompanyAccount_Success(t *testing.T) {
	want := models.CompanyAccount{
		CID:        "C-100",
		CName:      "Acme Staffing",
		CLogo:      "https://cdn.example/acme.png",
		CAddress:   "1 Main St, Springfield",
		UserName:   "alice",
		Password:   "bm9uY2UtYW5kLWNpcGhlcnRleHQ=",
		ReportType: "Daily",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/company/getuser/alice", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetCompanyAccount(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetCompanyAccount_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such user"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetCompanyAccount(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCompanyAccount_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetCompanyAccount(context.Background(), "alice")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestGetCompanyAccount_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before the request

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetCompanyAccount(context.Background(), "alice")

	require.Error(t, err)
}

// ── GetFederatedIdentity ─────────────────────────────────────────────────────

func TestGetFederatedIdentity_Success(t *testing.T) {
	firstName := "Olive"
	deviceCount := 12

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employee/login_check/owner@acme.example", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.FederatedIdentity{
			CID:         "C-100",
			Email:       "owner@acme.example",
			AdminType:   "Owner",
			FirstName:   &firstName,
			DeviceCount: &deviceCount,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetFederatedIdentity(context.Background(), "owner@acme.example")

	require.NoError(t, err)
	assert.Equal(t, "C-100", got.CID)
	assert.Equal(t, "Owner", got.AdminType)
	require.NotNil(t, got.DeviceCount)
	assert.Equal(t, 12, *got.DeviceCount)
	assert.Nil(t, got.EmployeeCount, "absent field must stay nil")
}

func TestGetFederatedIdentity_BackendErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "employee not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetFederatedIdentity(context.Background(), "ghost@acme.example")

	// a 2xx body with an error field is NOT a transport error
	require.NoError(t, err)
	assert.Equal(t, "employee not found", got.Error)
}

func TestGetFederatedIdentity_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetFederatedIdentity(context.Background(), "owner@acme.example")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
}

// ── base URL normalisation ───────────────────────────────────────────────────

func TestNewHTTPBackendAdapter_EmptyBaseURL(t *testing.T) {
	_, err := NewHTTPBackendAdapter(config.PortalAdapter{}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("backend.example.com:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://backend.example.com:8080", got)

	got, err = normalizeBaseURL("https://backend.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://backend.example.com", got)

	_, err = normalizeBaseURL("   ")
	require.Error(t, err)
}
