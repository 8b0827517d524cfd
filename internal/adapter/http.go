package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shiftlog/portal-auth/internal/config"
	"github.com/shiftlog/portal-auth/internal/logger"
	"github.com/shiftlog/portal-auth/internal/utils"
	"github.com/shiftlog/portal-auth/models"
	"github.com/go-resty/resty/v2"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout. Timeouts live here, at the
// network layer — the verification core above never enforces its own.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as
// a valid URL.
func NewHTTPBackendAdapter(adapterCfg config.PortalAdapter, logger *logger.Logger) (BackendAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpBackendAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetCompanyAccount implements [BackendAdapter]. It GETs
// /company/getuser/{username} and decodes the tenant credential record.
// Returns an error if the request fails or the server returns a non-2xx
// status; the record is passed through as received, undecrypted.
func (h *httpBackendAdapter) GetCompanyAccount(ctx context.Context, username string) (models.CompanyAccount, error) {
	var account models.CompanyAccount

	resp, err := h.request(ctx).
		SetResult(&account).
		SetPathParam("username", username).
		Get("/company/getuser/{username}")
	if err != nil {
		return models.CompanyAccount{}, fmt.Errorf("get company account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CompanyAccount{}, err
	}

	return account, nil
}

// GetFederatedIdentity implements [BackendAdapter]. It GETs
// /employee/login_check/{email} and decodes the identity record. The
// backend signals "no such admin" inside a 2xx body via the error field;
// that is NOT mapped to a Go error here — the normalizer owns that
// decision.
func (h *httpBackendAdapter) GetFederatedIdentity(ctx context.Context, email string) (models.FederatedIdentity, error) {
	var identity models.FederatedIdentity

	resp, err := h.request(ctx).
		SetResult(&identity).
		SetPathParam("email", email).
		Get("/employee/login_check/{email}")
	if err != nil {
		return models.FederatedIdentity{}, fmt.Errorf("get federated identity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FederatedIdentity{}, err
	}

	return identity, nil
}

func (h *httpBackendAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-Id", utils.NewRequestID())
}
