// SPDX-License-Identifier: Apache-2.0

// Package stub is the development backend: an in-memory tenant directory
// behind the same two HTTP endpoints the real portal backend serves. It
// exists so the client can be exercised end to end without network
// access to production.
package stub

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shiftlog/portal-auth/internal/crypto"
	"github.com/shiftlog/portal-auth/internal/logger"
	"github.com/shiftlog/portal-auth/models"
)

// Handler serves the stub endpoints from seeded fixtures.
type Handler struct {
	accounts   map[string]models.CompanyAccount
	identities map[string]models.FederatedIdentity

	logger *logger.Logger
}

// Fixture seeds one tenant into the stub directory: a legacy company
// account with a plaintext password, plus an optional federated admin
// identity for the same tenant.
type Fixture struct {
	Account  models.CompanyAccount
	Password string

	Identity *models.FederatedIdentity
}

// NewHandler seeds the stub directory, sealing each fixture password
// under key so the record the client fetches looks exactly like a
// provisioned one.
func NewHandler(cipher crypto.SecretCipher, key []byte, fixtures []Fixture, log *logger.Logger) (*Handler, error) {
	h := &Handler{
		accounts:   make(map[string]models.CompanyAccount, len(fixtures)),
		identities: make(map[string]models.FederatedIdentity),
		logger:     log,
	}

	for _, f := range fixtures {
		account := f.Account

		blob, err := cipher.Seal([]byte(f.Password), key)
		if err != nil {
			return nil, fmt.Errorf("seal fixture password for %q: %w", account.UserName, err)
		}
		account.Password = blob

		h.accounts[account.UserName] = account
		if f.Identity != nil {
			h.identities[f.Identity.Email] = *f.Identity
		}
	}

	log.Info().Int("tenants", len(h.accounts)).Msg("stub directory seeded")
	return h, nil
}

// Init builds the stub router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.attachLogger)

	router.Get("/company/getuser/{username}", h.getUser)
	router.Get("/employee/login_check/{email}", h.loginCheck)

	return router
}

// attachLogger puts the handler's logger into the request context so
// handlers can use logger.FromRequest.
func (h *Handler) attachLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := h.logger.WithContext(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	username := chi.URLParam(r, "username")

	account, found := h.accounts[username]
	if !found {
		log.Info().Str("username", username).Msg("unknown company account requested")
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, r, account)
}

// loginCheck mirrors the production contract: an unknown email is not an
// HTTP error but a 200 body with the error field set.
func (h *Handler) loginCheck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	email := chi.URLParam(r, "email")

	identity, found := h.identities[email]
	if !found {
		log.Info().Str("email", email).Msg("unknown admin email requested")
		h.writeJSON(w, r, models.FederatedIdentity{
			Error: fmt.Sprintf("no admin found for email %q", email),
		})
		return
	}

	h.writeJSON(w, r, identity)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromRequest(r).Err(err).Msg("encoding stub response failed")
	}
}
