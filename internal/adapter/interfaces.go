package adapter

import (
	"context"

	"github.com/shiftlog/portal-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter is the client's view of the remote portal backend. Only
// the two identity endpoints consumed by the verification core are
// exposed; everything else the backend serves belongs to other screens
// and stays outside this module.
//
// Implementations convert transport-level failures into the sentinel
// errors of this package; they never interpret the records they return.
type BackendAdapter interface {
	// GetCompanyAccount fetches the legacy tenant credential record for
	// username from GET /company/getuser/{username}.
	GetCompanyAccount(ctx context.Context, username string) (models.CompanyAccount, error)

	// GetFederatedIdentity fetches the second-factor identity record for
	// an externally-authenticated email from
	// GET /employee/login_check/{email}. A backend-side refusal arrives
	// as a 2xx body with the error field set, not as an HTTP error.
	GetFederatedIdentity(ctx context.Context, email string) (models.FederatedIdentity, error)
}
