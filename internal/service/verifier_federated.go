// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shiftlog/portal-auth/internal/adapter"
	"github.com/shiftlog/portal-auth/internal/logger"
	"github.com/shiftlog/portal-auth/internal/session"
	"github.com/shiftlog/portal-auth/models"
)

// adminTypeDisplay maps the lower-cased backend role label to its display
// form. The map doubles as the allow-list: a label without an entry here
// never reaches the session.
var adminTypeDisplay = map[string]models.Role{
	"admin":      models.RoleAdmin,
	"superadmin": models.RoleSuperAdmin,
	"owner":      models.RoleOwner,
}

// federatedRoleVerifier validates an externally-authenticated email
// against the employee login-check endpoint. Unlike the legacy path it
// holds no secret of its own: it trusts the backend's say-so, but only
// after forcing the free-text role through a closed allow-list.
type federatedRoleVerifier struct {
	adapter adapter.BackendAdapter
	store   session.Store
	logger  *logger.Logger
}

// NewFederatedRoleVerifier constructs the federated-path [Verifier].
func NewFederatedRoleVerifier(backend adapter.BackendAdapter, store session.Store, log *logger.Logger) Verifier {
	return &federatedRoleVerifier{
		adapter: backend,
		store:   store,
		logger:  log,
	}
}

// Verify implements [Verifier].
//
// The role check is a hard allow-list, not a sanitizer: any label outside
// {admin, superadmin, owner} is Rejected with a message naming the value,
// and no session field is written. Absent or null record fields are
// skipped during composition, never stored as empty strings.
func (v *federatedRoleVerifier) Verify(ctx context.Context, creds Credentials) models.Outcome {
	identity, err := v.adapter.GetFederatedIdentity(ctx, creds.Email)
	if err != nil {
		v.logger.Err(err).Str("email", creds.Email).Msg("federated identity lookup failed")
		return failed(fmt.Errorf("fetch federated identity: %w", err))
	}

	if identity.Error != "" {
		return failed(fmt.Errorf("%w: %s", ErrBackendRejected, identity.Error))
	}

	label := strings.ToLower(strings.TrimSpace(identity.AdminType))
	role, allowed := adminTypeDisplay[label]
	if !allowed {
		v.logger.Warn().Str("adminType", identity.AdminType).Msg("federated role outside allow-list")
		return rejected(fmt.Sprintf("access denied. %s: %q", ErrInvalidAdminType, identity.AdminType))
	}

	fields := composeFederatedFields(identity, role)

	if err := v.store.SetAll(ctx, fields); err != nil {
		return failed(fmt.Errorf("commit session: %w", err))
	}

	v.logger.Info().Str("companyID", identity.CID).Str("adminType", string(role)).Msg("federated login verified")
	return authenticated(role, identity.CID, fields)
}

// composeFederatedFields mirrors the identity record into the session key
// namespace. Pointer fields are copied only when present; the composed
// display name and the phone aliases follow the shapes the rest of the
// portal reads.
func composeFederatedFields(identity models.FederatedIdentity, role models.Role) map[models.SessionKey]string {
	fields := map[models.SessionKey]string{
		models.SessionCompanyID: identity.CID,
		models.SessionAdminMail: identity.Email,
		models.SessionAdminType: string(role),
		models.SessionUserName:  composeDisplayName(identity.FirstName, identity.LastName),
	}

	setString := func(key models.SessionKey, value *string) {
		if value != nil {
			fields[key] = *value
		}
	}

	setString(models.SessionCompanyName, identity.CompanyName)
	setString(models.SessionCompanyLogo, identity.CompanyLogo)
	setString(models.SessionReportType, identity.ReportType)
	setString(models.SessionAuthID, identity.AuthID)
	setString(models.SessionFirstName, identity.FirstName)
	setString(models.SessionLastName, identity.LastName)
	setString(models.SessionCreatedDate, identity.CreatedDate)
	setString(models.SessionCompanyAddress1, identity.CompanyAddressLine1)
	setString(models.SessionCompanyAddress2, identity.CompanyAddressLine2)
	setString(models.SessionCompanyCity, identity.CompanyCity)
	setString(models.SessionCompanyState, identity.CompanyState)
	setString(models.SessionCustomerAddress1, identity.CustomerAddressLine1)
	setString(models.SessionCustomerAddress2, identity.CustomerAddressLine2)
	setString(models.SessionCustomerCity, identity.CustomerCity)
	setString(models.SessionCustomerState, identity.CustomerState)
	setString(models.SessionCustomerZipCode, identity.CustomerZipCode)
	setString(models.SessionLastModifiedBy, identity.LastModifiedBy)

	// Phone and company zip are each read under two key spellings by
	// different screens; both aliases get the same value.
	setString(models.SessionPhone, identity.PhoneNumber)
	setString(models.SessionPhoneNumber, identity.PhoneNumber)
	setString(models.SessionCompanyZip, identity.CompanyZipCode)
	setString(models.SessionCompanyZipCode, identity.CompanyZipCode)

	if identity.IsVerified != nil {
		fields[models.SessionIsVerified] = strconv.FormatBool(*identity.IsVerified)
	}
	if identity.DeviceCount != nil {
		fields[models.SessionDeviceCount] = strconv.Itoa(*identity.DeviceCount)
	}
	if identity.EmployeeCount != nil {
		fields[models.SessionEmployeeCount] = strconv.Itoa(*identity.EmployeeCount)
	}

	return fields
}

func composeDisplayName(first, last *string) string {
	var parts []string
	if first != nil && *first != "" {
		parts = append(parts, *first)
	}
	if last != nil && *last != "" {
		parts = append(parts, *last)
	}
	return strings.Join(parts, " ")
}
