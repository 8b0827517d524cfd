package models

// Role is the closed role enum gating feature access across the portal.
// After a successful verification the session adminType field always
// holds one of these values: RoleCustomer for the legacy password path,
// one of the three admin roles for the federated path.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
	RoleOwner      Role = "Owner"
)

// OutcomeStatus discriminates the three terminal states of a
// verification attempt.
type OutcomeStatus int

const (
	// OutcomeAuthenticated means the credentials were accepted and the
	// session has been populated.
	OutcomeAuthenticated OutcomeStatus = iota + 1

	// OutcomeRejected means the credentials or the asserted role were
	// positively refused: wrong password, username mismatch, or a role
	// outside the allow-list. No session field was written.
	OutcomeRejected

	// OutcomeFailed means the attempt could not be completed: network
	// or HTTP failure, malformed record, or a cryptographic integrity
	// failure on the stored secret. No session field was written.
	OutcomeFailed
)

// Outcome is the normalized result of one verification attempt. Both
// verification paths return this same shape, so callers never branch on
// which identity provider produced it.
type Outcome struct {
	// Status is the terminal state of the attempt.
	Status OutcomeStatus

	// Role is the normalized role, set only when Status is
	// OutcomeAuthenticated.
	Role Role

	// CompanyID is the authenticated tenant, set only when Status is
	// OutcomeAuthenticated.
	CompanyID string

	// Fields is the exact session field set the verifier committed,
	// set only when Status is OutcomeAuthenticated.
	Fields map[SessionKey]string

	// Reason is the human-readable refusal, set only when Status is
	// OutcomeRejected. Policy rejections name the offending value.
	Reason string

	// Cause is the underlying error, set only when Status is
	// OutcomeFailed. It wraps the adapter or crypto sentinel so callers
	// that do care can errors.Is against it.
	Cause error
}

// Authenticated reports whether the attempt ended in an authenticated
// session.
func (o Outcome) Authenticated() bool {
	return o.Status == OutcomeAuthenticated
}
