package models

// FederatedIdentity is the second-factor identity record returned by
// GET /employee/login_check/{email} for an externally-authenticated email.
//
// The backend is the source of truth: the client never mutates this record,
// only mirrors selected fields into the session. Optional fields are
// pointers so that "absent or null" can be told apart from a zero value —
// absent fields are skipped during session composition, never written as
// empty strings.
type FederatedIdentity struct {
	// Error is non-empty when the backend rejected the lookup. When set,
	// all other fields must be ignored.
	Error string `json:"error,omitempty"`

	// CID is the company (tenant) identifier.
	CID string `json:"cid"`

	// CompanyName is the display name of the company.
	CompanyName *string `json:"company_name"`

	// CompanyLogo is the company logo URL or asset reference.
	CompanyLogo *string `json:"company_logo"`

	// ReportType is the report-type label configured for the company.
	ReportType *string `json:"report_type"`

	// Email is the externally-authenticated email this record was
	// looked up by.
	Email string `json:"email"`

	// AdminType is the free-text role label assigned by the backend.
	// It is normalized against a closed allow-list before any session
	// field is written; unknown values are rejected outright.
	AdminType string `json:"admin_type"`

	// AuthID is the external authentication provider's subject id.
	AuthID *string `json:"auth_id"`

	// FirstName and LastName are the admin profile name parts.
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`

	// PhoneNumber is the admin contact phone.
	PhoneNumber *string `json:"phone_number"`

	// IsVerified reports whether the admin account passed backend
	// verification.
	IsVerified *bool `json:"is_verified"`

	// CreatedDate is the account creation date as reported by the backend.
	CreatedDate *string `json:"created_date"`

	// DeviceCount and EmployeeCount are the tenant quotas consumed by the
	// device and employee screens.
	DeviceCount   *int `json:"device_count"`
	EmployeeCount *int `json:"employee_count"`

	// Company postal address parts.
	CompanyAddressLine1 *string `json:"company_address_line1"`
	CompanyAddressLine2 *string `json:"company_address_line2"`
	CompanyCity         *string `json:"company_city"`
	CompanyState        *string `json:"company_state"`
	CompanyZipCode      *string `json:"company_zip_code"`

	// Associated customer postal address parts.
	CustomerAddressLine1 *string `json:"customer_address_line1"`
	CustomerAddressLine2 *string `json:"customer_address_line2"`
	CustomerCity         *string `json:"customer_city"`
	CustomerState        *string `json:"customer_state"`
	CustomerZipCode      *string `json:"customer_zip_code"`

	// LastModifiedBy identifies the account that last touched the record.
	LastModifiedBy *string `json:"last_modified_by"`
}
