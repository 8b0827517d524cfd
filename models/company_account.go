package models

// CompanyAccount is the legacy tenant credential record returned by
// GET /company/getuser/{username}. It carries the company identity and
// metadata together with the stored login name and the symmetrically
// encrypted password for that login.
//
// The record is fetched fresh on every login attempt and is never cached
// beyond the session that a successful verification produces.
type CompanyAccount struct {
	// CID is the company (tenant) identifier.
	CID string `json:"CID"`

	// CName is the display name of the company.
	CName string `json:"CName"`

	// CLogo is the company logo URL or asset reference.
	CLogo string `json:"CLogo"`

	// CAddress is the company postal address as a single line.
	CAddress string `json:"CAddress"`

	// UserName is the human login name stored for this company account.
	UserName string `json:"UserName"`

	// Password is the EncryptedSecret for UserName: a base64 blob of
	// 12-byte nonce ‖ AES-GCM ciphertext. It is decrypted locally during
	// verification and MUST never be logged.
	Password string `json:"Password"`

	// ReportType is the report-type label configured for the company.
	ReportType string `json:"ReportType"`
}
