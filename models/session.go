package models

// SessionKey names one field of the process-wide session record. The key
// namespace is a fixed enumerated set: verifiers only ever write keys
// listed here, and teardown clears exactly this set plus the legacy
// aliases kept for back-compatibility cleanup.
type SessionKey string

// Keys written by both verification paths.
const (
	SessionCompanyID   SessionKey = "companyID"
	SessionCompanyName SessionKey = "companyName"
	SessionCompanyLogo SessionKey = "companyLogo"
	SessionReportType  SessionKey = "reportType"
	SessionUserName    SessionKey = "userName"
	SessionAdminType   SessionKey = "adminType"
)

// Keys written by the legacy password path only.
const (
	SessionCompanyAddress    SessionKey = "companyAddress"
	SessionPassword          SessionKey = "password"
	SessionDecryptedPassword SessionKey = "passwordDecryptedValue"
)

// Keys written by the federated path only.
const (
	SessionAdminMail        SessionKey = "adminMail"
	SessionAuthID           SessionKey = "authId"
	SessionFirstName        SessionKey = "firstName"
	SessionLastName         SessionKey = "lastName"
	SessionPhone            SessionKey = "phone"
	SessionPhoneNumber      SessionKey = "phoneNumber"
	SessionIsVerified       SessionKey = "isVerified"
	SessionCreatedDate      SessionKey = "createdDate"
	SessionDeviceCount      SessionKey = "device_count"
	SessionEmployeeCount    SessionKey = "NoOfEmployees"
	SessionCompanyAddress1  SessionKey = "companyAddress1"
	SessionCompanyAddress2  SessionKey = "companyAddress2"
	SessionCompanyCity      SessionKey = "companyCity"
	SessionCompanyState     SessionKey = "companyState"
	SessionCompanyZip       SessionKey = "companyZip"
	SessionCompanyZipCode   SessionKey = "company_zip_code"
	SessionCustomerAddress1 SessionKey = "customerAddress1"
	SessionCustomerAddress2 SessionKey = "customerAddress2"
	SessionCustomerCity     SessionKey = "customerCity"
	SessionCustomerState    SessionKey = "customerState"
	SessionCustomerZipCode  SessionKey = "customer_zip_code"
	SessionLastModifiedBy   SessionKey = "last_modified_by"
)

// Ancillary keys populated outside the verification paths.
const (
	// SessionTimeZone holds the tenant time zone. Reads substitute
	// DefaultTimeZone when the key is absent.
	SessionTimeZone SessionKey = "timeZone"
)

// DefaultTimeZone is the baseline time zone substituted when
// SessionTimeZone has never been written.
const DefaultTimeZone = "PST"

// SessionKeys is the full enumerated namespace in a stable order.
// Teardown iterates this slice.
var SessionKeys = []SessionKey{
	SessionCompanyID, SessionCompanyName, SessionCompanyLogo,
	SessionCompanyAddress, SessionReportType, SessionUserName,
	SessionAdminType, SessionPassword, SessionDecryptedPassword,
	SessionAdminMail, SessionAuthID, SessionFirstName, SessionLastName,
	SessionPhone, SessionPhoneNumber, SessionIsVerified,
	SessionCreatedDate, SessionDeviceCount, SessionEmployeeCount,
	SessionCompanyAddress1, SessionCompanyAddress2, SessionCompanyCity,
	SessionCompanyState, SessionCompanyZip, SessionCompanyZipCode,
	SessionCustomerAddress1, SessionCustomerAddress2, SessionCustomerCity,
	SessionCustomerState, SessionCustomerZipCode, SessionLastModifiedBy,
	SessionTimeZone,
}

// LegacySessionKeys are key names written by earlier portal builds.
// They are never written anymore but teardown still removes them so a
// logout on an upgraded client leaves no stale identity behind.
var LegacySessionKeys = []SessionKey{
	"customId",
	"customerID",
	"firstName",
	"lastName",
	"address",
	"phone",
	"email",
	"passwordDecryptedValue",
}
