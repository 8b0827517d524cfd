// SPDX-License-Identifier: Apache-2.0

package stub

import "github.com/shiftlog/portal-auth/models"

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

// DefaultFixtures is the tenant directory the stub binary serves out of
// the box: one legacy-only tenant and one tenant with a federated owner.
func DefaultFixtures() []Fixture {
	return []Fixture{
		{
			Account: models.CompanyAccount{
				CID:        "C-1001",
				CName:      "Acme Cleaning",
				CLogo:      "https://cdn.example.com/acme.png",
				CAddress:   "1 Main St, Springfield",
				UserName:   "alice",
				ReportType: "weekly",
			},
			Password: "secret1",
		},
		{
			Account: models.CompanyAccount{
				CID:        "C-2002",
				CName:      "Globex Staffing",
				CLogo:      "https://cdn.example.com/globex.png",
				CAddress:   "742 Evergreen Terrace",
				UserName:   "globex",
				ReportType: "monthly",
			},
			Password: "hunter2",
			Identity: &models.FederatedIdentity{
				CID:           "C-2002",
				Email:         "bob@globex.example",
				AdminType:     "owner",
				CompanyName:   strPtr("Globex Staffing"),
				ReportType:    strPtr("monthly"),
				AuthID:        strPtr("auth0|globex-bob"),
				FirstName:     strPtr("Bob"),
				LastName:      strPtr("Stone"),
				PhoneNumber:   strPtr("+1-555-0100"),
				IsVerified:    boolPtr(true),
				CreatedDate:   strPtr("2024-03-01"),
				DeviceCount:   intPtr(4),
				EmployeeCount: intPtr(17),
			},
		},
	}
}
