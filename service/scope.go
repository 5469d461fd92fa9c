package services

import "github.com/centralkang-byte/ctr-hr-hub-sub002/models"

// Scope carries the identity a collector filters by. Self-scoped
// collectors use EmployeeID directly, manager-scoped collectors use it as
// the manager reference, and company-scoped collectors use CompanyID.
type Scope struct {
	EmployeeID string
	CompanyID  string
}

// collectorGroups says which collector sets are active for one caller.
type collectorGroups struct {
	IndividualContributor bool
	Manager               bool
	HR                    bool

	// Executive is resolved from the role but currently activates no
	// collector group of its own. Kept so the resolver stays the single
	// place role semantics live when executive-scoped sources land.
	Executive bool
}

// resolveGroups maps a role to its active collector groups. Every caller
// gets the individual-contributor group; an unrecognized role gets only
// that, which keeps manager- and HR-scoped data out of reach of unknown
// role values.
func resolveGroups(role string) collectorGroups {
	groups := collectorGroups{IndividualContributor: true}

	switch role {
	case models.RoleManager:
		groups.Manager = true
	case models.RoleHRAdmin, models.RoleSuperAdmin:
		groups.Manager = true
		groups.HR = true
	case models.RoleExecutive:
		groups.Executive = true
	}

	return groups
}
