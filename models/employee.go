package models

import "time"

// Role values recognized by the pending-action scope resolver.
// Anything else is treated as a plain employee.
const (
	RoleEmployee   = "employee"
	RoleManager    = "manager"
	RoleHRAdmin    = "hr_admin"
	RoleSuperAdmin = "super_admin"
	RoleExecutive  = "executive"
)

// Employee is the central identity record. Every other HR record hangs off
// an employee via EmployeeID, and the reporting line is expressed through
// ManagerID (nil for employees with no manager, e.g. the CEO).
type Employee struct {
	ID        string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID string  `gorm:"type:uuid;not null" json:"company_id"`
	ManagerID *string `gorm:"type:uuid" json:"manager_id,omitempty"`

	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Email     string `gorm:"not null;uniqueIndex" json:"email"`
	Position  string `json:"position"`

	// Role drives which collector groups the pending-action feed activates.
	Role string `gorm:"not null;default:employee" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins first and last name for display in feed titles.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
