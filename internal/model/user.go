package model

import (
	"fmt"
	"time"
)

// Department is the closed set of organizational units that scope
// users, tasks, and message channels.
type Department string

const (
	DepartmentHR          Department = "HR"
	DepartmentDesign      Department = "Design"
	DepartmentDevelopment Department = "Development"
	DepartmentMarketing   Department = "Marketing"
	DepartmentSales       Department = "Sales"
	DepartmentManagement  Department = "Management"
)

// Departments lists every valid department in display order.
var Departments = []Department{
	DepartmentHR,
	DepartmentDesign,
	DepartmentDevelopment,
	DepartmentMarketing,
	DepartmentSales,
	DepartmentManagement,
}

// Valid reports whether d is one of the known departments.
func (d Department) Valid() bool {
	switch d {
	case DepartmentHR, DepartmentDesign, DepartmentDevelopment,
		DepartmentMarketing, DepartmentSales, DepartmentManagement:
		return true
	}
	return false
}

// ParseDepartment converts a raw string into a Department.
func ParseDepartment(s string) (Department, error) {
	d := Department(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown department %q", s)
	}
	return d, nil
}

// AvailabilitySchedule is a time window during which a user is
// considered available regardless of their availability flag.
type AvailabilitySchedule struct {
	// StartTime is the beginning of the availability window.
	StartTime time.Time `json:"startTime"`

	// EndTime is the end of the availability window.
	EndTime time.Time `json:"endTime"`
}

// Contains reports whether t falls within the window, inclusive at
// both ends.
func (s AvailabilitySchedule) Contains(t time.Time) bool {
	return !t.Before(s.StartTime) && !t.After(s.EndTime)
}

// User is a team member identity with profile and availability state.
type User struct {
	// ID is the unique identifier for this user.
	ID string `json:"id"`

	// Name is the user's display name.
	Name string `json:"name"`

	// Email is the user's contact address.
	Email string `json:"email"`

	// Department is the organizational unit the user belongs to.
	Department Department `json:"department"`

	// Avatar is a URL or reference to the user's avatar image.
	Avatar string `json:"avatar,omitempty"`

	// IsAvailable is the user's manually set availability flag. It
	// governs availability only when no schedule window applies.
	IsAvailable bool `json:"isAvailable"`

	// AvailabilitySchedule, when set, overrides IsAvailable while the
	// current time lies inside its window.
	AvailabilitySchedule *AvailabilitySchedule `json:"availabilitySchedule"`
}

// AvailableAt reports whether the user is available at instant t.
// A schedule containing t wins over the flag; outside the window, or
// with no schedule, the flag governs.
func (u User) AvailableAt(t time.Time) bool {
	if u.AvailabilitySchedule != nil && u.AvailabilitySchedule.Contains(t) {
		return true
	}
	return u.IsAvailable
}

// UserPatch carries a partial user update. Nil fields are left
// unchanged by the merge.
type UserPatch struct {
	Name        *string
	Email       *string
	Department  *Department
	Avatar      *string
	IsAvailable *bool
}

// Apply merges the patch into u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Department != nil {
		u.Department = *p.Department
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.IsAvailable != nil {
		u.IsAvailable = *p.IsAvailable
	}
}
