package models

import (
	"strings"
	"time"
)

// AssignmentStatusActive is the default assignment status
const AssignmentStatusActive = "Active"

// Assignment staffs a person onto a project or non-project activity
type Assignment struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ManPowerID   uint      `json:"manpower_id" gorm:"column:manpower_id;not null;index"`
	ProjectID    *uint     `json:"project_id" gorm:"index"`
	NonProjectID *uint     `json:"non_project_id" gorm:"index"`
	Role         string    `json:"role" gorm:"size:100;not null"`
	HoursPerWeek int       `json:"hours_per_week" gorm:"not null"`
	StartDate    *string   `json:"start_date" gorm:"size:10"`
	EndDate      *string   `json:"end_date" gorm:"size:10"`
	Status       string    `json:"status" gorm:"size:50"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Owner returns what the assignment staffs
func (a Assignment) Owner() Owner {
	return ownerFromColumns(a.ProjectID, a.NonProjectID)
}

// SetOwner points the assignment at a new parent, clearing the other column
func (a *Assignment) SetOwner(o Owner) {
	a.ProjectID, a.NonProjectID = o.columns()
}

// IsActive reports whether the assignment counts towards a person's workload
func (a Assignment) IsActive() bool {
	return strings.EqualFold(a.Status, AssignmentStatusActive)
}
