package models

import (
	"time"
)

// Project status values used by the dashboard. The set is open; any string is stored.
const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusOnTrack    = "On Track"
	StatusDelayed    = "Delayed"
	StatusCompleted  = "Completed"
)

// Priority levels
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// IsUrgent reports whether a priority belongs on the dashboard's priority lists
func IsUrgent(priority string) bool {
	return priority == PriorityHigh || priority == PriorityCritical
}

// Project represents a tracked project with budget, schedule and map position
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Status      string    `json:"status" gorm:"size:50;not null"`
	Priority    string    `json:"priority" gorm:"size:20;not null;index"`
	StartDate   string    `json:"start_date" gorm:"size:10;not null"` // YYYY-MM-DD, not validated
	EndDate     string    `json:"end_date" gorm:"size:10;not null"`
	Budget      float64   `json:"budget" gorm:"not null"`
	ActualCost  float64   `json:"actual_cost"`
	Location    string    `json:"location" gorm:"size:100"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Progress    float64   `json:"progress"` // 0-100
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Tasks       []Task       `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Assignments []Assignment `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// HasCoordinates reports whether the project can be placed on the map.
// Zero coordinates count as missing.
func (p Project) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil && *p.Latitude != 0 && *p.Longitude != 0
}
