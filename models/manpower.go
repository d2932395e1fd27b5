package models

import "time"

// DefaultWeeklyHours is used when a person has no configured weekly hours
const DefaultWeeklyHours = 40

// ManPower is a person who can be assigned to projects and activities
type ManPower struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:100"`
	Position     string    `json:"position" gorm:"size:100;not null"`
	Department   string    `json:"department" gorm:"size:100;not null"`
	Skills       string    `json:"skills" gorm:"type:text"`
	Availability float64   `json:"availability"` // percentage
	TotalHours   int       `json:"total_hours"`  // per week
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Assignments []Assignment `json:"-" gorm:"foreignKey:ManPowerID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for ManPower model
func (ManPower) TableName() string {
	return "man_power"
}
