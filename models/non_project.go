package models

import "time"

// Non-project categories. The set is open.
const (
	CategoryInternal    = "Internal"
	CategoryMeeting     = "Meeting"
	CategoryTraining    = "Training"
	CategoryMaintenance = "Maintenance"
)

// NonProject is an activity tracked outside of projects: meetings, training, upkeep
type NonProject struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Category    string    `json:"category" gorm:"size:50;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Status      string    `json:"status" gorm:"size:50;not null"`
	StartDate   string    `json:"start_date" gorm:"size:10;not null"`
	EndDate     string    `json:"end_date" gorm:"size:10;not null"`
	Budget      float64   `json:"budget" gorm:"not null"`
	ActualCost  float64   `json:"actual_cost"`
	Progress    float64   `json:"progress"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Tasks       []Task       `json:"-" gorm:"foreignKey:NonProjectID;constraint:OnDelete:CASCADE"`
	Assignments []Assignment `json:"-" gorm:"foreignKey:NonProjectID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for NonProject model
func (NonProject) TableName() string {
	return "non_projects"
}
