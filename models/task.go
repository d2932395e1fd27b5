package models

import "time"

// Task is a unit of work under a project or a non-project activity
type Task struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Description  string    `json:"description" gorm:"type:text"`
	ProjectID    *uint     `json:"project_id" gorm:"index"`
	NonProjectID *uint     `json:"non_project_id" gorm:"index"`
	PIC          string    `json:"pic" gorm:"column:pic;size:100;not null"` // person in charge
	DueDate      string    `json:"due_date" gorm:"size:10;not null"`
	Status       string    `json:"status" gorm:"size:50;not null"`
	ActionPlan   string    `json:"action_plan" gorm:"type:text;not null"`
	Priority     string    `json:"priority" gorm:"size:20;not null;index"`
	Progress     float64   `json:"progress"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Owner returns the parent of the task
func (t Task) Owner() Owner {
	return ownerFromColumns(t.ProjectID, t.NonProjectID)
}

// SetOwner points the task at a new parent, clearing the other column
func (t *Task) SetOwner(o Owner) {
	t.ProjectID, t.NonProjectID = o.columns()
}
