package dto

import "github.com/monitoring-dashboard/models"

// LocationPoint is a project placed on the dashboard map
type LocationPoint struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Status   string  `json:"status"`
	Priority string  `json:"priority"`
}

// SummaryResponse is the fleet-wide dashboard payload
type SummaryResponse struct {
	TotalProjects        int64            `json:"total_projects"`
	TotalNonProjects     int64            `json:"total_non_projects"`
	TotalManpower        int64            `json:"total_manpower"`
	TotalBudget          float64          `json:"total_budget"`
	TotalActual          float64          `json:"total_actual"`
	BudgetVariance       float64          `json:"budget_variance"`
	PriorityProjects     []models.Project `json:"priority_projects"`
	PriorityTasks        []models.Task    `json:"priority_tasks"`
	Locations            []LocationPoint  `json:"locations"`
	OverallSCurve        SCurve           `json:"overall_s_curve"`
	StatusDistribution   map[string]int   `json:"status_distribution"`
	PriorityDistribution map[string]int   `json:"priority_distribution"`
}
