package services

import (
	"sort"

	"github.com/monitoring-dashboard/dto"
	"github.com/monitoring-dashboard/models"
)

// PriorityListLimit caps the priority project and task lists on the summary
const PriorityListLimit = 5

// SummaryInput is a consistent snapshot of the store taken for one summary
type SummaryInput struct {
	Projects      []models.Project
	NonProjects   []models.NonProject
	Tasks         []models.Task
	ManPowerCount int64
}

// Summarize computes the dashboard summary from a snapshot. Totals and
// distributions are derived from the same slices, so
// total_budget - total_actual == budget_variance and the status counts add up
// to total_projects.
func Summarize(in SummaryInput) dto.SummaryResponse {
	summary := dto.SummaryResponse{
		TotalProjects:        int64(len(in.Projects)),
		TotalNonProjects:     int64(len(in.NonProjects)),
		TotalManpower:        in.ManPowerCount,
		PriorityProjects:     priorityProjects(in.Projects),
		PriorityTasks:        priorityTasks(in.Tasks),
		Locations:            make([]dto.LocationPoint, 0),
		OverallSCurve:        copyCurve(OverallSCurve),
		StatusDistribution:   make(map[string]int),
		PriorityDistribution: make(map[string]int),
	}

	for _, p := range in.Projects {
		summary.TotalBudget += p.Budget
		summary.TotalActual += p.ActualCost
		summary.StatusDistribution[p.Status]++
		summary.PriorityDistribution[p.Priority]++

		if p.HasCoordinates() {
			summary.Locations = append(summary.Locations, dto.LocationPoint{
				Name:     p.Name,
				Location: p.Location,
				Lat:      *p.Latitude,
				Lng:      *p.Longitude,
				Status:   p.Status,
				Priority: p.Priority,
			})
		}
	}
	for _, np := range in.NonProjects {
		summary.TotalBudget += np.Budget
		summary.TotalActual += np.ActualCost
	}
	summary.BudgetVariance = summary.TotalBudget - summary.TotalActual

	return summary
}

// priorityProjects returns the High/Critical projects that end soonest.
// End dates are compared as strings, which orders YYYY-MM-DD correctly.
func priorityProjects(projects []models.Project) []models.Project {
	out := make([]models.Project, 0, PriorityListLimit)
	for _, p := range projects {
		if models.IsUrgent(p.Priority) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EndDate < out[j].EndDate })
	if len(out) > PriorityListLimit {
		out = out[:PriorityListLimit]
	}
	return out
}

// priorityTasks returns the High/Critical tasks due soonest
func priorityTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, 0, PriorityListLimit)
	for _, t := range tasks {
		if models.IsUrgent(t.Priority) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate < out[j].DueDate })
	if len(out) > PriorityListLimit {
		out = out[:PriorityListLimit]
	}
	return out
}

func copyCurve(c dto.SCurve) dto.SCurve {
	return dto.SCurve{
		Labels:  append([]string(nil), c.Labels...),
		Planned: append([]float64(nil), c.Planned...),
		Actual:  append([]float64(nil), c.Actual...),
	}
}
