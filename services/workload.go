package services

import (
	"github.com/monitoring-dashboard/dto"
	"github.com/monitoring-dashboard/models"
)

// Workload rolls active assignment hours up per person. People are returned in
// the order given; assignments of unknown people are ignored.
func Workload(people []models.ManPower, assignments []models.Assignment) []dto.WorkloadEntry {
	hours := make(map[uint]int)
	counts := make(map[uint]int)
	for _, a := range assignments {
		if !a.IsActive() {
			continue
		}
		hours[a.ManPowerID] += a.HoursPerWeek
		counts[a.ManPowerID]++
	}

	out := make([]dto.WorkloadEntry, 0, len(people))
	for _, p := range people {
		available := p.TotalHours
		if available <= 0 {
			available = models.DefaultWeeklyHours
		}
		assigned := hours[p.ID]

		utilization := round1(float64(assigned) / float64(available) * 100)
		if utilization > 100 {
			utilization = 100
		}

		out = append(out, dto.WorkloadEntry{
			ManPowerID:     p.ID,
			Name:           p.Name,
			Department:     p.Department,
			AvailableHours: available,
			AssignedHours:  assigned,
			Utilization:    utilization,
			OverAllocated:  assigned > available,
			Assignments:    counts[p.ID],
		})
	}
	return out
}
