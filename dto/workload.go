package dto

// WorkloadEntry is one person's staffing load
type WorkloadEntry struct {
	ManPowerID     uint    `json:"manpower_id"`
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	AvailableHours int     `json:"available_hours"`
	AssignedHours  int     `json:"assigned_hours"`
	Utilization    float64 `json:"utilization"` // percent, capped at 100
	OverAllocated  bool    `json:"over_allocated"`
	Assignments    int     `json:"assignments"`
}
