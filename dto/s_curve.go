package dto

// SCurve is a planned vs actual progress curve over the calendar months
type SCurve struct {
	Labels  []string  `json:"labels"`
	Planned []float64 `json:"planned"`
	Actual  []float64 `json:"actual"`
}
