package services

import (
	"math"
	"strconv"

	"github.com/monitoring-dashboard/dto"
)

// MonthLabels are the x axis of every progress curve
var MonthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Efficiency applied to actual progress in each half of the year
const (
	firstHalfEfficiency  = 0.8
	secondHalfEfficiency = 0.9
)

// OverallSCurve is the fleet-wide curve shown on the summary. It is a fixed
// reference shape and does not depend on stored data.
var OverallSCurve = dto.SCurve{
	Labels:  MonthLabels,
	Planned: []float64{10, 25, 45, 65, 80, 90, 95, 97, 98, 99, 100, 100},
	Actual:  []float64{8, 20, 38, 55, 70, 82, 88, 91, 93, 95, 96, 97},
}

// ProjectSCurve projects a project's scalar progress onto a 12 month curve.
// Planned is a linear ramp to 100; actual follows planned up to the project's
// progress, discounted by the efficiency of the half year. Dates are not used.
func ProjectSCurve(progress float64) dto.SCurve {
	curve := dto.SCurve{
		Labels:  append([]string(nil), MonthLabels...),
		Planned: make([]float64, len(MonthLabels)),
		Actual:  make([]float64, len(MonthLabels)),
	}

	months := float64(len(MonthLabels))
	for i := range MonthLabels {
		planned := round1(math.Min(100, float64(i+1)*100/months))
		curve.Planned[i] = planned

		efficiency := firstHalfEfficiency
		if i >= len(MonthLabels)/2 {
			efficiency = secondHalfEfficiency
		}
		curve.Actual[i] = round1(math.Min(progress, planned) * efficiency)
	}
	return curve
}

// round1 rounds the exact binary value to one decimal place, ties to even,
// so 2.25 becomes 2.2
func round1(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}
