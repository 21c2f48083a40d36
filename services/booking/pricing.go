package booking

import "math"

// DeriveCost computes the default booking cost from the provider's hourly
// rate and the slot duration in minutes, rounded to cents.
func DeriveCost(hourlyRate float64, durationMinutes int) float64 {
	cost := hourlyRate * float64(durationMinutes) / 60
	return math.Round(cost*100) / 100
}
