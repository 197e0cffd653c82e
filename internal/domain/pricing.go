package domain

import "math"

// CalculatePrice computes the total price of a booking from the provider's
// hourly rate, the duration and the number of participants.
// The first participant pays the base price; each additional one adds
// ParticipantSurcharge (30%) of the base. The result is rounded to the
// nearest whole currency unit
func CalculatePrice(hourlyRate float64, durationMinutes int, participants int) float64 {
	if participants < 1 {
		participants = 1
	}

	base := hourlyRate * float64(durationMinutes) / 60.0
	multiplier := 1.0 + float64(participants-1)*ParticipantSurcharge

	return math.Round(base * multiplier)
}

// RefundAmount computes the refund for an accepted cancellation,
// rounded to cents
func RefundAmount(price float64, refundPercentage int) float64 {
	refund := price * float64(refundPercentage) / 100.0
	return math.Round(refund*100) / 100
}
