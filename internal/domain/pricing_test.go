package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePrice(t *testing.T) {
	cases := []struct {
		name            string
		hourlyRate      float64
		durationMinutes int
		participants    int
		expected        float64
	}{
		{
			name:            "two hours single participant",
			hourlyRate:      50,
			durationMinutes: 120,
			participants:    1,
			expected:        100,
		},
		{
			name:            "two hours three participants",
			hourlyRate:      50,
			durationMinutes: 120,
			participants:    3,
			expected:        160,
		},
		{
			name:            "one hour single participant",
			hourlyRate:      50,
			durationMinutes: 60,
			participants:    1,
			expected:        50,
		},
		{
			name:            "half hour two participants",
			hourlyRate:      60,
			durationMinutes: 30,
			participants:    2,
			expected:        39,
		},
		{
			name:            "fractional result rounds to nearest unit",
			hourlyRate:      35,
			durationMinutes: 45,
			participants:    1,
			expected:        26, // 26.25 -> 26
		},
		{
			name:            "zero participants treated as one",
			hourlyRate:      50,
			durationMinutes: 60,
			participants:    0,
			expected:        50,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculatePrice(tc.hourlyRate, tc.durationMinutes, tc.participants)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestRefundAmount(t *testing.T) {
	cases := []struct {
		name             string
		price            float64
		refundPercentage int
		expected         float64
	}{
		{name: "full refund", price: 160, refundPercentage: 100, expected: 160},
		{name: "half refund", price: 100, refundPercentage: 50, expected: 50},
		{name: "no refund", price: 100, refundPercentage: 0, expected: 0},
		{name: "rounds to cents", price: 99.99, refundPercentage: 33, expected: 33.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RefundAmount(tc.price, tc.refundPercentage)
			assert.Equal(t, tc.expected, got)
		})
	}
}
