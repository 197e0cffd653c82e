package domain

import "time"

// CancellationPolicy describes how late a client may cancel a confirmed
// booking and which share of the price is refunded on accepted cancellation
type CancellationPolicy struct {
	AllowedUntilHours int // cancellation is rejected closer than this to the start time
	RefundPercentage  int // 0-100
}

// ProviderSettings per-provider booking policy, one record per provider.
// Created lazily with defaults on first read
type ProviderSettings struct {
	ProviderID             int64
	MinNoticeHours         int
	MaxAdvanceDays         int
	CancellationPolicy     CancellationPolicy
	BufferTimeMinutes      int
	DefaultDurationMinutes int
	DefaultHourlyPrice     float64
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// DefaultSettings returns the settings applied to a provider that has
// never configured anything
func DefaultSettings(providerID int64) *ProviderSettings {
	return &ProviderSettings{
		ProviderID:     providerID,
		MinNoticeHours: DefaultMinNoticeHours,
		MaxAdvanceDays: DefaultMaxAdvanceDays,
		CancellationPolicy: CancellationPolicy{
			AllowedUntilHours: DefaultCancelAllowedUntilHours,
			RefundPercentage:  DefaultRefundPercentage,
		},
		BufferTimeMinutes:      DefaultBufferTimeMinutes,
		DefaultDurationMinutes: DefaultDurationMinutes,
		DefaultHourlyPrice:     DefaultHourlyPrice,
	}
}

// CancellationAllowed reports whether a client cancellation of a booking
// starting at startTime is still within the policy cutoff
func (p CancellationPolicy) CancellationAllowed(startTime, now time.Time) bool {
	cutoff := startTime.Add(-time.Duration(p.AllowedUntilHours) * time.Hour)
	return !now.After(cutoff)
}
