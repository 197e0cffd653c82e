package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooking(status BookingStatus, start time.Time) *Booking {
	return &Booking{
		ID:         1,
		ProviderID: 10,
		ClientID:   20,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     status,
	}
}

func TestValidateTransition(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)

	cases := []struct {
		name    string
		status  BookingStatus
		target  BookingStatus
		role    ActorRole
		start   time.Time
		wantErr error
	}{
		{
			name:   "provider confirms pending",
			status: StatusPending, target: StatusConfirmed, role: RoleProvider, start: future,
		},
		{
			name:   "provider declines pending",
			status: StatusPending, target: StatusDeclined, role: RoleProvider, start: future,
		},
		{
			name:   "client cancels pending",
			status: StatusPending, target: StatusCancelled, role: RoleClient, start: future,
		},
		{
			name:   "provider cancels pending",
			status: StatusPending, target: StatusCancelled, role: RoleProvider, start: future,
		},
		{
			name:   "client cancels confirmed",
			status: StatusConfirmed, target: StatusCancelled, role: RoleClient, start: future,
		},
		{
			name:   "admin cancels confirmed",
			status: StatusConfirmed, target: StatusCancelled, role: RoleAdmin, start: future,
		},
		{
			name:   "provider completes confirmed after end",
			status: StatusConfirmed, target: StatusCompleted, role: RoleProvider, start: past,
		},
		{
			name:   "provider marks no-show after start",
			status: StatusConfirmed, target: StatusNoShow, role: RoleProvider, start: past,
		},
		{
			name:   "client cannot confirm",
			status: StatusPending, target: StatusConfirmed, role: RoleClient, start: future,
			wantErr: ErrTransitionNotAllowed,
		},
		{
			name:   "client cannot decline",
			status: StatusPending, target: StatusDeclined, role: RoleClient, start: future,
			wantErr: ErrTransitionNotAllowed,
		},
		{
			name:   "provider cannot cancel confirmed",
			status: StatusConfirmed, target: StatusCancelled, role: RoleProvider, start: future,
			wantErr: ErrTransitionNotAllowed,
		},
		{
			name:   "client cannot mark no-show",
			status: StatusConfirmed, target: StatusNoShow, role: RoleClient, start: past,
			wantErr: ErrTransitionNotAllowed,
		},
		{
			name:   "cannot complete pending",
			status: StatusPending, target: StatusCompleted, role: RoleProvider, start: past,
			wantErr: ErrInvalidTransition,
		},
		{
			name:   "cancelled is terminal",
			status: StatusCancelled, target: StatusConfirmed, role: RoleAdmin, start: future,
			wantErr: ErrInvalidTransition,
		},
		{
			name:   "completed is terminal",
			status: StatusCompleted, target: StatusCancelled, role: RoleAdmin, start: past,
			wantErr: ErrInvalidTransition,
		},
		{
			name:   "cannot complete before end",
			status: StatusConfirmed, target: StatusCompleted, role: RoleProvider, start: future,
			wantErr: ErrTooEarlyToComplete,
		},
		{
			name:   "cannot mark no-show before start",
			status: StatusConfirmed, target: StatusNoShow, role: RoleProvider, start: future,
			wantErr: ErrTooEarlyForNoShow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := testBooking(tc.status, tc.start)
			err := ValidateTransition(b, tc.target, tc.role, now)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusDeclined.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
}
