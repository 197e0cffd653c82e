package domain

import "time"

// SessionBooking a capacity-counted booking of a group event.
// Multiple session bookings share the same (EventID, StartAt) slot up to
// the event's maximum capacity
type SessionBooking struct {
	ID             int64
	EventID        int64
	ClientID       int64
	StartAt        time.Time
	NumberOfPeople int
	Status         BookingStatus
	Price          float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive returns true if the session booking counts towards event capacity
func (s *SessionBooking) IsActive() bool {
	return s.Status == StatusPending || s.Status == StatusConfirmed
}
