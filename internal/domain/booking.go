package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusDeclined  BookingStatus = "declined"
	StatusNoShow    BookingStatus = "no_show"
)

// ActorRole identifies who is acting on a booking
type ActorRole string

const (
	RoleClient   ActorRole = "client"
	RoleProvider ActorRole = "provider"
	RoleAdmin    ActorRole = "admin"
)

// Booking represents an exclusive one-to-one booking of a provider's time
type Booking struct {
	ID              int64
	ProviderID      int64
	ClientID        int64
	ServiceType     string
	StartTime       time.Time
	EndTime         time.Time // invariant: EndTime = StartTime + DurationMinutes
	DurationMinutes int
	Participants    int
	Status          BookingStatus
	Price           float64

	Location *string
	Notes    *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies the provider's time
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if no further transitions are permitted
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// IsParty returns true if the user is the client or the provider of the booking
func (b *Booking) IsParty(userID int64) bool {
	return b.ClientID == userID || b.ProviderID == userID
}

// IsTerminal returns true for states that permit no further transitions
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusDeclined, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsValid returns true if s is a member of the closed status enumeration
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusDeclined, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsValid returns true if r is a known actor role
func (r ActorRole) IsValid() bool {
	switch r {
	case RoleClient, RoleProvider, RoleAdmin:
		return true
	default:
		return false
	}
}

// BookingsFilter filter for booking list queries
type BookingsFilter struct {
	ProviderID   *int64
	ClientID     *int64
	Status       *BookingStatus
	UpcomingOnly bool
	ActiveOnly   bool
	// OverlapsFrom/OverlapsTo select bookings whose [start, end) interval
	// overlaps [OverlapsFrom, OverlapsTo); both are set together.
	// Used by the conflict check inside the booking transaction
	OverlapsFrom *time.Time
	OverlapsTo   *time.Time
}
