package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidTransition returned when the target status is not reachable from the current one
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrTransitionNotAllowed returned when the actor's role may not perform this transition
	ErrTransitionNotAllowed = errors.New("domain: transition not allowed for this role")

	// ErrTooEarlyToComplete returned when completing a booking before its end time
	ErrTooEarlyToComplete = errors.New("domain: booking cannot be completed before its end time")

	// ErrTooEarlyForNoShow returned when marking no-show before the booking started
	ErrTooEarlyForNoShow = errors.New("domain: no-show cannot be recorded before the start time")
)

// transitionRule describes one edge of the booking state machine
type transitionRule struct {
	roles []ActorRole
	// afterStart/afterEnd gate transitions on booking time having passed
	afterStart bool
	afterEnd   bool
}

// transitions is the closed transition table of the booking state machine.
// Terminal states (completed, cancelled, declined, no_show) have no outgoing
// edges, so illegal walks fail here rather than in scattered call sites
var transitions = map[BookingStatus]map[BookingStatus]transitionRule{
	StatusPending: {
		StatusConfirmed: {roles: []ActorRole{RoleProvider}},
		StatusCancelled: {roles: []ActorRole{RoleClient, RoleProvider, RoleAdmin}},
		StatusDeclined:  {roles: []ActorRole{RoleProvider}},
	},
	StatusConfirmed: {
		StatusCompleted: {roles: []ActorRole{RoleProvider}, afterEnd: true},
		StatusCancelled: {roles: []ActorRole{RoleClient, RoleAdmin}},
		StatusNoShow:    {roles: []ActorRole{RoleProvider}, afterStart: true},
	},
}

// ValidateTransition checks a single transition of the state machine:
// the edge must exist, the actor role must be permitted on it, and
// time-gated edges (complete, no-show) require the moment to have passed.
// The cancellation-policy cutoff for confirmed bookings is enforced
// separately, because it needs the provider's settings
func ValidateTransition(b *Booking, target BookingStatus, role ActorRole, now time.Time) error {
	rules, ok := transitions[b.Status]
	if !ok {
		// current status is terminal
		return ErrInvalidTransition
	}

	rule, ok := rules[target]
	if !ok {
		return ErrInvalidTransition
	}

	if !roleAllowed(rule.roles, role) {
		return ErrTransitionNotAllowed
	}

	if rule.afterEnd && now.Before(b.EndTime) {
		return ErrTooEarlyToComplete
	}
	if rule.afterStart && now.Before(b.StartTime) {
		return ErrTooEarlyForNoShow
	}

	return nil
}

func roleAllowed(allowed []ActorRole, role ActorRole) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
