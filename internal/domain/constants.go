package domain

// Default provider settings values
const (
	DefaultMinNoticeHours          = 24
	DefaultMaxAdvanceDays          = 30
	DefaultCancelAllowedUntilHours = 24
	DefaultRefundPercentage        = 100
	DefaultBufferTimeMinutes       = 15
	DefaultDurationMinutes         = 60
	DefaultHourlyPrice             = 50.0
)

// Business validation constants
const (
	MinNoticeHours        = 0
	MinAdvanceDays        = 1
	MaxAdvanceDaysLimit   = 365 // 1 year
	MinRefundPercentage   = 0
	MaxRefundPercentage   = 100
	MinCancelAllowedHours = 0
	MinBufferTimeMinutes  = 0
	MinDurationMinutes    = 15
	MaxDurationMinutes    = 480 // 8 hours
	MinHourlyPrice        = 0.0
	MaxParticipants       = 50
	MaxNotesLength        = 500
	MaxLocationLength     = 255
	MaxServiceTypeLength  = 100

	MinDayOfWeek = 0 // Sunday
	MaxDayOfWeek = 6
)

// ParticipantSurcharge is the price multiplier increment per participant
// beyond the first (each extra participant adds 30% of the base price)
const ParticipantSurcharge = 0.3

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses statuses that occupy provider time and count towards capacity
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses statuses that permit no further transitions
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusDeclined,
	StatusNoShow,
}
