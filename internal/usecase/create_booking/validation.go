package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if req.ClientID == req.ProviderID {
		return fmt.Errorf("%w: provider cannot book own time", ErrInvalidInput)
	}

	if req.ServiceType == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}
	if len(req.ServiceType) > domain.MaxServiceTypeLength {
		return fmt.Errorf("%w: serviceType must not exceed %d characters", ErrInvalidInput, domain.MaxServiceTypeLength)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.Participants < 1 || req.Participants > domain.MaxParticipants {
		return fmt.Errorf("%w: numberOfPeople must be between 1 and %d", ErrInvalidInput, domain.MaxParticipants)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Location != nil && len(*req.Location) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location must not exceed %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}

	return nil
}

// validateDuration проверяет длительность после подстановки дефолта из настроек
func validateDuration(durationMinutes int) error {
	if durationMinutes < domain.MinDurationMinutes || durationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	return nil
}

// validateNotice проверяет, что до начала слота остается не меньше minNoticeHours
func validateNotice(startTime, now time.Time, minNoticeHours int) error {
	earliest := now.Add(time.Duration(minNoticeHours) * time.Hour)
	if startTime.Before(earliest) {
		return fmt.Errorf("%w: must book at least %d hours in advance", ErrTooLateToBook, minNoticeHours)
	}
	return nil
}

// validateAdvance проверяет, что начало слота не дальше maxAdvanceDays от текущего момента
func validateAdvance(startTime, now time.Time, maxAdvanceDays int) error {
	latest := now.AddDate(0, 0, maxAdvanceDays)
	if startTime.After(latest) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceDays)
	}
	return nil
}
