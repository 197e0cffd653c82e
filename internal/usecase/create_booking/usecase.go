package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	directoryClient "github.com/m04kA/EDU-SchedulingService/internal/integrations/directory"
	"github.com/m04kA/EDU-SchedulingService/internal/integrations/notify"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// UseCase use case создания эксклюзивного бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	settings         SettingsProvider
	directory        DirectoryClient
	payments         PaymentsClient
	notifier         NotifyClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	settings SettingsProvider,
	directory DirectoryClient,
	payments PaymentsClient,
	notifier NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		settings:         settings,
		directory:        directory,
		payments:         payments,
		notifier:         notifier,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликтов и запись выполняются в одной сериализуемой транзакции,
// чтобы два конкурирующих запроса на один слот не прошли оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, provider=%d, start=%s, participants=%d",
		req.ClientID, req.ProviderID, req.StartTime.Format("2006-01-02 15:04"), req.Participants)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем провайдера из каталога
	// При недоступности каталога деградируем до базовой ставки из настроек
	var hourlyRate *float64
	provider, err := uc.directory.GetProviderWithGracefulDegradation(ctx, req.ProviderID)
	switch {
	case err == nil:
		if !provider.IsActive {
			uc.logger.Warn("CreateBooking: provider id=%d is inactive", req.ProviderID)
			return nil, ErrProviderInactive
		}
		hourlyRate = provider.HourlyRate
	case errors.Is(err, directoryClient.ErrProviderNotFound):
		uc.logger.Warn("CreateBooking: provider id=%d not found", req.ProviderID)
		return nil, ErrProviderNotFound
	case errors.Is(err, directoryClient.ErrServiceDegraded):
		uc.logger.Warn("CreateBooking: directory degraded, falling back to default hourly price for provider=%d", req.ProviderID)
	default:
		uc.logger.Error("CreateBooking: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Настройки провайдера (лениво создаются с дефолтами)
		settings, err := uc.settings.GetDomain(txCtx, req.ProviderID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get settings for provider=%d: %v", req.ProviderID, err)
			return fmt.Errorf("%w: failed to get settings: %w", ErrInternal, err)
		}

		// 3.2. Длительность: из запроса или дефолт из настроек
		durationMinutes := settings.DefaultDurationMinutes
		if req.DurationMinutes != nil {
			durationMinutes = *req.DurationMinutes
		}
		if err := validateDuration(durationMinutes); err != nil {
			uc.logger.Warn("CreateBooking: duration validation failed: %v", err)
			return err
		}

		startTime := req.StartTime
		endTime := startTime.Add(time.Duration(durationMinutes) * time.Minute)

		// 3.3. Проверка minNoticeHours и maxAdvanceDays
		if err := validateNotice(startTime, now, settings.MinNoticeHours); err != nil {
			uc.logger.Warn("CreateBooking: notice validation failed: %v", err)
			return err
		}
		if err := validateAdvance(startTime, now, settings.MaxAdvanceDays); err != nil {
			uc.logger.Warn("CreateBooking: advance validation failed: %v", err)
			return err
		}

		// 3.4. Слот должен целиком попадать в окно недельного расписания
		if err := uc.checkAvailability(txCtx, req.ProviderID, startTime, endTime); err != nil {
			return err
		}

		// 3.5. Ищем активные бронирования, пересекающие слот с учетом буфера
		// Внутри транзакции выборка берет блокировку FOR UPDATE
		buffer := time.Duration(settings.BufferTimeMinutes) * time.Minute
		overlapFrom := startTime.Add(-buffer)
		overlapTo := endTime.Add(buffer)

		filter := domain.BookingsFilter{
			ProviderID:   &req.ProviderID,
			ActiveOnly:   true,
			OverlapsFrom: &overlapFrom,
			OverlapsTo:   &overlapTo,
		}

		conflicting, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %w", ErrInternal, err)
		}

		if len(conflicting) > 0 {
			uc.logger.Warn("CreateBooking: slot %s-%s conflicts with booking id=%d",
				startTime.Format("15:04"), endTime.Format("15:04"), conflicting[0].ID)
			return fmt.Errorf("%w: conflicts with booking id=%d", ErrSlotConflict, conflicting[0].ID)
		}

		// 3.6. Цена: ставка провайдера из каталога или дефолт из настроек
		rate := settings.DefaultHourlyPrice
		if hourlyRate != nil {
			rate = *hourlyRate
		}
		price := domain.CalculatePrice(rate, durationMinutes, req.Participants)

		// 3.7. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			ProviderID:      req.ProviderID,
			ClientID:        req.ClientID,
			ServiceType:     req.ServiceType,
			StartTime:       startTime,
			EndTime:         endTime,
			DurationMinutes: durationMinutes,
			Participants:    req.Participants,
			Status:          domain.StatusPending,
			Price:           price,
			Location:        req.Location,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, price=%.2f", result.ID, result.Price)

	// 4. Пост-транзакционные эффекты: не откатывают уже записанное бронирование
	if err := uc.payments.RegisterCharge(ctx, result.ID, result.Price); err != nil {
		uc.logger.Error("CreateBooking: failed to register charge for booking id=%d: %v", result.ID, err)
	}

	uc.notifier.BookingCreated(ctx, notify.BookingCreatedEvent{
		BookingID:  result.ID,
		ProviderID: result.ProviderID,
		ClientID:   result.ClientID,
		StartTime:  result.StartTime,
		Price:      result.Price,
	})

	return toResponse(result), nil
}

// checkAvailability проверяет, что слот целиком лежит в одном окне расписания
func (uc *UseCase) checkAvailability(ctx context.Context, providerID int64, startTime, endTime time.Time) error {
	// Окна описывают время внутри одного дня; слот через полночь в них не попадает
	sy, sm, sd := startTime.Date()
	ey, em, ed := endTime.Date()
	if sy != ey || sm != em || sd != ed {
		uc.logger.Warn("CreateBooking: slot crosses midnight, start=%s", startTime.Format(time.RFC3339))
		return ErrOutsideAvailability
	}

	dayOfWeek := int(startTime.Weekday())

	windows, err := uc.availabilityRepo.GetByProviderAndDay(ctx, providerID, dayOfWeek)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get availability for provider=%d: %v", providerID, err)
		return fmt.Errorf("%w: failed to get availability: %w", ErrInternal, err)
	}

	from := types.NewTimeString(startTime)
	to := types.NewTimeString(endTime)

	if domain.WindowCovering(windows, dayOfWeek, from, to) == nil {
		uc.logger.Warn("CreateBooking: slot %s-%s (day=%d) is outside provider=%d availability",
			from, to, dayOfWeek, providerID)
		return ErrOutsideAvailability
	}

	return nil
}

// toResponse конвертирует доменную модель в response
func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		ProviderID:      b.ProviderID,
		ClientID:        b.ClientID,
		ServiceType:     b.ServiceType,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		DurationMinutes: b.DurationMinutes,
		Participants:    b.Participants,
		Status:          string(b.Status),
		Price:           b.Price,
		Location:        b.Location,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
