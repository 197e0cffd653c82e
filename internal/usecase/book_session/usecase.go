package book_session

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	directoryClient "github.com/m04kA/EDU-SchedulingService/internal/integrations/directory"
	"github.com/m04kA/EDU-SchedulingService/internal/integrations/notify"
)

// UseCase use case бронирования мест в групповом событии
// В отличие от эксклюзивных бронирований конфликт здесь считается по
// вместимости: сумма мест активных бронирований сессии не должна
// превышать maxCapacity события
type UseCase struct {
	sessionRepo  SessionRepository
	directory    DirectoryClient
	payments     PaymentsClient
	notifier     NotifyClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	directory DirectoryClient,
	payments PaymentsClient,
	notifier NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		directory:    directory,
		payments:     payments,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет бронирование мест в сессии события
// Подсчет занятых мест и запись выполняются в сериализуемой транзакции:
// FOR UPDATE на агрегат не взять, корректность конкурентных бронирований
// обеспечивает изоляция SERIALIZABLE и повтор на 40001
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSession: client=%d, event=%d, start=%s, people=%d",
		req.ClientID, req.EventID, req.StartAt.Format("2006-01-02 15:04"), req.NumberOfPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSession: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if !req.StartAt.After(now) {
		uc.logger.Warn("BookSession: session start %s is in the past", req.StartAt.Format("2006-01-02 15:04"))
		return nil, ErrSessionInPast
	}

	// 2. Получаем событие из каталога
	event, err := uc.directory.GetEvent(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrEventNotFound) {
			uc.logger.Warn("BookSession: event id=%d not found", req.EventID)
			return nil, ErrEventNotFound
		}
		uc.logger.Error("BookSession: failed to get event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	if !event.IsActive {
		uc.logger.Warn("BookSession: event id=%d is inactive", req.EventID)
		return nil, ErrEventInactive
	}

	var result *domain.SessionBooking
	var seatsLeft int

	// 3. Проверка вместимости и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		taken, err := uc.sessionRepo.SumActivePeople(txCtx, req.EventID, req.StartAt)
		if err != nil {
			uc.logger.Error("BookSession: failed to sum active people for event=%d: %v", req.EventID, err)
			return fmt.Errorf("%w: failed to count taken seats: %w", ErrInternal, err)
		}

		if taken+req.NumberOfPeople > event.MaxCapacity {
			uc.logger.Warn("BookSession: event id=%d capacity exceeded, taken=%d, requested=%d, max=%d",
				req.EventID, taken, req.NumberOfPeople, event.MaxCapacity)
			return fmt.Errorf("%w: %d of %d seats taken, %d requested",
				ErrCapacityExceeded, taken, event.MaxCapacity, req.NumberOfPeople)
		}

		price := math.Round(event.SeatPrice*float64(req.NumberOfPeople)*100) / 100

		booking := &domain.SessionBooking{
			EventID:        req.EventID,
			ClientID:       req.ClientID,
			StartAt:        req.StartAt,
			NumberOfPeople: req.NumberOfPeople,
			Status:         domain.StatusConfirmed,
			Price:          price,
		}

		created, err := uc.sessionRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("BookSession: failed to create session booking: %v", err)
			return fmt.Errorf("%w: failed to create session booking: %w", ErrInternal, err)
		}

		result = created
		seatsLeft = event.MaxCapacity - taken - req.NumberOfPeople
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSession: successfully created session booking id=%d, seats left=%d", result.ID, seatsLeft)

	// 4. Пост-транзакционные эффекты
	if err := uc.payments.RegisterCharge(ctx, result.ID, result.Price); err != nil {
		uc.logger.Error("BookSession: failed to register charge for session booking id=%d: %v", result.ID, err)
	}

	uc.notifier.BookingCreated(ctx, notify.BookingCreatedEvent{
		BookingID:  result.ID,
		ProviderID: event.ProviderID,
		ClientID:   result.ClientID,
		StartTime:  result.StartAt,
		Price:      result.Price,
	})

	return &Response{
		ID:             result.ID,
		EventID:        result.EventID,
		ClientID:       result.ClientID,
		StartAt:        result.StartAt,
		NumberOfPeople: result.NumberOfPeople,
		Status:         string(result.Status),
		Price:          result.Price,
		SeatsLeft:      seatsLeft,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.EventID <= 0 {
		return fmt.Errorf("%w: eventID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.NumberOfPeople < 1 || req.NumberOfPeople > domain.MaxParticipants {
		return fmt.Errorf("%w: numberOfPeople must be between 1 and %d", ErrInvalidInput, domain.MaxParticipants)
	}

	return nil
}
