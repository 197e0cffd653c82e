package models

import (
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// Request модели

// AddWindowRequest запрос на добавление окна доступности
type AddWindowRequest struct {
	UserID      int64  `json:"userId"`
	Role        string `json:"role"`
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	StartTime   string `json:"startTime"` // HH:MM
	EndTime     string `json:"endTime"`   // HH:MM
	IsRecurring *bool  `json:"isRecurring,omitempty"`
}

// RemoveWindowRequest запрос на удаление окна доступности
type RemoveWindowRequest struct {
	UserID   int64  `json:"userId"`
	Role     string `json:"role"`
	WindowID int64  `json:"windowId"`
}

// Response модели

// WindowResponse ответ с данными окна доступности
type WindowResponse struct {
	ID          int64     `json:"id"`
	ProviderID  int64     `json:"providerId"`
	DayOfWeek   int       `json:"dayOfWeek"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	IsRecurring bool      `json:"isRecurring"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WindowListResponse ответ со списком окон доступности
type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
}

// Методы конвертации

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	if w == nil {
		return nil
	}

	return &WindowResponse{
		ID:          w.ID,
		ProviderID:  w.ProviderID,
		DayOfWeek:   w.DayOfWeek,
		StartTime:   w.StartTime.String(),
		EndTime:     w.EndTime.String(),
		IsRecurring: w.IsRecurring,
		CreatedAt:   w.CreatedAt,
	}
}

// FromDomainWindowList конвертирует список domain моделей в DTO
func FromDomainWindowList(windows []*domain.AvailabilityWindow) *WindowListResponse {
	resp := &WindowListResponse{
		Windows: make([]WindowResponse, 0, len(windows)),
	}

	for _, w := range windows {
		if windowResp := FromDomainWindow(w); windowResp != nil {
			resp.Windows = append(resp.Windows, *windowResp)
		}
	}

	return resp
}

// ToDomainWindow конвертирует AddWindowRequest в domain модель
// Валидация формата времени выполняется сервисным слоем до вызова
func (r *AddWindowRequest) ToDomainWindow(providerID int64) *domain.AvailabilityWindow {
	isRecurring := true
	if r.IsRecurring != nil {
		isRecurring = *r.IsRecurring
	}

	return &domain.AvailabilityWindow{
		ProviderID:  providerID,
		DayOfWeek:   r.DayOfWeek,
		StartTime:   types.TimeString(r.StartTime),
		EndTime:     types.TimeString(r.EndTime),
		IsRecurring: isRecurring,
	}
}
