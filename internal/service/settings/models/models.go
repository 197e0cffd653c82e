package models

import (
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек бронирования
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	UserID                  int64    `json:"userId"`
	Role                    string   `json:"role"`
	MinNoticeHours          *int     `json:"minNoticeHours,omitempty"`
	MaxAdvanceDays          *int     `json:"maxAdvanceDays,omitempty"`
	CancelAllowedUntilHours *int     `json:"cancelAllowedUntilHours,omitempty"`
	RefundPercentage        *int     `json:"refundPercentage,omitempty"`
	BufferTimeMinutes       *int     `json:"bufferTimeMinutes,omitempty"`
	DefaultDurationMinutes  *int     `json:"defaultDurationMinutes,omitempty"`
	DefaultHourlyPrice      *float64 `json:"defaultHourlyPrice,omitempty"`
}

// Response модели

// SettingsResponse ответ с настройками бронирования провайдера
type SettingsResponse struct {
	ProviderID              int64     `json:"providerId"`
	MinNoticeHours          int       `json:"minNoticeHours"`
	MaxAdvanceDays          int       `json:"maxAdvanceDays"`
	CancelAllowedUntilHours int       `json:"cancelAllowedUntilHours"`
	RefundPercentage        int       `json:"refundPercentage"`
	BufferTimeMinutes       int       `json:"bufferTimeMinutes"`
	DefaultDurationMinutes  int       `json:"defaultDurationMinutes"`
	DefaultHourlyPrice      float64   `json:"defaultHourlyPrice"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.ProviderSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	return &SettingsResponse{
		ProviderID:              s.ProviderID,
		MinNoticeHours:          s.MinNoticeHours,
		MaxAdvanceDays:          s.MaxAdvanceDays,
		CancelAllowedUntilHours: s.CancellationPolicy.AllowedUntilHours,
		RefundPercentage:        s.CancellationPolicy.RefundPercentage,
		BufferTimeMinutes:       s.BufferTimeMinutes,
		DefaultDurationMinutes:  s.DefaultDurationMinutes,
		DefaultHourlyPrice:      s.DefaultHourlyPrice,
		CreatedAt:               s.CreatedAt,
		UpdatedAt:               s.UpdatedAt,
	}
}

// ApplyToSettings применяет обновления к существующим настройкам
// Обновляются только непустые (not nil) поля из request
func (r *UpdateSettingsRequest) ApplyToSettings(s *domain.ProviderSettings) {
	if r.MinNoticeHours != nil {
		s.MinNoticeHours = *r.MinNoticeHours
	}
	if r.MaxAdvanceDays != nil {
		s.MaxAdvanceDays = *r.MaxAdvanceDays
	}
	if r.CancelAllowedUntilHours != nil {
		s.CancellationPolicy.AllowedUntilHours = *r.CancelAllowedUntilHours
	}
	if r.RefundPercentage != nil {
		s.CancellationPolicy.RefundPercentage = *r.RefundPercentage
	}
	if r.BufferTimeMinutes != nil {
		s.BufferTimeMinutes = *r.BufferTimeMinutes
	}
	if r.DefaultDurationMinutes != nil {
		s.DefaultDurationMinutes = *r.DefaultDurationMinutes
	}
	if r.DefaultHourlyPrice != nil {
		s.DefaultHourlyPrice = *r.DefaultHourlyPrice
	}
}
