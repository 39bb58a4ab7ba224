package models

import (
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// Request модели

// SetStatusRequest запрос на смену операционного статуса номера
type SetStatusRequest struct {
	Status string `json:"status"`
	Actor  string `json:"actor"`           // Идентификатор сотрудника для аудита
	Force  bool   `json:"force,omitempty"` // Явное подтверждение для занятого номера
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID         int64  `json:"id"`
	Number     string `json:"number"`
	Floor      int    `json:"floor"`
	RoomTypeID int64  `json:"roomTypeId"`
	Status     string `json:"status"`
	IsActive   bool   `json:"isActive"`

	// Данные типа номера (если загружены)
	TypeName         string   `json:"typeName,omitempty"`
	BasePrice        int64    `json:"basePrice,omitempty"`
	MaxOccupancy     int      `json:"maxOccupancy,omitempty"`
	SizeSqm          float64  `json:"sizeSqm,omitempty"`
	Amenities        []string `json:"amenities,omitempty"`
	BedConfiguration string   `json:"bedConfiguration,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:         r.ID,
		Number:     r.Number,
		Floor:      r.Floor,
		RoomTypeID: r.RoomTypeID,
		Status:     string(r.Status),
		IsActive:   r.IsActive,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// FromDomainRoomWithType конвертирует номер вместе с данными типа
func FromDomainRoomWithType(r *domain.Room, t *domain.RoomType) *RoomResponse {
	resp := FromDomainRoom(r)
	if resp == nil || t == nil {
		return resp
	}

	resp.TypeName = t.Name
	resp.BasePrice = t.BasePrice
	resp.MaxOccupancy = t.MaxOccupancy
	resp.SizeSqm = t.SizeSqm
	resp.Amenities = t.Amenities
	resp.BedConfiguration = t.BedConfiguration

	return resp
}
