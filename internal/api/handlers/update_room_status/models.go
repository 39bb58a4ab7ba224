package update_room_status

import (
	"github.com/m04kA/HMS-ReservationService/internal/service/rooms/models"
)

// UpdateRoomStatusRequest HTTP request model
type UpdateRoomStatusRequest struct {
	Status string `json:"status"`
	Force  bool   `json:"force,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateRoomStatusRequest) ToServiceRequest(actor string) *models.SetStatusRequest {
	return &models.SetStatusRequest{
		Status: r.Status,
		Actor:  actor,
		Force:  r.Force,
	}
}
