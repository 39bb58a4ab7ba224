package find_available_rooms

import (
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// Request модель запроса подбора доступных номеров
type Request struct {
	CheckIn  types.DateString // Дата заезда
	CheckOut types.DateString // Дата выезда (не входит в проживание)
	Guests   int              // Общее число гостей (взрослые + дети)
}

// AvailableRoom доступный номер с данными типа и стоимостью проживания
type AvailableRoom struct {
	RoomID           int64    `json:"roomId"`
	Number           string   `json:"number"`
	Floor            int      `json:"floor"`
	RoomTypeID       int64    `json:"roomTypeId"`
	RoomTypeName     string   `json:"roomTypeName"`
	MaxOccupancy     int      `json:"maxOccupancy"`
	SizeSqm          float64  `json:"sizeSqm"`
	Amenities        []string `json:"amenities"`
	BedConfiguration string   `json:"bedConfiguration"`
	NightlyRate      int64    `json:"nightlyRate"`  // В минорных единицах
	StayTotal        int64    `json:"stayTotal"`    // NightlyRate × ночи, без налога
}

// Response модель ответа подбора доступных номеров
type Response struct {
	CheckIn  string           `json:"checkIn"`
	CheckOut string           `json:"checkOut"`
	Nights   int              `json:"nights"`
	Rooms    []*AvailableRoom `json:"rooms"`
}
