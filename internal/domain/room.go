package domain

import "time"

// Room физический номер отеля.
// Номера никогда не удаляются: выведенный из эксплуатации номер
// деактивируется (IsActive = false), чтобы сохранить историю бронирований.
type Room struct {
	ID         int64
	Number     string // Человекочитаемый номер ("101"), уникален
	Floor      int
	RoomTypeID int64
	Status     RoomStatus
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RoomType тип номера. Неизменяем в рамках бронирования:
// тариф снимается в RoomAssignment в момент назначения номера
// и не зависит от последующих изменений базовой цены.
type RoomType struct {
	ID               int64
	Name             string
	BasePrice        int64 // Цена за ночь в минорных единицах валюты
	MaxOccupancy     int
	SizeSqm          float64
	Amenities        []string
	BedConfiguration string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BookableRoom номер вместе с данными типа — кандидат для подбора доступности
type BookableRoom struct {
	Room Room
	Type RoomType
}

// NightlyRate возвращает текущую базовую цену за ночь для номера
func (b *BookableRoom) NightlyRate() int64 {
	return b.Type.BasePrice
}
