package entities

import (
	"time"
)

const (
	ReservationStatusPending   = "Pending"
	ReservationStatusConfirmed = "Confirmed"
	ReservationStatusCancelled = "Cancelled"
)

type Reservation struct {
	ID           string    `gorm:"type:varchar(50);primary_key" json:"id"`
	UserID       string    `gorm:"type:varchar(50);index" json:"user_id"`
	CustomerName string    `gorm:"type:varchar(100);not null" json:"customer_name"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone"`
	PartySize    int       `gorm:"not null" json:"party_size"`
	ReservedFor  time.Time `gorm:"type:timestamp;not null" json:"reserved_for"`
	TableNumber  int       `json:"table_number"`
	Status       string    `gorm:"type:varchar(20);not null" json:"status"`
	SpecialNotes string    `gorm:"type:text" json:"special_notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
