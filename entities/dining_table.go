package entities

const (
	TableStatusAvailable = "Available"
	TableStatusReserved  = "Reserved"
	TableStatusOccupied  = "Occupied"
)

type DiningTable struct {
	ID           string `gorm:"type:varchar(50);primary_key" json:"id"`
	Number       int    `gorm:"not null;uniqueIndex" json:"number"`
	Capacity     int    `gorm:"not null" json:"capacity"`
	Status       string `gorm:"type:varchar(20);not null" json:"status"`
	CustomerName string `gorm:"type:varchar(100)" json:"customer_name,omitempty"`

	Timestamp
}
