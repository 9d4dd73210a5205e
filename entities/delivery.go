package entities

const (
	DeliveryStatusPending        = "pending"
	DeliveryStatusPreparing      = "preparing"
	DeliveryStatusOutForDelivery = "out-for-delivery"
	DeliveryStatusDelivered      = "delivered"
	DeliveryStatusCancelled      = "cancelled"
)

// DeliveryRecord tracks fulfillment for one order line: where the dish is
// picked up from and where it is dropped off.
type DeliveryRecord struct {
	ID               string `gorm:"type:varchar(50);primary_key" json:"id"`
	OrderID          string `gorm:"type:varchar(50);not null;index" json:"order_id"`
	MenuID           string `gorm:"type:varchar(50);not null" json:"menu_id"`
	Quantity         int    `gorm:"not null" json:"quantity"`
	DeliveryLocation string `gorm:"type:text;not null" json:"delivery_location"`
	PickupLocation   string `gorm:"type:text;not null" json:"pickup_location"`
	Status           string `gorm:"type:varchar(20);default:pending" json:"status"`

	Order    *Order    `gorm:"foreignKey:OrderID"`
	MenuItem *MenuItem `gorm:"foreignKey:MenuID"`
	Timestamp
}

func (DeliveryRecord) TableName() string {
	return "deliveries"
}
