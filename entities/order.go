package entities

const (
	OrderStatusPending        = "pending"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out-for-delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

type Order struct {
	ID             string  `gorm:"type:varchar(50);primary_key" json:"id"`
	UserID         string  `gorm:"type:varchar(50);index" json:"user_id"`
	TotalAmount    float64 `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status         string  `gorm:"type:varchar(20);not null" json:"status"`
	IdempotencyKey *string `gorm:"type:varchar(100);uniqueIndex" json:"idempotency_key,omitempty"`

	User  *User        `gorm:"foreignKey:UserID"`
	Items []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

type OrderItem struct {
	ID       string  `gorm:"type:varchar(50);primary_key" json:"id"`
	OrderID  string  `gorm:"type:varchar(50);index" json:"order_id"`
	MenuID   string  `gorm:"type:varchar(50);index" json:"menu_id"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	Order    *Order    `gorm:"foreignKey:OrderID"`
	MenuItem *MenuItem `gorm:"foreignKey:MenuID"`
	Timestamp
}
