package entities

const (
	PaymentStatusPending    = "Pending"
	PaymentStatusSettlement = "Settlement"
	PaymentStatusExpired    = "Expired"
	PaymentStatusCancelled  = "Cancelled"
)

type PaymentTransaction struct {
	ID          string  `gorm:"type:varchar(50);primary_key" json:"id"`
	OrderID     string  `gorm:"type:varchar(50);not null;index" json:"order_id"`
	GrossAmount float64 `gorm:"type:decimal(10,2);not null" json:"gross_amount"`
	Method      string  `gorm:"type:varchar(50)" json:"method,omitempty"`
	SnapToken   string  `gorm:"type:text" json:"snap_token,omitempty"`
	RedirectURL string  `gorm:"type:text" json:"redirect_url,omitempty"`
	Status      string  `gorm:"type:varchar(20);not null" json:"status"`

	Order *Order `gorm:"foreignKey:OrderID"`
	Timestamp
}
