package entities

type MenuItem struct {
	ID                 string  `gorm:"type:varchar(50);primary_key" json:"id"`
	Name               string  `gorm:"type:varchar(100);not null" json:"name"`
	Description        string  `gorm:"type:text" json:"description,omitempty"`
	Price              float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Category           string  `gorm:"type:varchar(50);not null" json:"category"`
	ImageURL           string  `gorm:"type:text" json:"image_url,omitempty"`
	RestaurantLocation string  `gorm:"type:text;not null" json:"restaurant_location"`

	Timestamp
}
