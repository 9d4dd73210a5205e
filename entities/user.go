package entities

type User struct {
	ID       string `gorm:"type:varchar(50);primary_key" json:"id"`
	Username string `gorm:"type:varchar(100);not null" json:"username"`
	Email    string `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	Phone    string `gorm:"type:varchar(20);not null" json:"phone"`

	Orders []*Order `gorm:"foreignKey:UserID"`
	Timestamp
}
