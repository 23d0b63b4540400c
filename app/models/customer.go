package models

type Customer struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string  `gorm:"size:100;not null" json:"first_name"`
	LastName  string  `gorm:"size:100;not null" json:"last_name"`
	Address   *string `gorm:"size:255" json:"address,omitempty"`
	Phone     *string `gorm:"size:20" json:"phone,omitempty"`
	Email     string  `gorm:"size:100;not null" json:"email"`
	Orders    []Order `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
}
