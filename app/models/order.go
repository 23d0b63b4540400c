package models

import "time"

const (
	OrderStatusPending   = 1
	OrderStatusFulfilled = 2
	OrderStatusCancelled = 3
)

type Order struct {
	ID             uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderPlaced    time.Time     `gorm:"not null" json:"order_placed"`
	OrderFulfilled *time.Time    `json:"order_fulfilled,omitempty"`
	Status         int           `gorm:"not null;default:1" json:"status"`
	CustomerID     uint          `gorm:"not null;index" json:"customer_id"`
	Customer       *Customer     `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	OrderDetails   []OrderDetail `gorm:"foreignKey:OrderID" json:"order_details,omitempty"`
}
