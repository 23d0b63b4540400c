package models

import (
	"github.com/Rakhulsr/contoso-pizza/app/utils/calc"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderDetail struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"unit_price"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	Order     *Order          `gorm:"foreignKey:OrderID;references:ID" json:"-"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
}

func (od *OrderDetail) BeforeSave(tx *gorm.DB) (err error) {
	od.UnitPrice = calc.RoundMoney(od.UnitPrice)
	return
}
