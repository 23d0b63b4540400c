package models

import (
	"github.com/Rakhulsr/contoso-pizza/app/utils/calc"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID    uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string          `gorm:"size:255;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"price"`
}

// BeforeSave rounds Price to the column scale so every store persists the same value.
func (p *Product) BeforeSave(tx *gorm.DB) (err error) {
	p.Price = calc.RoundMoney(p.Price)
	return
}
