package fakers

import (
	"github.com/Rakhulsr/contoso-pizza/app/models"
	"github.com/shopspring/decimal"
)

func ProductFaker() []*models.Product {
	return []*models.Product{
		{Name: "Veggie Special Pizza", Price: decimal.RequireFromString("9.99")},
		{Name: "Deluxe Meat Pizza", Price: decimal.RequireFromString("12.99")},
		{Name: "Veggie pizza", Price: decimal.RequireFromString("8.99")},
	}
}
