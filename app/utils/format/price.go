package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var priceAccounting = accounting.Accounting{Symbol: "$", Precision: 2, Thousand: ",", Decimal: "."}

func FormatPrice(amount decimal.Decimal) string {
	return priceAccounting.FormatMoneyDecimal(amount)
}
