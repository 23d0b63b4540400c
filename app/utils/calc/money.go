package calc

import "github.com/shopspring/decimal"

// MoneyScale is the number of fractional digits stored for price columns.
const MoneyScale int32 = 2

// RoundMoney rounds half away from zero to MoneyScale places.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}
