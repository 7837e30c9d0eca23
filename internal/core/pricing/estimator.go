package pricing

import "github.com/shopspring/decimal"

// EstimateCarValue depreciates BaseCarValue by 5% per year of age, capped at
// 80%, and rounds to whole currency units.
func EstimateCarValue(manufactureYear, currentYear int) decimal.Decimal {
	age := currentYear - manufactureYear
	if age < 0 {
		age = 0
	}
	depreciation := decimal.Min(decimal.NewFromInt(int64(age)).Mul(depreciationStep), depreciationCap)
	return BaseCarValue.Mul(decimal.NewFromInt(1).Sub(depreciation)).Round(0)
}
