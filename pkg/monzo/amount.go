package monzo

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// MinorUnitScale returns how many decimal places separate a currency's minor
// unit from its major unit: 2 for GBP, 0 for JPY, 3 for KWD.
func MinorUnitScale(code string) (int, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 0, fmt.Errorf("unknown currency %q: %w", code, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale, nil
}

// MajorAmount converts Amount into the major unit of Currency, so -350 GBP
// becomes -3.50.
func (t TransactionCreated) MajorAmount() (decimal.Decimal, error) {
	scale, err := MinorUnitScale(t.Currency)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.New(t.Amount, -int32(scale)), nil
}
