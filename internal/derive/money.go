// Package derive computes every derived value of the shop: line and
// invoice totals, low-stock flags, customer statistics, report aggregates
// and list filters. Functions are pure and never modify their inputs.
package derive

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
	"github.com/BruksfildServices01/taller-admin/internal/models"
)

// DefaultTaxRate is the Spanish IVA general rate.
var DefaultTaxRate = decimal.RequireFromString("0.21")

// Engine carries the locale-dependent parameters of the derivations.
type Engine struct {
	TaxRate decimal.Decimal
}

func NewEngine(taxRate float64) Engine {
	return Engine{TaxRate: decimal.NewFromFloat(taxRate)}
}

// Totals are exact until Rounded is called.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Rounded rounds subtotal and tax to cents and rebuilds the total from the
// rounded parts, so Total == Subtotal + Tax also holds after rounding.
func (t Totals) Rounded() Totals {
	sub := t.Subtotal.Round(2)
	tax := t.Tax.Round(2)
	return Totals{Subtotal: sub, Tax: tax, Total: sub.Add(tax)}
}

// LineTotal is quantity × unit price.
func LineTotal(item models.LineItem) (decimal.Decimal, error) {
	return lineTotal(0, item)
}

func lineTotal(index int, item models.LineItem) (decimal.Decimal, error) {
	if item.Quantity <= 0 || item.UnitPrice < 0 {
		return decimal.Zero, &apperr.InvalidLineItemError{
			Index:     index,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.UnitPrice)), nil
}

func sumLines(items []models.LineItem) (decimal.Decimal, error) {
	sum := decimal.Zero
	for i, item := range items {
		line, err := lineTotal(i, item)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(line)
	}
	return sum, nil
}

// InvoiceTotals returns subtotal, tax and total for a list of line items.
// An empty list yields zero totals.
func (e Engine) InvoiceTotals(items []models.LineItem) (Totals, error) {
	sub, err := sumLines(items)
	if err != nil {
		return Totals{}, err
	}
	tax := sub.Mul(e.TaxRate)
	return Totals{Subtotal: sub, Tax: tax, Total: sub.Add(tax)}, nil
}

// OrderTotal is the untaxed sum of a repair order's line items.
func OrderTotal(items []models.LineItem) (decimal.Decimal, error) {
	return sumLines(items)
}

// Money converts an amount to a float rounded to cents for the views.
func Money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func sumMoney(values []float64) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	return sum
}
