package calc

import "math"

// PriceBreakdown is the result of one pricing calculation. Monetary fields
// are rounded to 2 decimals; unit price and quantity are echoed back for
// display convenience.
type PriceBreakdown struct {
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
}

// Round2 rounds to 2 decimal places for display.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }

// CalculatePrice computes subtotal, tax and total for a line item.
// taxRate is a percentage (e.g. 20 for 20%). Inputs are assumed to be
// validated numbers; callers reject non-numeric or empty values first.
func CalculatePrice(unitPrice, taxRate float64, quantity int) PriceBreakdown {
	subtotal := unitPrice * float64(quantity)
	tax := subtotal * taxRate / 100
	return PriceBreakdown{
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Subtotal:  Round2(subtotal),
		TaxAmount: Round2(tax),
		Total:     Round2(subtotal + tax),
	}
}
