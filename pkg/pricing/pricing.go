// Package pricing turns cart lines into an order bill.
package pricing

import (
	"errors"
	"math"
)

// GST rate applied to the cart total. The tax is always rounded up so the
// collected amount never undershoots the liability.
const gstRate = 0.05

// ErrInvalidLine rejects carts holding a negative price or a non-positive
// quantity.
var ErrInvalidLine = errors.New("pricing: cart line has negative price or non-positive quantity")

// Line is one priced cart entry.
type Line struct {
	UnitPrice float64
	Quantity  int
}

// Bill is the computed order total.
type Bill struct {
	CartTotal  float64
	TaxAmount  float64
	GrandTotal float64
}

// Quote sums the lines without intermediate rounding, adds the GST ceiling
// and returns the bill.
func Quote(lines []Line) (Bill, error) {
	var cartTotal float64
	for _, l := range lines {
		if l.UnitPrice < 0 || l.Quantity <= 0 {
			return Bill{}, ErrInvalidLine
		}
		cartTotal += l.UnitPrice * float64(l.Quantity)
	}
	tax := math.Ceil(cartTotal * gstRate)
	return Bill{
		CartTotal:  cartTotal,
		TaxAmount:  tax,
		GrandTotal: cartTotal + tax,
	}, nil
}
