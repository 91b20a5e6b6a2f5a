// Package pricing computes storefront display prices under the active
// promotional atmosphere.
package pricing

import "github.com/handytechnz-cloud/Blair-Portfolio/internal/theme"

// Gold promotion bounds.
const (
	goldFreeBelow = 3.0
	goldCapAbove  = 30.0
	goldFlatCap   = 10.0
)

// DisplayPrice returns the price shown for basePrice while active is the
// effective theme. Rainbow discounts everything by 20%. Gold makes cheap
// prints free, caps expensive ones at a flat 10, and discounts the rest by
// 30%. Every other theme leaves the base price untouched.
func DisplayPrice(basePrice float64, active theme.Theme) float64 {
	switch active {
	case theme.Rainbow:
		return basePrice * 0.8
	case theme.Gold:
		if basePrice < goldFreeBelow {
			return 0
		}
		if basePrice > goldCapAbove {
			return goldFlatCap
		}
		return basePrice * 0.7
	default:
		return basePrice
	}
}

// Free reports whether the display price triggers the free-acquisition
// affordance (direct asset access instead of the purchase inquiry flow).
func Free(displayPrice float64) bool {
	return displayPrice == 0
}
