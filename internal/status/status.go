// Package status derives presentation-level classifications from raw
// product and batch fields. Every function here is total and pure; the
// clock is always an explicit input.
package status

import (
	"time"

	"github.com/rooherbals/dms/internal/domain"
)

// Stock classifies a product's stock level.
type Stock string

const (
	// OutOfStock means no sellable stock remains.
	OutOfStock Stock = "out_of_stock"
	// LowStock means stock has fallen strictly below the reorder level.
	LowStock Stock = "low_stock"
	// InStock means stock is at or above the reorder level.
	InStock Stock = "in_stock"
)

// OfProduct classifies p's stock. Zero or negative stock is out of
// stock regardless of the reorder level; stock exactly at the reorder
// level is still in stock.
func OfProduct(p domain.Product) Stock {
	switch {
	case p.CurrentStock <= 0:
		return OutOfStock
	case p.CurrentStock < p.ReorderLevel:
		return LowStock
	default:
		return InStock
	}
}

// Urgency classifies how soon a batch expires.
type Urgency string

const (
	// Expired means the expiry date has passed.
	Expired Urgency = "expired"
	// ExpiringSoon means the expiry date falls within ExpiryWindow.
	ExpiringSoon Urgency = "expiring_soon"
	// Normal means the expiry date is beyond ExpiryWindow.
	Normal Urgency = "normal"
	// NoExpiry means the record carries no expiry date.
	NoExpiry Urgency = "none"
)

// ExpiryWindow is how far ahead an expiry date counts as expiring soon.
const ExpiryWindow = 30 * 24 * time.Hour

// OfExpiry classifies expiry relative to now. A date equal to now is
// expiring soon, not expired; a date exactly at the window edge is
// normal. Both nil and the zero date mean no expiry is recorded.
func OfExpiry(expiry *domain.Date, now time.Time) Urgency {
	if expiry == nil || expiry.IsZero() {
		return NoExpiry
	}
	switch {
	case expiry.Before(now):
		return Expired
	case expiry.Before(now.Add(ExpiryWindow)):
		return ExpiringSoon
	default:
		return Normal
	}
}
