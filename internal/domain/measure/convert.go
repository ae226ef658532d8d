// Package measure converts operator-entered quantities into base units.
//
// Weight goods are entered in jin and tael (1 jin = 16 tael) and stored as a
// total tael count. Count goods are entered and stored as a plain item count.
package measure

import (
	"stallbook/internal/core/apperror"
)

// TaelPerJin is the traditional weight subdivision: 1 jin = 16 tael.
const TaelPerJin int64 = 16

// UnitType classifies how a product's quantity is entered and stored.
type UnitType string

const (
	// UnitWeight goods are weighed: entered as jin/tael, stored as tael.
	UnitWeight UnitType = "weight"

	// UnitCount goods are discrete: entered and stored as an item count.
	UnitCount UnitType = "count"
)

// Valid reports whether t is a known unit type.
func (t UnitType) Valid() bool {
	return t == UnitWeight || t == UnitCount
}

// Parts is a human-entry quantity before conversion to base units.
// For weight goods Jin/Tael are used; for count goods only Count.
type Parts struct {
	Jin   int64 `json:"jin"`
	Tael  int64 `json:"tael"`
	Count int64 `json:"count"`
}

// TotalUnits converts entered parts to base units for the given unit type.
//
// Weight: total = jin*16 + tael, requiring 0 <= tael < 16. A tael of 16 or
// more is rejected rather than normalized - the operator must raise jin.
// Count: the item count passes through.
// Negative inputs are rejected for both kinds.
func TotalUnits(t UnitType, p Parts) (int64, error) {
	switch t {
	case UnitWeight:
		if p.Jin < 0 || p.Tael < 0 {
			return 0, apperror.NewValidation("weight quantity cannot be negative").
				WithDetail("jin", p.Jin).
				WithDetail("tael", p.Tael)
		}
		if p.Tael >= TaelPerJin {
			return 0, apperror.NewValidation("tael must be below 16; increase jin instead").
				WithDetail("tael", p.Tael)
		}
		return p.Jin*TaelPerJin + p.Tael, nil
	case UnitCount:
		if p.Count < 0 {
			return 0, apperror.NewValidation("count cannot be negative").
				WithDetail("count", p.Count)
		}
		return p.Count, nil
	default:
		return 0, apperror.NewValidation("unknown unit type").
			WithDetail("unit_type", string(t))
	}
}

// SplitUnits converts a stored base-unit total back to entry parts for
// display and editing. Inverse of TotalUnits for valid inputs.
func SplitUnits(t UnitType, total int64) Parts {
	if t == UnitWeight {
		return Parts{
			Jin:  total / TaelPerJin,
			Tael: total % TaelPerJin,
		}
	}
	return Parts{Count: total}
}
