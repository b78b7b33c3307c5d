package catalog

import (
	"fmt"

	"beverage/internal/pkg/errs"
)

// Size represents a bottle size from the closed catalog enumeration.
// It is a value object exchanged on the wire as the literal strings
// "500ML", "1L", and "2L".
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	// This value (0) helps catch uninitialized Size values.
	SizeUnknown Size = iota

	// Size500ML is the half-litre bottle.
	Size500ML

	// Size1L is the one-litre bottle.
	Size1L

	// Size2L is the two-litre bottle.
	Size2L
)

// fallbackMinimumQuantity applies to sizes absent from the policy map.
const fallbackMinimumQuantity = 50

// getSizeStrings returns a map of Size values to their wire representations.
// All sizes are included for string conversion.
func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown: "UNKNOWN",
		Size500ML:   "500ML",
		Size1L:      "1L",
		Size2L:      "2L",
	}
}

// getValidSizeStrings returns a map of only valid Size values.
// Only valid sizes are included to support validation and parsing.
func getValidSizeStrings() map[Size]string {
	//nolint:exhaustive // SizeUnknown is intentionally excluded as it's invalid
	return map[Size]string{
		Size500ML: "500ML",
		Size1L:    "1L",
		Size2L:    "2L",
	}
}

// getMinimumQuantities returns the per-size minimum order quantities.
// The mapping is keyed by size so that minimums can diverge size-by-size,
// even though the current policy sets every size to the same value.
func getMinimumQuantities() map[Size]int {
	return map[Size]int{
		Size500ML: 50,
		Size1L:    50,
		Size2L:    50,
	}
}

// AllSizes returns every valid size in catalog order.
func AllSizes() []Size {
	return []Size{Size500ML, Size1L, Size2L}
}

// ParseSize converts a wire string ("500ML", "1L", "2L") into a Size.
// Returns a ValueIsInvalidError for any other input.
func ParseSize(s string) (Size, error) {
	for size, str := range getValidSizeStrings() {
		if str == s {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"size", fmt.Errorf("%q is not a valid bottle size", s))
}

// Validate checks if the Size value is valid.
//
// Valid sizes are: Size500ML, Size1L, Size2L.
// SizeUnknown (0) and any other values are invalid.
func (s Size) Validate() error {
	if _, ok := getValidSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"size", fmt.Errorf("%d is not a valid bottle size", s))
	}
	return nil
}

// String returns the wire representation of the size.
// Returns "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// MinimumQuantity returns the minimum number of bottles a single order of
// this size must contain. Sizes not covered by the policy map, including
// invalid ones, fall back to the global minimum.
func MinimumQuantity(size Size) int {
	if minQty, ok := getMinimumQuantities()[size]; ok {
		return minQty
	}
	return fallbackMinimumQuantity
}
