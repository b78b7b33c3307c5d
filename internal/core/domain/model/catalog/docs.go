// Package catalog provides the registry of purchasable bottle sizes and
// their prices, together with the per-size minimum-quantity ordering policy.
//
// The package includes:
//   - Size: a closed enumeration of bottle sizes (500ML, 1L, 2L)
//   - Bottle: a catalog entry binding a unique size to an admin-adjustable price
//   - MinimumQuantity: the ordering policy keyed by size
//
// Key business rules:
//   - Each size appears at most once in the catalog
//   - Prices are non-negative and may change at any time; existing orders
//     keep their quantity and bottle reference, and subtotals are computed
//     from the current price at read time
//   - Every size currently requires a minimum of 50 bottles per order, but
//     the policy is keyed by size so minimums can diverge per size
package catalog
