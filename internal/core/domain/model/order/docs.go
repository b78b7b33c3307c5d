// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding the restaurant reference, the bottle
//     reference, quantity, notes, and the current lifecycle status
//   - Status: a state machine enforcing the legal lifecycle moves
//
// Key business rules:
//   - Orders are created PENDING with a quantity at or above the per-size
//     catalog minimum
//   - The lifecycle moves forward only: PENDING -> PROCESSING ->
//     OUT_FOR_DELIVERY -> DELIVERED, with CANCELLED reachable from any
//     non-terminal state
//   - DELIVERED and CANCELLED are terminal; nothing leaves them
//   - Subtotals are derived from quantity and the current catalog price at
//     read time, never stored
//   - ForceSetStatus is a documented administrative override that skips the
//     transition graph; Transition is the path for every normal caller
package order
