package order

import (
	"fmt"

	"beverage/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> OutForDelivery ──> Delivered
//	   │             │               │
//	   └─────────────┴───────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
// Re-applying the current status to a non-terminal order is a no-op success,
// so redundant administrative actions stay idempotent.
//
// Status is a value object that validates state transitions and provides
// the wire representations used for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status when a restaurant places an order.
	Pending

	// Processing indicates the order has been accepted and is being prepared.
	Processing

	// OutForDelivery indicates the order has left for the restaurant.
	OutForDelivery

	// Delivered indicates the order reached the restaurant.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "UNKNOWN",
		Pending:        "PENDING",
		Processing:     "PROCESSING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		Processing:     "PROCESSING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getSuccessors returns the strictly-forward successor of each status
// along the happy path. Terminal states have no successor.
func getSuccessors() map[Status]Status {
	//nolint:exhaustive // terminal and invalid statuses have no successor
	return map[Status]Status{
		Pending:        Processing,
		Processing:     OutForDelivery,
		OutForDelivery: Delivered,
	}
}

// ParseStatus converts a wire string into a Status.
// Returns a ValueIsInvalidError for any string outside the enumeration.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, OutForDelivery, Delivered, Cancelled.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Returns "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether moving from s to target is a legal
// lifecycle transition.
//
// Legal moves:
//   - the immediate forward successor (Pending->Processing,
//     Processing->OutForDelivery, OutForDelivery->Delivered)
//   - Cancelled, from any non-terminal status
//   - the current status itself, when non-terminal (idempotent no-op)
//
// Everything else, including any move out of Delivered or Cancelled,
// is illegal.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if target == s {
		return true
	}
	if target == Cancelled {
		return true
	}
	return getSuccessors()[s] == target
}

// TransitionTo validates and performs the transition from s to target.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (0, *errs.InvalidTransitionError) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
