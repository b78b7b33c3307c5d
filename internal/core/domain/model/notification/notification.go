// Package notification provides the append-only per-restaurant message feed.
// Entries are created by order placement, profile updates, and status
// changes; once written, only the read flag ever mutates.
package notification

import (
	"errors"
	"time"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/errs"
	"beverage/internal/pkg/guard"
)

var (
	// ErrMessageIsRequired is returned when appending an empty message.
	ErrMessageIsRequired = errs.NewValueIsRequiredError("message")
	// ErrNotificationIsNotConstructed is returned when using an improperly
	// initialized Notification.
	ErrNotificationIsNotConstructed = errors.New(
		"Notification must be created via NewNotification constructor")
)

// Notification is a single entry in a restaurant's feed.
// The message is stored in full; DisplayMessage truncates for rendering only.
type Notification struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	message      string
	createdAt    time.Time
	read         bool

	guard guard.ConstructorGuard
}

// NewNotification creates an unread entry timestamped at createdAt.
func NewNotification(
	id kernel.UUID,
	restaurantID kernel.UUID,
	message string,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setRestaurantID(restaurantID),
		n.setMessage(message),
		n.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistent storage,
// including its read flag.
func RestoreNotification(
	id kernel.UUID,
	restaurantID kernel.UUID,
	message string,
	createdAt time.Time,
	read bool,
) (*Notification, error) {
	n, err := NewNotification(id, restaurantID, message, createdAt)
	if err != nil {
		return nil, err
	}
	n.read = read
	return n, nil
}

// Validate ensures the Notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// RestaurantID returns the owning restaurant's identifier.
func (n *Notification) RestaurantID() kernel.UUID {
	return n.restaurantID
}

// Message returns the full stored message text.
func (n *Notification) Message() string {
	return n.message
}

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// Read reports whether the entry has been marked read.
func (n *Notification) Read() bool {
	return n.read
}

// MarkRead flips the read flag. Marking an already-read entry is a no-op,
// so repeated calls stay idempotent.
func (n *Notification) MarkRead() {
	n.read = true
}

// DisplayMessage returns the message truncated to limit runes with a
// trailing ellipsis. The stored message is never shortened; this exists
// purely for rendering in constrained layouts.
func (n *Notification) DisplayMessage(limit int) string {
	runes := []rune(n.message)
	if limit <= 0 || len(runes) <= limit {
		return n.message
	}
	return string(runes[:limit]) + "..."
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	n.restaurantID = id
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return ErrMessageIsRequired
	}
	n.message = message
	return nil
}

func (n *Notification) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	n.createdAt = createdAt
	return nil
}
