package commands

import (
	"context"
)

// RemoveSizeCommandHandler delists catalog entries.
type RemoveSizeCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveSizeCommandHandler creates a handler for catalog removals.
func NewRemoveSizeCommandHandler(uowFactory CatalogUoWFactory) RemoveSizeCommandHandler {
	return RemoveSizeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// Returns a ConflictError when existing orders still reference the size.
func (h RemoveSizeCommandHandler) Handle(ctx context.Context, command RemoveSizeCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CatalogRepository().Remove(ctx, command.Size()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
