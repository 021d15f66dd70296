package ports

import (
	"context"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/core/domain/model/menu"
)

// MenuCatalog is the read-only contract to the catalog collaborator.
// The core resolves every referenced menu item through it exactly once per
// order creation, before any transaction is opened.
type MenuCatalog interface {
	// ResolveMenuItems looks up the given menu item ids in one read and
	// returns the resolved items keyed by id. Ids that do not resolve are
	// simply absent from the result; the caller enumerates them so every
	// unresolved id can be reported in a single error.
	ResolveMenuItems(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]menu.Item, error)
}
