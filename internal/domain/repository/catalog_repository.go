package repository

import (
	"context"

	"github.com/readytocook/billing-api/internal/domain/entity"
)

// CatalogStore persists the category to item-name reference data.
// The billing core only reads it; mutations come from the settings surface.
type CatalogStore interface {
	// Load returns the catalog, or an empty catalog when the backing
	// file is absent or corrupt (the condition is logged, not fatal).
	Load(ctx context.Context) (*entity.Catalog, error)
	// Save overwrites the backing store atomically.
	Save(ctx context.Context, catalog *entity.Catalog) error
	AddCategory(ctx context.Context, name string) error
	RemoveCategory(ctx context.Context, name string) error
	AddItem(ctx context.Context, category, item string) error
	RemoveItem(ctx context.Context, category, item string) error
}
