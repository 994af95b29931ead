package service

import (
	"context"

	"github.com/readytocook/billing-api/internal/domain/entity"
	"github.com/readytocook/billing-api/internal/domain/repository"
)

// CatalogService handles catalog-related operations
type CatalogService struct {
	catalogRepo repository.CatalogStore
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogStore) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// GetCatalog returns the full catalog
func (s *CatalogService) GetCatalog(ctx context.Context) (*entity.Catalog, error) {
	return s.catalogRepo.Load(ctx)
}

// AddCategory adds a new category
func (s *CatalogService) AddCategory(ctx context.Context, name string) error {
	return s.catalogRepo.AddCategory(ctx, name)
}

// RemoveCategory removes a category and its items
func (s *CatalogService) RemoveCategory(ctx context.Context, name string) error {
	return s.catalogRepo.RemoveCategory(ctx, name)
}

// AddItem adds an item to a category; adding an existing item is a no-op
func (s *CatalogService) AddItem(ctx context.Context, category, item string) error {
	return s.catalogRepo.AddItem(ctx, category, item)
}

// RemoveItem removes an item from a category
func (s *CatalogService) RemoveItem(ctx context.Context, category, item string) error {
	return s.catalogRepo.RemoveItem(ctx, category, item)
}
