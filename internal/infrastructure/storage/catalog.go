package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/readytocook/billing-api/internal/domain/entity"
	domainRepo "github.com/readytocook/billing-api/internal/domain/repository"
	"github.com/readytocook/billing-api/pkg/apperror"
)

type fileCatalogStore struct {
	path string
	mu   sync.Mutex
}

// NewCatalogStore creates a catalog store backed by a JSON file of the
// shape {"<Category>": ["<ItemName>", ...], ...}.
func NewCatalogStore(path string) domainRepo.CatalogStore {
	return &fileCatalogStore{path: path}
}

// Load returns the catalog. A missing or corrupt backing file degrades to
// an empty catalog with a logged warning instead of failing the session.
func (s *fileCatalogStore) Load(ctx context.Context) (*entity.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

func (s *fileCatalogStore) load() *entity.Catalog {
	catalog := entity.NewCatalog()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return catalog
	}
	if err != nil {
		log.Printf("Warning: failed to read catalog %s, starting empty: %v", s.path, err)
		return catalog
	}
	if err := json.Unmarshal(data, catalog); err != nil {
		log.Printf("Warning: catalog %s is corrupt, starting empty: %v", s.path, err)
		return entity.NewCatalog()
	}
	return catalog
}

// Save overwrites the backing file atomically
func (s *fileCatalogStore) Save(ctx context.Context, catalog *entity.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(catalog)
}

func (s *fileCatalogStore) save(catalog *entity.Catalog) error {
	data, err := json.MarshalIndent(catalog, "", "    ")
	if err != nil {
		return apperror.NewStorageError(fmt.Sprintf("Failed to encode catalog: %v", err))
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return apperror.NewStorageError(fmt.Sprintf("Failed to save catalog: %v", err))
	}
	return nil
}

func (s *fileCatalogStore) AddCategory(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog := s.load()
	if err := catalog.AddCategory(name); err != nil {
		return err
	}
	return s.save(catalog)
}

func (s *fileCatalogStore) RemoveCategory(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog := s.load()
	if err := catalog.RemoveCategory(name); err != nil {
		return err
	}
	return s.save(catalog)
}

func (s *fileCatalogStore) AddItem(ctx context.Context, category, item string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog := s.load()
	if err := catalog.AddItem(category, item); err != nil {
		return err
	}
	return s.save(catalog)
}

func (s *fileCatalogStore) RemoveItem(ctx context.Context, category, item string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog := s.load()
	if err := catalog.RemoveItem(category, item); err != nil {
		return err
	}
	return s.save(catalog)
}
