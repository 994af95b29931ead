package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"

	"github.com/readytocook/billing-api/internal/domain/entity"
	"github.com/readytocook/billing-api/internal/domain/enum"
	domainRepo "github.com/readytocook/billing-api/internal/domain/repository"
	"github.com/readytocook/billing-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

type fileCustomerLedger struct {
	path string
	mu   sync.Mutex
}

// NewCustomerLedger creates a ledger backed by a JSON file keyed by
// customer unique code.
func NewCustomerLedger(path string) domainRepo.CustomerLedger {
	return &fileCustomerLedger{path: path}
}

func (s *fileCustomerLedger) Get(ctx context.Context, uniqueCode string) (*entity.CustomerRecord, error) {
	if uniqueCode == "" {
		return nil, apperror.NewValidationError("Customer unique code is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load()
	record, ok := records[uniqueCode]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (s *fileCustomerLedger) List(ctx context.Context) ([]entity.CustomerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load()
	codes := make([]string, 0, len(records))
	for code := range records {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]entity.CustomerRecord, 0, len(records))
	for _, code := range codes {
		out = append(out, records[code])
	}
	return out, nil
}

// Upsert applies the spend delta and latest profile in one
// read-modify-write over the whole file, finished by an atomic replace,
// so a crash can never leave a partially-applied update behind.
func (s *fileCustomerLedger) Upsert(ctx context.Context, info entity.CustomerInfo, paymentMethod enum.PaymentMethod, spendDelta decimal.Decimal) error {
	if err := info.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load()
	total := spendDelta
	if existing, ok := records[info.UniqueCode]; ok {
		total = existing.TotalSpend.Add(spendDelta)
	}
	records[info.UniqueCode] = entity.CustomerRecord{
		Date:          info.Date,
		Name:          info.Name,
		Mobile:        info.Mobile,
		Address:       info.Address,
		UniqueCode:    info.UniqueCode,
		PaymentMethod: paymentMethod,
		TotalSpend:    total,
	}
	return s.save(records)
}

func (s *fileCustomerLedger) load() map[string]entity.CustomerRecord {
	records := make(map[string]entity.CustomerRecord)

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return records
	}
	if err != nil {
		log.Printf("Warning: failed to read customer ledger %s, starting empty: %v", s.path, err)
		return records
	}
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Warning: customer ledger %s is corrupt, starting empty: %v", s.path, err)
		return make(map[string]entity.CustomerRecord)
	}
	return records
}

func (s *fileCustomerLedger) save(records map[string]entity.CustomerRecord) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return apperror.NewStorageError(fmt.Sprintf("Failed to encode customer ledger: %v", err))
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return apperror.NewStorageError(fmt.Sprintf("Failed to save customer ledger: %v", err))
	}
	return nil
}
