package storage

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	domainRepo "github.com/readytocook/billing-api/internal/domain/repository"
	"github.com/readytocook/billing-api/pkg/apperror"
)

// DefaultBillNumberSeed is the last-issued number assumed when the state
// file does not exist yet; the first bill on a fresh store gets seed+1.
const DefaultBillNumberSeed = 20240001

type billNumberStore struct {
	path string
	seed int64
	mu   sync.Mutex
}

// NewBillNumberStore creates a bill number allocator backed by a plain
// text file holding the last issued number.
func NewBillNumberStore(path string, seed int64) domainRepo.BillNumberAllocator {
	if seed <= 0 {
		seed = DefaultBillNumberSeed
	}
	return &billNumberStore{path: path, seed: seed}
}

// NextBillNumber reads the last issued number, increments it, persists the
// new value atomically, and returns it. A non-numeric state file fails with
// a storage error rather than silently reseeding: reseeding a damaged file
// could reissue a number already printed on a bill.
func (s *billNumberStore) NextBillNumber(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, err := s.readLast()
	if err != nil {
		return 0, err
	}

	next := last + 1
	if err := writeFileAtomic(s.path, []byte(strconv.FormatInt(next, 10))); err != nil {
		return 0, apperror.NewStorageError(fmt.Sprintf("Failed to persist bill number state: %v", err))
	}
	return next, nil
}

func (s *billNumberStore) readLast() (int64, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s.seed, nil
	}
	if err != nil {
		return 0, apperror.NewStorageError(fmt.Sprintf("Failed to read bill number state %s: %v", s.path, err))
	}

	last, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, apperror.NewStorageError(fmt.Sprintf("Bill number state %s is not numeric: %q", s.path, strings.TrimSpace(string(data))))
	}
	return last, nil
}
