package service

import (
	"context"

	"github.com/readytocook/billing-api/internal/domain/entity"
	"github.com/readytocook/billing-api/internal/domain/repository"
	"github.com/readytocook/billing-api/pkg/apperror"
)

// CustomerService handles customer ledger lookups
type CustomerService struct {
	ledger repository.CustomerLedger
}

// NewCustomerService creates a new customer service
func NewCustomerService(ledger repository.CustomerLedger) *CustomerService {
	return &CustomerService{ledger: ledger}
}

// GetCustomer retrieves a ledger record by unique code
func (s *CustomerService) GetCustomer(ctx context.Context, uniqueCode string) (*entity.CustomerRecord, error) {
	record, err := s.ledger.Get(ctx, uniqueCode)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return record, nil
}

// ListCustomers lists all ledger records
func (s *CustomerService) ListCustomers(ctx context.Context) ([]entity.CustomerRecord, error) {
	return s.ledger.List(ctx)
}
