package repository

import (
	"context"

	"github.com/readytocook/billing-api/internal/domain/entity"
	"github.com/readytocook/billing-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// CustomerLedger persists the per-customer cumulative spend records.
type CustomerLedger interface {
	// Get returns the record for a customer code, or nil when absent.
	Get(ctx context.Context, uniqueCode string) (*entity.CustomerRecord, error)
	// List returns all ledger records.
	List(ctx context.Context) ([]entity.CustomerRecord, error)
	// Upsert adds spendDelta to the customer's total spend, overwriting
	// the stored profile fields with the latest info. A customer seen for
	// the first time starts with totalSpend = spendDelta. The whole
	// read-modify-write is atomic with respect to the backing file.
	Upsert(ctx context.Context, info entity.CustomerInfo, paymentMethod enum.PaymentMethod, spendDelta decimal.Decimal) error
}
