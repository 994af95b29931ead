package repository

import (
	"context"

	"github.com/readytocook/billing-api/internal/domain/entity"
)

// SalesJournal is the append-only record of every sold line item.
// There is no read, rewrite, or delete path; aggregation happens downstream.
type SalesJournal interface {
	// Append writes one row per line item, each carrying the bill's
	// discount, grand total, payment method, and customer code.
	Append(ctx context.Context, billNumber int64, customer entity.CustomerInfo, items []entity.LineItem, totals entity.Totals) error
}
