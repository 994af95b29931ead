package repository

import "context"

// BillNumberAllocator issues a strictly increasing unique number per bill.
// A number, once returned, is never returned again, including across
// process restarts.
type BillNumberAllocator interface {
	NextBillNumber(ctx context.Context) (int64, error)
}
