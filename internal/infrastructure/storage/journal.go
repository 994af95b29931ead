package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/readytocook/billing-api/internal/domain/entity"
	domainRepo "github.com/readytocook/billing-api/internal/domain/repository"
	"github.com/readytocook/billing-api/pkg/apperror"
)

// journalHeader is the fixed CSV header, written exactly once by whichever
// writer creates the file.
var journalHeader = []string{
	"Date", "Mobile", "Address", "Category", "Item", "Unit Price",
	"Quantity", "Total Price", "Discount", "Grand Total", "Payment Method", "Customer Unique Code",
}

type fileSalesJournal struct {
	path string
	mu   sync.Mutex
}

// NewSalesJournal creates an append-only CSV journal of sold line items.
func NewSalesJournal(path string) domainRepo.SalesJournal {
	return &fileSalesJournal{path: path}
}

func (s *fileSalesJournal) Append(ctx context.Context, billNumber int64, customer entity.CustomerInfo, items []entity.LineItem, totals entity.Totals) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return apperror.NewStorageError(fmt.Sprintf("Failed to create journal dir: %v", err))
	}

	_, statErr := os.Stat(s.path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return apperror.NewStorageError(fmt.Sprintf("Failed to open sales journal %s: %v", s.path, err))
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(journalHeader); err != nil {
			return apperror.NewStorageError(fmt.Sprintf("Failed to write journal header: %v", err))
		}
	}

	for _, item := range items {
		row := []string{
			customer.Date,
			customer.Mobile,
			customer.Address,
			item.Category,
			item.ItemName,
			item.UnitPrice.String(),
			item.Quantity.String(),
			item.LineTotal().String(),
			totals.DiscountAmount.String(),
			totals.GrandTotal.String(),
			totals.PaymentMethod.String(),
			customer.UniqueCode,
		}
		if err := w.Write(row); err != nil {
			return apperror.NewStorageError(fmt.Sprintf("Failed to write journal row: %v", err))
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return apperror.NewStorageError(fmt.Sprintf("Failed to flush sales journal: %v", err))
	}
	return nil
}
