package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/readytocook/billing-api/internal/domain/entity"
	"github.com/readytocook/billing-api/internal/domain/enum"
	"github.com/readytocook/billing-api/internal/domain/repository"
	"github.com/readytocook/billing-api/pkg/apperror"
	"github.com/readytocook/billing-api/pkg/document"
	"github.com/shopspring/decimal"
)

// SessionState is the lifecycle state of the in-progress billing session
type SessionState string

const (
	SessionCollecting SessionState = "collecting"
	SessionFinalizing SessionState = "finalizing"
	SessionFinalized  SessionState = "finalized"
	SessionFailed     SessionState = "failed"
)

// BusinessInfo is the identity block printed on every bill document
type BusinessInfo struct {
	Name    string
	Email   string
	Contact string
}

// BillingService owns the in-progress billing session and composes the
// stores into the finalize operation. The session mutex makes the whole
// finalize sequence single-writer.
type BillingService struct {
	numbers  repository.BillNumberAllocator
	ledger   repository.CustomerLedger
	journal  repository.SalesJournal
	writer   document.Writer
	business BusinessInfo

	mu    sync.Mutex
	items []entity.LineItem
	state SessionState
}

// NewBillingService creates a new billing service
func NewBillingService(
	numbers repository.BillNumberAllocator,
	ledger repository.CustomerLedger,
	journal repository.SalesJournal,
	writer document.Writer,
	business BusinessInfo,
) *BillingService {
	return &BillingService{
		numbers:  numbers,
		ledger:   ledger,
		journal:  journal,
		writer:   writer,
		business: business,
		state:    SessionCollecting,
	}
}

// AddItem appends a line item to the in-progress bill
func (s *BillingService) AddItem(ctx context.Context, item entity.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	s.state = SessionCollecting
	return nil
}

// Items returns a copy of the in-progress line items in insertion order
func (s *BillingService) Items() []entity.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// State returns the current session state
func (s *BillingService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Clear resets the in-progress item sequence to empty
func (s *BillingService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.state = SessionCollecting
}

// ComputeTotals prices the current session items with the given inputs.
// It has no side effects on the session or the stores.
func (s *BillingService) ComputeTotals(discountPercent, deliveryCharge decimal.Decimal, paymentMethod enum.PaymentMethod) (entity.Totals, error) {
	s.mu.Lock()
	items := s.items
	s.mu.Unlock()
	return computeTotals(items, discountPercent, deliveryCharge, paymentMethod)
}

// computeTotals is the pure pricing function: subtotal over the items in
// insertion order, discount_amount = subtotal * pct / 100, and
// grand_total = subtotal - discount_amount + delivery_charge.
func computeTotals(items []entity.LineItem, discountPercent, deliveryCharge decimal.Decimal, paymentMethod enum.PaymentMethod) (entity.Totals, error) {
	hundred := decimal.NewFromInt(100)
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		return entity.Totals{}, apperror.NewValidationError("Discount percent must be between 0 and 100")
	}
	if deliveryCharge.IsNegative() {
		return entity.Totals{}, apperror.NewValidationError("Delivery charge must not be negative")
	}
	if !paymentMethod.Valid() {
		return entity.Totals{}, apperror.NewValidationError(fmt.Sprintf("Unknown payment method %q", paymentMethod))
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	discountAmount := subtotal.Mul(discountPercent).Div(hundred)

	return entity.Totals{
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		DeliveryCharge:  deliveryCharge,
		GrandTotal:      subtotal.Sub(discountAmount).Add(deliveryCharge),
		PaymentMethod:   paymentMethod,
	}, nil
}

// FinalizeInput represents the finalize bill input
type FinalizeInput struct {
	Customer        entity.CustomerInfo
	DiscountPercent decimal.Decimal
	DeliveryCharge  decimal.Decimal
	PaymentMethod   enum.PaymentMethod
}

// FinalizeResult is a finalized bill plus its document handle.
// RenderWarning is set when the document could not be produced; the bill
// is still financially finalized and can be re-rendered later.
type FinalizeResult struct {
	Bill          entity.Bill `json:"bill"`
	DocumentPath  string      `json:"document_path,omitempty"`
	RenderWarning string      `json:"render_warning,omitempty"`
}

// FinalizeBill commits the in-progress session: it validates the inputs,
// allocates a bill number, updates the ledger with the subtotal, appends
// every line item to the sales journal, renders the bill document, and
// clears the session. Validation failures leave the session items intact
// so the caller can correct and retry. A render failure after the ledger
// and journal writes does not roll anything back.
func (s *BillingService) FinalizeBill(ctx context.Context, input FinalizeInput) (*FinalizeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = SessionFinalizing

	if err := input.Customer.Validate(); err != nil {
		s.state = SessionFailed
		return nil, err
	}
	if len(s.items) == 0 {
		s.state = SessionFailed
		return nil, apperror.NewValidationError("Cannot finalize a bill with no items")
	}
	totals, err := computeTotals(s.items, input.DiscountPercent, input.DeliveryCharge, input.PaymentMethod)
	if err != nil {
		s.state = SessionFailed
		return nil, err
	}
	if !totals.Subtotal.IsPositive() {
		s.state = SessionFailed
		return nil, apperror.NewValidationError("Bill subtotal must be positive")
	}

	billNumber, err := s.numbers.NextBillNumber(ctx)
	if err != nil {
		s.state = SessionFailed
		return nil, err
	}

	items := make([]entity.LineItem, len(s.items))
	copy(items, s.items)

	bill := entity.Bill{
		BillNumber: billNumber,
		Customer:   input.Customer,
		Items:      items,
		Totals:     totals,
	}

	if err := s.ledger.Upsert(ctx, input.Customer, input.PaymentMethod, totals.Subtotal); err != nil {
		s.state = SessionFailed
		return nil, err
	}
	if err := s.journal.Append(ctx, billNumber, input.Customer, items, totals); err != nil {
		s.state = SessionFailed
		return nil, err
	}

	result := &FinalizeResult{Bill: bill}
	path, err := s.RenderDocument(bill)
	if err != nil {
		log.Printf("Warning: bill %d finalized but document rendering failed: %v", billNumber, err)
		result.RenderWarning = err.Error()
	} else {
		result.DocumentPath = path
	}

	s.items = nil
	s.state = SessionFinalized
	return result, nil
}

// RenderDocument renders the bill document and returns its handle. It is
// a pure projection of the bill: ledger and journal state are never
// touched, so a document can be regenerated at any time.
func (s *BillingService) RenderDocument(bill entity.Bill) (string, error) {
	baseName := fmt.Sprintf("bill_%d_%s", bill.BillNumber, bill.Customer.Mobile)
	path, err := s.writer.Write(baseName, FormatBill(&bill, s.business))
	if err != nil {
		return "", apperror.NewRenderError(fmt.Sprintf("Failed to render bill document: %v", err))
	}
	return path, nil
}
