package entity

import (
	"github.com/readytocook/billing-api/internal/domain/enum"
	"github.com/readytocook/billing-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

func init() {
	// The ledger file and API payloads carry amounts as bare JSON numbers,
	// not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// LineItem is one sold item on a bill. Immutable once added.
type LineItem struct {
	Category  string          `json:"category"`
	ItemName  string          `json:"item_name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// LineTotal returns unit price times quantity
func (l LineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(l.Quantity)
}

// Validate checks the line item fields
func (l LineItem) Validate() error {
	if l.Category == "" || l.ItemName == "" {
		return apperror.NewValidationError("Category and item name are required")
	}
	if l.UnitPrice.IsNegative() {
		return apperror.NewValidationError("Unit price must not be negative")
	}
	if !l.Quantity.IsPositive() {
		return apperror.NewValidationError("Quantity must be positive")
	}
	return nil
}

// CustomerInfo identifies the customer a bill was issued to
type CustomerInfo struct {
	UniqueCode string `json:"unique_code"`
	Name       string `json:"name"`
	Mobile     string `json:"mobile"`
	Address    string `json:"address"`
	Date       string `json:"date"`
}

// Validate checks that the customer can be billed
func (c CustomerInfo) Validate() error {
	if c.UniqueCode == "" {
		return apperror.NewValidationError("Customer unique code is required")
	}
	return nil
}

// Totals holds the priced summary of a bill.
// Invariants: discount_amount = subtotal * discount_percent / 100 and
// grand_total = subtotal - discount_amount + delivery_charge.
type Totals struct {
	Subtotal        decimal.Decimal    `json:"subtotal"`
	DiscountPercent decimal.Decimal    `json:"discount_percent"`
	DiscountAmount  decimal.Decimal    `json:"discount_amount"`
	DeliveryCharge  decimal.Decimal    `json:"delivery_charge"`
	GrandTotal      decimal.Decimal    `json:"grand_total"`
	PaymentMethod   enum.PaymentMethod `json:"payment_method"`
}

// Bill is one finalized transaction. Created only by finalizing a
// billing session; immutable thereafter.
type Bill struct {
	BillNumber int64        `json:"bill_number"`
	Customer   CustomerInfo `json:"customer"`
	Items      []LineItem   `json:"items"`
	Totals     Totals       `json:"totals"`
}

// CustomerRecord is a ledger entry: the latest profile plus the
// cumulative spend across all of the customer's bills.
type CustomerRecord struct {
	Date          string             `json:"date"`
	Name          string             `json:"name"`
	Mobile        string             `json:"mobile"`
	Address       string             `json:"address"`
	UniqueCode    string             `json:"unique_code"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	TotalSpend    decimal.Decimal    `json:"total_spend"`
}
