package service

import (
	"strconv"

	"github.com/readytocook/billing-api/internal/domain/entity"
	"github.com/readytocook/billing-api/pkg/document"
)

// billPageWidth is the bill page width in characters
const billPageWidth = 72

// billColumnWidths are the fixed item-table column widths for
// Category, Item, Unit Price, and Quantity; Total Price fills the rest.
var billColumnWidths = []int{14, 28, 12, 10}

var billColumnHeaders = []string{"Category", "Item", "Unit Price", "Quantity", "Total Price"}

// FormatBill converts a finalized bill into its fixed-layout document.
// The block order, column set, and footer text are a stable contract.
func FormatBill(bill *entity.Bill, business BusinessInfo) []byte {
	doc := document.NewBuilder(billPageWidth)

	// Header
	doc.Center("Customer Bill").
		Center(business.Name).
		Center("E-mail: " + business.Email).
		Center("Contact Number: " + business.Contact)

	doc.Separator('=')

	// Bill metadata
	doc.Split(
		"Bill Number: "+strconv.FormatInt(bill.BillNumber, 10),
		"Customer Unique Code: "+bill.Customer.UniqueCode,
	)
	doc.Separator('-').
		Line("Date: "+bill.Customer.Date).
		Line("Customer Name: "+bill.Customer.Name).
		Line("Customer Mobile Number: "+bill.Customer.Mobile).
		Line("Customer Address: "+bill.Customer.Address).
		Separator('-')

	// Items
	doc.Columns(billColumnWidths, billColumnHeaders)
	for _, item := range bill.Items {
		doc.Columns(billColumnWidths, []string{
			item.Category,
			item.ItemName,
			item.UnitPrice.String(),
			item.Quantity.String(),
			item.LineTotal().String(),
		})
	}

	// Summary
	doc.Separator('-').
		LineF("Subtotal: %s Tk", bill.Totals.Subtotal).
		LineF("Discount: %s Tk", bill.Totals.DiscountAmount).
		Split(
			"Delivery Charge: "+bill.Totals.DeliveryCharge.String()+" Tk",
			"Payment Method: "+bill.Totals.PaymentMethod.String(),
		).
		Blank().
		LineF("Grand Total: %s Tk", bill.Totals.GrandTotal)

	// Footer notice
	doc.Blank().
		Center("Please check your products in front of the delivery man!").
		Center("No complaint will be accepted later!!").
		Center("THANK YOU!!!")

	return doc.Bytes()
}
