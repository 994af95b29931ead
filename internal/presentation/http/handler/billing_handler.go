package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/readytocook/billing-api/internal/application/service"
	"github.com/readytocook/billing-api/internal/domain/entity"
	"github.com/readytocook/billing-api/internal/domain/enum"
	"github.com/readytocook/billing-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// BillingHandler handles the billing session HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// AddItem handles adding a line item to the in-progress bill
func (h *BillingHandler) AddItem(c *gin.Context) {
	var req struct {
		Category  string          `json:"category" binding:"required"`
		ItemName  string          `json:"item_name" binding:"required"`
		UnitPrice decimal.Decimal `json:"unit_price"`
		Quantity  decimal.Decimal `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item := entity.LineItem{
		Category:  req.Category,
		ItemName:  req.ItemName,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
	}
	if err := h.billingService.AddItem(c.Request.Context(), item); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item added to bill", gin.H{
		"items": h.billingService.Items(),
		"state": h.billingService.State(),
	})
}

// GetCurrent handles previewing the in-progress bill with totals
func (h *BillingHandler) GetCurrent(c *gin.Context) {
	discountPercent, err := decimal.NewFromString(c.DefaultQuery("discount_percent", "0"))
	if err != nil {
		response.BadRequest(c, "Invalid discount_percent")
		return
	}
	deliveryCharge, err := decimal.NewFromString(c.DefaultQuery("delivery_charge", "0"))
	if err != nil {
		response.BadRequest(c, "Invalid delivery_charge")
		return
	}
	paymentMethod := enum.PaymentMethod(c.DefaultQuery("payment_method", string(enum.PaymentMethodCOD)))

	totals, err := h.billingService.ComputeTotals(discountPercent, deliveryCharge, paymentMethod)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Current bill retrieved successfully", gin.H{
		"items":  h.billingService.Items(),
		"totals": totals,
		"state":  h.billingService.State(),
	})
}

// ClearItems handles resetting the in-progress bill
func (h *BillingHandler) ClearItems(c *gin.Context) {
	h.billingService.Clear()
	response.OK(c, "Bill items cleared", nil)
}

// Finalize handles committing the in-progress bill
func (h *BillingHandler) Finalize(c *gin.Context) {
	var req struct {
		Customer struct {
			UniqueCode string `json:"unique_code" binding:"required"`
			Name       string `json:"name"`
			Mobile     string `json:"mobile"`
			Address    string `json:"address"`
			Date       string `json:"date"`
		} `json:"customer" binding:"required"`
		DiscountPercent decimal.Decimal `json:"discount_percent"`
		DeliveryCharge  decimal.Decimal `json:"delivery_charge"`
		PaymentMethod   string          `json:"payment_method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.billingService.FinalizeBill(c.Request.Context(), service.FinalizeInput{
		Customer: entity.CustomerInfo{
			UniqueCode: req.Customer.UniqueCode,
			Name:       req.Customer.Name,
			Mobile:     req.Customer.Mobile,
			Address:    req.Customer.Address,
			Date:       req.Customer.Date,
		},
		DiscountPercent: req.DiscountPercent,
		DeliveryCharge:  req.DeliveryCharge,
		PaymentMethod:   enum.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.RenderWarning != "" {
		response.SuccessWithWarning(c, 201, "Bill finalized successfully", result.RenderWarning, result)
		return
	}
	response.Created(c, "Bill finalized successfully", result)
}

// RenderDocument handles regenerating a bill document from persisted
// bill data
func (h *BillingHandler) RenderDocument(c *gin.Context) {
	var bill entity.Bill
	if err := c.ShouldBindJSON(&bill); err != nil {
		response.BadRequest(c, "Invalid bill payload")
		return
	}

	path, err := h.billingService.RenderDocument(bill)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill document rendered successfully", gin.H{"document_path": path})
}
