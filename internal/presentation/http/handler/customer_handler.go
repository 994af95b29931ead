package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/readytocook/billing-api/internal/application/service"
	"github.com/readytocook/billing-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer ledger HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing all ledger records
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customers retrieved successfully", customers)
}

// Get handles looking up one customer by unique code
func (h *CustomerHandler) Get(c *gin.Context) {
	code := c.Param("code")

	customer, err := h.customerService.GetCustomer(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer retrieved successfully", customer)
}
