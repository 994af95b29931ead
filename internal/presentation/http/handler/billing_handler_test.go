package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/readytocook/billing-api/internal/application/service"
	"github.com/readytocook/billing-api/internal/config"
	"github.com/readytocook/billing-api/internal/infrastructure/storage"
	"github.com/readytocook/billing-api/internal/presentation/http/handler"
	"github.com/readytocook/billing-api/internal/presentation/http/routes"
	"github.com/readytocook/billing-api/pkg/document"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	billingService := service.NewBillingService(
		storage.NewBillNumberStore(filepath.Join(dir, "bill_number.txt"), 0),
		storage.NewCustomerLedger(filepath.Join(dir, "customers.json")),
		storage.NewSalesJournal(filepath.Join(dir, "sales_data.csv")),
		document.NewFileWriter(filepath.Join(dir, "bills")),
		service.BusinessInfo{Name: "Ready to Cook by 'NILA'"},
	)
	catalogService := service.NewCatalogService(storage.NewCatalogStore(filepath.Join(dir, "products.json")))
	customerService := service.NewCustomerService(storage.NewCustomerLedger(filepath.Join(dir, "customers.json")))

	cfg := &config.Config{
		App:       config.AppConfig{Name: "billing-api"},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	}
	return routes.Setup(&routes.Handlers{
		Billing:  handler.NewBillingHandler(billingService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Customer: handler.NewCustomerHandler(customerService),
	}, cfg)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, w.Body.String())
	}
	return body
}

func addItem(t *testing.T, router *gin.Engine, category, item string, price, qty float64) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/bill/items", gin.H{
		"category": category, "item_name": item, "unit_price": price, "quantity": qty,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add item: got %d: %s", w.Code, w.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d", w.Code)
	}
}

func TestAddItemEndpoint(t *testing.T) {
	router := newTestRouter(t)

	addItem(t, router, "Rice", "Basmati", 100, 2)

	// Missing category fails binding
	w := doJSON(t, router, http.MethodPost, "/api/v1/bill/items", gin.H{
		"item_name": "Basmati", "unit_price": 100, "quantity": 1,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing category: got %d, want 400", w.Code)
	}

	// Negative price fails validation
	w = doJSON(t, router, http.MethodPost, "/api/v1/bill/items", gin.H{
		"category": "Rice", "item_name": "Basmati", "unit_price": -5, "quantity": 1,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("negative price: got %d, want 422", w.Code)
	}
}

func TestBillPreviewEndpoint(t *testing.T) {
	router := newTestRouter(t)
	addItem(t, router, "Rice", "Basmati", 100, 1)

	w := doJSON(t, router, http.MethodGet, "/api/v1/bill?discount_percent=10&delivery_charge=20&payment_method=COD", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	totals := data["totals"].(map[string]interface{})
	if got := totals["grand_total"].(float64); got != 110 {
		t.Errorf("grand_total: got %v, want 110", got)
	}
	if got := totals["discount_amount"].(float64); got != 10 {
		t.Errorf("discount_amount: got %v, want 10", got)
	}
}

func TestFinalizeEndpoint(t *testing.T) {
	router := newTestRouter(t)
	addItem(t, router, "Rice", "Basmati", 100, 2)
	addItem(t, router, "Oil", "Sunflower", 50, 1)

	w := doJSON(t, router, http.MethodPost, "/api/v1/bill/finalize", gin.H{
		"customer": gin.H{
			"unique_code": "C-007",
			"name":        "Anika Rahman",
			"mobile":      "01711-000000",
			"address":     "Dhanmondi, Dhaka",
			"date":        "2026-08-29",
		},
		"discount_percent": 10,
		"delivery_charge":  20,
		"payment_method":   "COD",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("finalize: got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	bill := data["bill"].(map[string]interface{})
	if got := bill["bill_number"].(float64); got != 20240002 {
		t.Errorf("bill_number: got %v, want 20240002", got)
	}
	totals := bill["totals"].(map[string]interface{})
	if got := totals["grand_total"].(float64); got != 245 {
		t.Errorf("grand_total: got %v, want 245", got)
	}
	if data["document_path"] == nil || data["document_path"] == "" {
		t.Error("document_path missing from finalize response")
	}

	// The ledger is visible through the customers endpoint
	w = doJSON(t, router, http.MethodGet, "/api/v1/customers/C-007", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get customer: got %d", w.Code)
	}
	record := decodeBody(t, w)["data"].(map[string]interface{})
	if got := record["total_spend"].(float64); got != 250 {
		t.Errorf("total_spend: got %v, want 250", got)
	}

	// Unknown customer is a 404
	w = doJSON(t, router, http.MethodGet, "/api/v1/customers/nobody", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown customer: got %d, want 404", w.Code)
	}
}

func TestFinalizeMissingUniqueCode(t *testing.T) {
	router := newTestRouter(t)
	addItem(t, router, "Rice", "Basmati", 100, 1)

	w := doJSON(t, router, http.MethodPost, "/api/v1/bill/finalize", gin.H{
		"customer":       gin.H{"name": "No Code"},
		"payment_method": "COD",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400", w.Code)
	}
}

func TestClearItemsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	addItem(t, router, "Rice", "Basmati", 100, 1)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/bill/items", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("clear: got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/bill", nil)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	if items, ok := data["items"].([]interface{}); ok && len(items) != 0 {
		t.Errorf("items after clear: got %d, want 0", len(items))
	}
}

func TestCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/catalog/categories", gin.H{"name": "Rice"})
	if w.Code != http.StatusCreated {
		t.Fatalf("add category: got %d", w.Code)
	}
	w = doJSON(t, router, http.MethodPost, "/api/v1/catalog/categories/Rice/items", gin.H{"item": "Basmati"})
	if w.Code != http.StatusCreated {
		t.Fatalf("add item: got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/catalog", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get catalog: got %d", w.Code)
	}
	catalog := decodeBody(t, w)["data"].(map[string]interface{})
	items, ok := catalog["Rice"].([]interface{})
	if !ok || len(items) != 1 || items[0] != "Basmati" {
		t.Errorf("catalog: got %v", catalog)
	}

	// Removing an item from an unknown category is a 404
	w = doJSON(t, router, http.MethodDelete, "/api/v1/catalog/categories/Fish/items/Hilsa", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown category: got %d, want 404", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/v1/catalog/categories/Rice/items/Basmati", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove item: got %d", w.Code)
	}
	w = doJSON(t, router, http.MethodDelete, "/api/v1/catalog/categories/Rice", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove category: got %d", w.Code)
	}
}
