package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jonesaica/internal/database"
	"jonesaica/internal/domain/capture"
	"jonesaica/internal/domain/catalog"
	"jonesaica/internal/domain/intake"
	"jonesaica/internal/middleware"
)

type TestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type ErrorResponse struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func setupSuite(t *testing.T) *TestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&catalog.Product{},
		&intake.Lead{},
		&intake.Quote{},
		&capture.VisitorFlag{},
	))

	catalogRepo := catalog.NewRepository(db)
	catalogHandler := catalog.NewHandler(catalog.NewService(catalogRepo))
	intakeHandler := intake.NewHandler(intake.NewService(intake.NewRepository(db), catalogRepo))
	captureHandler := capture.NewHandler(capture.NewPolicy(
		capture.NewGormFlagStore(db),
		capture.Config{Trigger: capture.TriggerDelayed, Delay: 5 * time.Second},
	))

	r := gin.New()
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	catalogHandler.RegisterRoutes(api)
	intakeHandler.RegisterRoutes(api)
	captureHandler.RegisterRoutes(api)

	return &TestSuite{router: r, db: db}
}

func (s *TestSuite) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestSeedEndpointIsIdempotent(t *testing.T) {
	s := setupSuite(t)

	w := s.request(t, http.MethodPost, "/api/seed-products", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.request(t, http.MethodPost, "/api/seed-products", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Products already seeded", body["message"])

	w = s.request(t, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []catalog.ProductView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 15)
}

func TestProductListingAndDetail(t *testing.T) {
	s := setupSuite(t)
	s.request(t, http.MethodPost, "/api/seed-products", nil)

	w := s.request(t, http.MethodGet, "/api/products?category=batteries", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var batteries []catalog.ProductView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &batteries))
	require.NotEmpty(t, batteries)
	for _, p := range batteries {
		assert.Equal(t, catalog.CategoryBatteries, p.Category)
		assert.Equal(t, "in-stock", string(p.Availability))
		assert.GreaterOrEqual(t, p.DiscountPercent, 0)
		assert.LessOrEqual(t, p.DiscountPercent, 100)
	}

	// detail lookup
	w = s.request(t, http.MethodGet, "/api/products/"+batteries[0].ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail catalog.ProductView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, batteries[0].Name, detail.Name)
	assert.NotEmpty(t, detail.SalePriceDisplay)

	// unknown id is a distinct 404
	w = s.request(t, http.MethodGet, "/api/products/nonexistent-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "PRODUCT_NOT_FOUND", errResp.Error.Code)

	// invalid category is a validation error, not an empty list
	w = s.request(t, http.MethodGet, "/api/products?category=bicycles", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLeadSubmission(t *testing.T) {
	s := setupSuite(t)

	payload := map[string]interface{}{
		"name":           "Marcia Brown",
		"email":          "marcia@example.com",
		"phone":          "876-555-0123",
		"parish":         "St. James",
		"district":       "Montego Bay",
		"interest":       "solar",
		"specific_needs": "Backup power for hurricane season",
	}

	w := s.request(t, http.MethodPost, "/api/leads", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var lead intake.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lead))
	assert.NotEmpty(t, lead.ID)
	assert.False(t, lead.CreatedAt.IsZero())
}

func TestLeadValidationReportsEveryField(t *testing.T) {
	s := setupSuite(t)

	w := s.request(t, http.MethodPost, "/api/leads", map[string]interface{}{
		"email":  "not-an-email",
		"parish": "Atlantis",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "VALIDATION_ERROR", errResp.Error.Code)
	assert.Contains(t, errResp.Error.Details, "name")
	assert.Contains(t, errResp.Error.Details, "email")
	assert.Contains(t, errResp.Error.Details, "parish")
	assert.Contains(t, errResp.Error.Details, "interest")

	// nothing was stored
	w = s.request(t, http.MethodGet, "/api/leads", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var leads []intake.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leads))
	assert.Empty(t, leads)
}

func TestQuoteSubmission(t *testing.T) {
	s := setupSuite(t)
	s.request(t, http.MethodPost, "/api/seed-products", nil)

	w := s.request(t, http.MethodGet, "/api/products?category=inverters", nil)
	var inverters []catalog.ProductView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inverters))
	require.NotEmpty(t, inverters)

	payload := map[string]interface{}{
		"name":           "Devon Campbell",
		"email":          "devon@example.com",
		"phone":          "876-555-0456",
		"parish":         "St. Catherine",
		"district":       "Portmore",
		"interest":       "quote",
		"products":       []string{inverters[0].ID},
		"specific_needs": "Full off-grid system for a 3-bedroom house",
	}

	w = s.request(t, http.MethodPost, "/api/quotes", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var quote intake.Quote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.NotEmpty(t, quote.ID)
	assert.Equal(t, "pending", quote.Status)
	assert.Equal(t, []string{inverters[0].ID}, quote.Products)

	// unknown product reference rejects the submission
	payload["products"] = []string{"nonexistent-id"}
	w = s.request(t, http.MethodPost, "/api/quotes", payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Error.Details, "products")
}

func TestQuoteWithEmptyProducts(t *testing.T) {
	s := setupSuite(t)

	payload := map[string]interface{}{
		"name":           "Devon Campbell",
		"email":          "devon@example.com",
		"phone":          "876-555-0456",
		"parish":         "St. James",
		"district":       "Montego Bay",
		"interest":       "solar",
		"products":       []string{},
		"specific_needs": "Panel cleaning and inspection",
	}

	w := s.request(t, http.MethodPost, "/api/quotes", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var quote intake.Quote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.NotEmpty(t, quote.ID)
	assert.False(t, quote.CreatedAt.IsZero())
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	s := setupSuite(t)

	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "INVALID_JSON", errResp.Error.Code)
}

func TestCaptureFlow(t *testing.T) {
	s := setupSuite(t)

	// fresh visitor gets the delayed prompt
	w := s.request(t, http.MethodGet, "/api/capture/visitor-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var decision capture.Decision
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decision))
	assert.True(t, decision.ShowPrompt)
	assert.Equal(t, int64(5000), decision.DelayMs)

	// dismissal writes nothing, so the visitor is still offered the prompt
	w = s.request(t, http.MethodPost, "/api/capture/visitor-1/dismiss", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.request(t, http.MethodGet, "/api/capture/visitor-1", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decision))
	assert.True(t, decision.ShowPrompt)

	// completion is durable
	w = s.request(t, http.MethodPost, "/api/capture/visitor-1/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.request(t, http.MethodGet, "/api/capture/visitor-1", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decision))
	assert.False(t, decision.ShowPrompt)
	assert.Equal(t, capture.StateShown, decision.State)
}
