// internal/handlers/api_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/hackeed/hackeed-backend/internal/config"
	"github.com/hackeed/hackeed-backend/internal/models"
	"github.com/hackeed/hackeed-backend/internal/payments"
	"github.com/hackeed/hackeed-backend/internal/services"
)

type stubCatalog struct {
	products []models.Product
	err      error
}

func (s *stubCatalog) ListActive(ctx context.Context) ([]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *stubCatalog) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.ListActive(ctx)
}

func (s *stubCatalog) ActiveByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []models.Product
	for _, p := range s.products {
		if p.Active && wanted[p.ID.String()] {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubProvider struct {
	createErr error
	event     *payments.Event
	verifyErr error
	paidItems []payments.PaidItem
	session   *payments.SessionInfo
	getErr    error
}

func (s *stubProvider) CreateSession(customerEmail string, items []payments.LineItem) (*payments.SessionRef, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &payments.SessionRef{ID: "cs_test_123", URL: "https://checkout.example/cs_test_123"}, nil
}

func (s *stubProvider) ListPaidItems(sessionID string) ([]payments.PaidItem, error) {
	return s.paidItems, nil
}

func (s *stubProvider) GetSession(sessionID string) (*payments.SessionInfo, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.session, nil
}

func (s *stubProvider) VerifyWebhook(payload []byte, sigHeader string) (*payments.Event, error) {
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}
	return s.event, nil
}

type stubInventory struct{}

func (s *stubInventory) DecrementStock(ctx context.Context, productID string, qty int64) error {
	return nil
}

func (s *stubInventory) DecrementVariantStock(ctx context.Context, productID, optionKey string, qty int64) error {
	return nil
}

type stubEventLog struct {
	processed map[string]bool
}

func (s *stubEventLog) AlreadyProcessed(ctx context.Context, eventID string) (bool, error) {
	return s.processed[eventID], nil
}

func (s *stubEventLog) Record(ctx context.Context, event *models.StripeEvent) error {
	if s.processed == nil {
		s.processed = map[string]bool{}
	}
	s.processed[event.StripeEventID] = true
	return nil
}

type stubOrders struct{}

func (s *stubOrders) UpsertBySession(ctx context.Context, order *models.Order) error { return nil }

func (s *stubOrders) FindBySession(ctx context.Context, sessionID string) (*models.Order, error) {
	return nil, nil
}

type APITestSuite struct {
	suite.Suite
	router   *gin.Engine
	catalog  *stubCatalog
	provider *stubProvider
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	product := models.Product{
		SKU:        "PROD-001",
		Name:       "Plain Tee",
		PriceCents: 2999,
		Stock:      5,
		Active:     true,
	}
	product.ID = uuid.New()

	suite.catalog = &stubCatalog{products: []models.Product{product}}
	suite.provider = &stubProvider{}

	cfg := &config.Config{Environment: "development"}

	productHandler := NewProductHandler(services.NewCatalogService(suite.catalog))
	checkoutHandler := NewCheckoutHandler(services.NewCheckoutService(suite.catalog, suite.provider))
	webhookHandler := NewWebhookHandler(services.NewWebhookService(
		suite.provider, &stubInventory{}, &stubEventLog{}, &stubOrders{}))
	verificationHandler := NewVerificationHandler(services.NewVerificationService(suite.provider, &stubOrders{}))
	debugHandler := NewDebugHandler(suite.catalog, cfg)

	suite.router = gin.New()
	api := suite.router.Group("/api")
	{
		api.GET("/products", productHandler.GetProducts)
		api.POST("/checkout", checkoutHandler.CreateSession)
		api.POST("/webhook", webhookHandler.HandleStripeWebhook)
		api.GET("/verify", verificationHandler.VerifySession)
		api.GET("/debug/products", debugHandler.GetProducts)
	}
}

func (suite *APITestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) TestGetProductsReturnsBareArray() {
	w := suite.do("GET", "/api/products", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var products []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &products))
	suite.Require().Len(products, 1)
	assert.Equal(suite.T(), "Plain Tee", products[0]["name"])
	assert.Equal(suite.T(), 29.99, products[0]["price"])
	assert.Equal(suite.T(), true, products[0]["inStock"])
}

func (suite *APITestSuite) TestGetProductsStorageFailure() {
	suite.catalog.err = errors.New("connection refused")

	w := suite.do("GET", "/api/products", nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(suite.T(), body, "error")
}

func (suite *APITestSuite) TestCheckoutReturnsSessionRef() {
	productID := suite.catalog.products[0].ID.String()
	w := suite.do("POST", "/api/checkout", map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": productID, "quantity": 2},
		},
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "cs_test_123", body["id"])
	assert.Equal(suite.T(), "https://checkout.example/cs_test_123", body["url"])
}

func (suite *APITestSuite) TestCheckoutEmptyCart() {
	w := suite.do("POST", "/api/checkout", map[string]interface{}{
		"items": []map[string]interface{}{},
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(suite.T(), body, "error")
}

func (suite *APITestSuite) TestCheckoutMalformedBody() {
	req, _ := http.NewRequest("POST", "/api/checkout", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestCheckoutProcessorDown() {
	suite.provider.createErr = errors.New("dial tcp: i/o timeout")

	productID := suite.catalog.products[0].ID.String()
	w := suite.do("POST", "/api/checkout", map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": productID, "quantity": 1},
		},
	})

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
}

func (suite *APITestSuite) TestWebhookAcknowledges() {
	suite.provider.event = &payments.Event{
		ID:   "evt_1",
		Type: "payment_intent.succeeded",
	}

	w := suite.do("POST", "/api/webhook", map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), true, body["received"])
}

func (suite *APITestSuite) TestWebhookBadSignature() {
	suite.provider.verifyErr = errors.New("signature mismatch")

	w := suite.do("POST", "/api/webhook", map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(suite.T(), body["error"], "Webhook Error")
}

func (suite *APITestSuite) TestVerifyMissingSessionID() {
	w := suite.do("GET", "/api/verify", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestVerifyPaidSession() {
	suite.provider.session = &payments.SessionInfo{
		ID:            "cs_test_abc",
		PaymentStatus: "paid",
		AmountTotal:   5998,
		Currency:      "eur",
	}

	w := suite.do("GET", "/api/verify?session_id=cs_test_abc", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), true, body["paymentVerified"])
}

func (suite *APITestSuite) TestDebugOpenInDevelopment() {
	w := suite.do("GET", "/api/debug/products", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), float64(1), body["count"])
}

func (suite *APITestSuite) TestDebugEchoesStorageErrorDetail() {
	suite.catalog.err = errors.New("pq: relation \"products\" does not exist")

	w := suite.do("GET", "/api/debug/products", nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "pq: relation \"products\" does not exist", body["error"])
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func TestDebugGateOutsideDevelopment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	catalog := &stubCatalog{}
	cfg := &config.Config{Environment: "production"}
	cfg.Debug.Token = "sekrit"

	handler := NewDebugHandler(catalog, cfg)

	router := gin.New()
	router.GET("/api/debug/products", handler.GetProducts)

	// No token
	req, _ := http.NewRequest("GET", "/api/debug/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Wrong token
	req, _ = http.NewRequest("GET", "/api/debug/products", nil)
	req.Header.Set("X-Debug-Token", "guess")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Correct token
	req, _ = http.NewRequest("GET", "/api/debug/products", nil)
	req.Header.Set("X-Debug-Token", "sekrit")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
