package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alamin516/genius-car-server-sllcommerz/internal/client"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/config"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/dto"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/model"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/repository"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/server"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/service"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeGateway struct {
	lastRequest *client.PaymentRequest
}

func (f *fakeGateway) InitiatePayment(ctx context.Context, req *client.PaymentRequest) (*client.PaymentSession, error) {
	f.lastRequest = req
	return &client.PaymentSession{
		SessionKey:     "sess-" + req.TransactionID,
		GatewayPageURL: "https://sandbox.sslcommerz.com/EasyCheckOut/" + req.TransactionID,
	}, nil
}

type ServerTestSuite struct {
	suite.Suite
	db        *gorm.DB
	srv       *server.Server
	gateway   *fakeGateway
	orderRepo repository.OrderRepository
	token     string
}

func (s *ServerTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&model.Service{}, &model.Order{}))

	s.Require().NoError(db.Create(&model.Service{
		ID: 1, Name: "Engine Repair", Price: 150, Category: "Engine",
	}).Error)

	cfg := &config.Config{
		BaseURL:   "http://localhost:5000",
		ClientURL: "http://client.test",
		JWT:       config.JWT{Secret: "test-secret"},
	}

	serviceRepo := repository.NewServiceRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	gateway := &fakeGateway{}

	catalogService := service.NewCatalogService(serviceRepo)
	checkoutService := service.NewCheckoutService(serviceRepo, orderRepo, gateway, cfg.BaseURL)
	tokenService := service.NewTokenService(cfg.JWT.Secret)

	token, err := tokenService.Issue(map[string]interface{}{"email": "a@b.com"})
	s.Require().NoError(err)

	s.db = db
	s.srv = server.NewServer(cfg, catalogService, checkoutService, tokenService)
	s.gateway = gateway
	s.orderRepo = orderRepo
	s.token = token
}

func (s *ServerTestSuite) request(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.srv.Echo().ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *ServerTestSuite) TestLiveness() {
	rec := s.request(http.MethodGet, "/", "", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("genius car server is running", rec.Body.String())
}

func (s *ServerTestSuite) TestIssueToken() {
	rec := s.request(http.MethodPost, "/jwt", `{"email":"a@b.com"}`, "")

	s.Equal(http.StatusOK, rec.Code)

	var resp dto.TokenResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotEmpty(resp.Token)
}

func (s *ServerTestSuite) TestCheckoutScenario() {
	rec := s.request(http.MethodPost, "/orders",
		`{"service":1,"email":"a@b.com","address":"X"}`, s.token)

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var created dto.CreateOrderResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Contains(created.URL, "https://sandbox.sslcommerz.com/")

	transactionID := s.gateway.lastRequest.TransactionID
	rec = s.request(http.MethodGet, "/order/by-transactionId/"+transactionID, "", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var order model.Order
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &order))
	s.False(order.Paid)
	s.Equal(float64(150), order.Price)
	s.Equal(transactionID, order.TransactionID)
}

func (s *ServerTestSuite) TestCreateOrderMissingAddressIsValidationError() {
	rec := s.request(http.MethodPost, "/orders",
		`{"service":1,"email":"a@b.com"}`, s.token)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("validation_error", s.errorCode(rec))

	var count int64
	s.Require().NoError(s.db.Model(&model.Order{}).Count(&count).Error)
	s.Equal(int64(0), count)
}

func (s *ServerTestSuite) TestCreateOrderWithoutTokenIsUnauthorized() {
	rec := s.request(http.MethodPost, "/orders",
		`{"service":1,"email":"a@b.com","address":"X"}`, "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("unauthorized", s.errorCode(rec))
}

func (s *ServerTestSuite) TestListOrdersEmailMismatchIsForbidden() {
	rec := s.request(http.MethodGet, "/orders?email=other@b.com", "", s.token)

	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("forbidden", s.errorCode(rec))
}

func (s *ServerTestSuite) TestListOrdersByOwnEmail() {
	rec := s.request(http.MethodPost, "/orders",
		`{"service":1,"email":"a@b.com","address":"X"}`, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, "/orders?email=a@b.com", "", s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var orders []model.Order
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &orders))
	s.Len(orders, 1)
}

func (s *ServerTestSuite) TestPaymentSuccessRedirectsAndMarksPaid() {
	rec := s.request(http.MethodPost, "/orders",
		`{"service":1,"email":"a@b.com","address":"X"}`, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)
	transactionID := s.gateway.lastRequest.TransactionID

	rec = s.request(http.MethodPost, "/payment/success?transactionId="+transactionID, "", "")
	s.Equal(http.StatusFound, rec.Code)
	s.Equal("http://client.test/payment/success?transactionId="+transactionID, rec.Header().Get("Location"))

	order, err := s.orderRepo.FindByTransactionID(context.Background(), transactionID)
	s.Require().NoError(err)
	s.True(order.Paid)
	s.NotNil(order.PaidAt)
}

func (s *ServerTestSuite) TestPaymentSuccessWithoutTransactionRedirectsToFail() {
	rec := s.request(http.MethodPost, "/payment/success", "", "")

	s.Equal(http.StatusFound, rec.Code)
	s.Equal("http://client.test/payment/fail", rec.Header().Get("Location"))
}

func (s *ServerTestSuite) TestPaymentFailDeletesOrderAndRedirects() {
	rec := s.request(http.MethodPost, "/orders",
		`{"service":1,"email":"a@b.com","address":"X"}`, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)
	transactionID := s.gateway.lastRequest.TransactionID

	rec = s.request(http.MethodPost, "/payment/fail?transactionId="+transactionID, "", "")
	s.Equal(http.StatusFound, rec.Code)
	s.Equal("http://client.test/payment/fail", rec.Header().Get("Location"))

	var count int64
	s.Require().NoError(s.db.Model(&model.Order{}).Count(&count).Error)
	s.Equal(int64(0), count)
}

func (s *ServerTestSuite) TestGetServiceMalformedIDIsValidationError() {
	rec := s.request(http.MethodGet, "/services/not-a-number", "", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("validation_error", s.errorCode(rec))
}

func (s *ServerTestSuite) TestGetUnknownServiceIsNotFound() {
	rec := s.request(http.MethodGet, "/services/99", "", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("not_found", s.errorCode(rec))
}

func (s *ServerTestSuite) TestDeleteOrderReturnsCount() {
	rec := s.request(http.MethodPost, "/orders",
		`{"service":1,"email":"a@b.com","address":"X"}`, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	orders, err := s.orderRepo.FindByEmail(context.Background(), "a@b.com")
	s.Require().NoError(err)
	s.Require().Len(orders, 1)

	rec = s.request(http.MethodDelete, "/orders/1", "", s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp dto.DeleteOrderResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(1), resp.DeletedCount)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
