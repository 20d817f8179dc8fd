package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alamin516/genius-car-server-sllcommerz/internal/apperr"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/client"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/dto"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/model"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultCurrency = "BDT"

type CheckoutService interface {
	CreateOrder(ctx context.Context, draft *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	ListOrders(ctx context.Context, email string) ([]*model.Order, error)
	OrderByTransactionID(ctx context.Context, transactionID string) (*model.Order, error)
	ConfirmPayment(ctx context.Context, transactionID string) (bool, error)
	FailPayment(ctx context.Context, transactionID string) (int64, error)
	DeleteOrder(ctx context.Context, orderID uint) (int64, error)
}

type checkoutServiceImpl struct {
	serviceRepo repository.ServiceRepository
	orderRepo   repository.OrderRepository
	gateway     client.GatewayClient
	baseURL     string
}

func NewCheckoutService(
	serviceRepo repository.ServiceRepository,
	orderRepo repository.OrderRepository,
	gateway client.GatewayClient,
	baseURL string,
) CheckoutService {
	return &checkoutServiceImpl{
		serviceRepo: serviceRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
		baseURL:     baseURL,
	}
}

// newTransactionID mints an uppercase hex string unique per checkout attempt.
func newTransactionID() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:]))
}

func (s *checkoutServiceImpl) CreateOrder(ctx context.Context, draft *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if draft.Service == 0 || draft.Email == "" || draft.Address == "" {
		return nil, apperr.Validation("please provide all information")
	}

	orderService, err := s.serviceRepo.FindByID(ctx, draft.Service)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("service not found")
	}
	if err != nil {
		return nil, apperr.Internal("create order", fmt.Errorf("find service: %w", err))
	}

	currency := draft.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	transactionID := newTransactionID()

	session, err := s.gateway.InitiatePayment(ctx, &client.PaymentRequest{
		Amount:           orderService.Price,
		Currency:         currency,
		TransactionID:    transactionID,
		SuccessURL:       fmt.Sprintf("%s/payment/success?transactionId=%s", s.baseURL, transactionID),
		FailURL:          fmt.Sprintf("%s/payment/fail?transactionId=%s", s.baseURL, transactionID),
		CancelURL:        fmt.Sprintf("%s/payment/cancel", s.baseURL),
		CustomerName:     draft.Customer,
		CustomerEmail:    draft.Email,
		CustomerAddress:  draft.Address,
		CustomerPostcode: draft.Postcode,
	})
	if err != nil {
		return nil, apperr.Gateway("payment initiation failed", err)
	}

	// The gateway already knows this transaction; a crash before the insert
	// below loses the local record. Known gap, carried over from the flow
	// this replaces.
	order := &model.Order{
		ServiceID:     draft.Service,
		Email:         draft.Email,
		Customer:      draft.Customer,
		Address:       draft.Address,
		Postcode:      draft.Postcode,
		Currency:      currency,
		Price:         orderService.Price,
		TransactionID: transactionID,
		Paid:          false,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperr.Internal("create order", fmt.Errorf("store order: %w", err))
	}

	return &dto.CreateOrderResponse{
		URL: session.GatewayPageURL,
	}, nil
}

func (s *checkoutServiceImpl) ListOrders(ctx context.Context, email string) ([]*model.Order, error) {
	var (
		orders []*model.Order
		err    error
	)

	if email != "" {
		orders, err = s.orderRepo.FindByEmail(ctx, email)
	} else {
		orders, err = s.orderRepo.FindAll(ctx)
	}

	if err != nil {
		return nil, apperr.Internal("list orders", fmt.Errorf("find orders: %w", err))
	}

	return orders, nil
}

func (s *checkoutServiceImpl) OrderByTransactionID(ctx context.Context, transactionID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByTransactionID(ctx, transactionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, apperr.Internal("lookup order", fmt.Errorf("find order: %w", err))
	}

	return order, nil
}

// ConfirmPayment reports whether an order was actually marked paid; a
// callback with an unknown transaction id mutates nothing.
func (s *checkoutServiceImpl) ConfirmPayment(ctx context.Context, transactionID string) (bool, error) {
	updated, err := s.orderRepo.MarkPaid(ctx, transactionID, time.Now())
	if err != nil {
		return false, apperr.Internal("confirm payment", fmt.Errorf("mark paid: %w", err))
	}

	return updated > 0, nil
}

// FailPayment removes the pending order. Deleting an already-removed
// transaction is a no-op, so repeated fail callbacks are safe.
func (s *checkoutServiceImpl) FailPayment(ctx context.Context, transactionID string) (int64, error) {
	deleted, err := s.orderRepo.DeleteByTransactionID(ctx, transactionID)
	if err != nil {
		return 0, apperr.Internal("fail payment", fmt.Errorf("delete order: %w", err))
	}

	return deleted, nil
}

func (s *checkoutServiceImpl) DeleteOrder(ctx context.Context, orderID uint) (int64, error) {
	deleted, err := s.orderRepo.DeleteByID(ctx, orderID)
	if err != nil {
		return 0, apperr.Internal("delete order", fmt.Errorf("delete order: %w", err))
	}

	return deleted, nil
}
