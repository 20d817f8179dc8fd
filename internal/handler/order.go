package handler

import (
	"net/http"

	"github.com/alamin516/genius-car-server-sllcommerz/internal/apperr"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/dto"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/middleware"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	checkoutService service.CheckoutService
	clientURL       string
}

func NewOrderHandler(checkoutService service.CheckoutService, clientURL string) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		clientURL:       clientURL,
	}
}

// ListOrders requires the email filter, when present, to match the
// authenticated identity. Without a filter every order is returned to any
// authenticated caller.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	email := c.QueryParam("email")
	if email != "" {
		claimed, _ := c.Get(middleware.EmailContextKey).(string)
		if claimed != email {
			return apperr.Forbidden("forbidden access")
		}
	}

	orders, err := h.checkoutService.ListOrders(ctx, email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var draft dto.CreateOrderRequest
	if err := c.Bind(&draft); err != nil {
		return apperr.Validation("invalid request body")
	}

	result, err := h.checkoutService.CreateOrder(ctx, &draft)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// -------- gateway callbacks --------

func (h *OrderHandler) PaymentSuccess(c echo.Context) error {
	ctx := c.Request().Context()

	transactionID := c.QueryParam("transactionId")
	if transactionID == "" {
		return c.Redirect(http.StatusFound, h.clientURL+"/payment/fail")
	}

	confirmed, err := h.checkoutService.ConfirmPayment(ctx, transactionID)
	if err != nil {
		return err
	}
	if !confirmed {
		return c.Redirect(http.StatusFound, h.clientURL+"/payment/fail")
	}

	return c.Redirect(http.StatusFound, h.clientURL+"/payment/success?transactionId="+transactionID)
}

func (h *OrderHandler) PaymentFail(c echo.Context) error {
	ctx := c.Request().Context()

	transactionID := c.QueryParam("transactionId")
	if transactionID == "" {
		return c.Redirect(http.StatusFound, h.clientURL+"/payment/fail")
	}

	if _, err := h.checkoutService.FailPayment(ctx, transactionID); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, h.clientURL+"/payment/fail")
}

// PaymentCancel leaves the order pending and sends the buyer back to the
// client's fail page.
func (h *OrderHandler) PaymentCancel(c echo.Context) error {
	return c.Redirect(http.StatusFound, h.clientURL+"/payment/fail")
}

func (h *OrderHandler) OrderByTransactionID(c echo.Context) error {
	ctx := c.Request().Context()

	transactionID := c.Param("id")
	if transactionID == "" {
		return apperr.Validation("invalid transaction id")
	}

	order, err := h.checkoutService.OrderByTransactionID(ctx, transactionID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := idFromParam(c, "id")
	if err != nil {
		return err
	}

	deleted, err := h.checkoutService.DeleteOrder(ctx, orderID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.DeleteOrderResponse{DeletedCount: deleted})
}
