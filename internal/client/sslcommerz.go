package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alamin516/genius-car-server-sllcommerz/internal/config"

	"github.com/shopspring/decimal"
)

type GatewayClient interface {
	// InitiatePayment registers a payment session with the gateway and
	// returns the hosted page the buyer must be redirected to.
	InitiatePayment(ctx context.Context, req *PaymentRequest) (*PaymentSession, error)
}

type PaymentRequest struct {
	Amount        float64
	Currency      string
	TransactionID string
	SuccessURL    string
	FailURL       string
	CancelURL     string

	CustomerName     string
	CustomerEmail    string
	CustomerAddress  string
	CustomerPostcode string
}

type PaymentSession struct {
	SessionKey     string
	GatewayPageURL string
}

type sslcommerzInitResult struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

type sslcommerzClientImpl struct {
	httpClient    *http.Client
	baseApiURL    string
	storeID       string
	storePassword string
	defaults      config.Checkout
}

func NewSSLCommerzClient(gatewayCfg *config.SSLCommerz, checkoutCfg config.Checkout) GatewayClient {
	return &sslcommerzClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL:    gatewayCfg.BaseAPIURL,
		storeID:       gatewayCfg.StoreID,
		storePassword: gatewayCfg.StorePassword,
		defaults:      checkoutCfg,
	}
}

func (c *sslcommerzClientImpl) InitiatePayment(ctx context.Context, payReq *PaymentRequest) (*PaymentSession, error) {
	form := url.Values{}
	form.Set("store_id", c.storeID)
	form.Set("store_passwd", c.storePassword)
	form.Set("total_amount", decimal.NewFromFloat(payReq.Amount).StringFixed(2))
	form.Set("currency", payReq.Currency)
	form.Set("tran_id", payReq.TransactionID) // use unique tran_id for each api call
	form.Set("success_url", payReq.SuccessURL)
	form.Set("fail_url", payReq.FailURL)
	form.Set("cancel_url", payReq.CancelURL)
	form.Set("shipping_method", c.defaults.ShippingMethod)
	form.Set("product_name", c.defaults.ProductName)
	form.Set("product_category", c.defaults.ProductCategory)
	form.Set("product_profile", c.defaults.ProductProfile)
	form.Set("cus_name", payReq.CustomerName)
	form.Set("cus_email", payReq.CustomerEmail)
	form.Set("cus_add1", payReq.CustomerAddress)
	form.Set("cus_add2", c.defaults.City)
	form.Set("cus_city", c.defaults.City)
	form.Set("cus_state", c.defaults.State)
	form.Set("cus_postcode", payReq.CustomerPostcode)
	form.Set("cus_country", c.defaults.Country)
	form.Set("cus_phone", c.defaults.Phone)
	form.Set("cus_fax", c.defaults.Phone)
	form.Set("ship_name", c.defaults.ShipName)
	form.Set("ship_add1", c.defaults.City)
	form.Set("ship_add2", c.defaults.City)
	form.Set("ship_city", c.defaults.City)
	form.Set("ship_state", c.defaults.State)
	form.Set("ship_postcode", c.defaults.ShipPostcode)
	form.Set("ship_country", c.defaults.Country)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseApiURL+"/gwprocess/v4/api.php",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("sslcommerz error %d", resp.StatusCode)
	}

	var result sslcommerzInitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode sslcommerz response: %w", err)
	}

	if result.Status != "SUCCESS" {
		return nil, fmt.Errorf("sslcommerz session rejected: %s", result.FailedReason)
	}
	if result.GatewayPageURL == "" {
		return nil, fmt.Errorf("sslcommerz session has no gateway page url")
	}

	return &PaymentSession{
		SessionKey:     result.SessionKey,
		GatewayPageURL: result.GatewayPageURL,
	}, nil
}
