package dto

type CreateOrderRequest struct {
	Service  uint   `json:"service"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Customer string `json:"customer"`
	Currency string `json:"currency"`
	Postcode string `json:"postcode"`
}

type CreateOrderResponse struct {
	URL string `json:"url"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type DeleteOrderResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
