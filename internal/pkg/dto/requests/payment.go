package requests

type SettlePayment struct {
	ServiceOrderID string  `json:"-"`
	PaymentMethod  string  `json:"paymentMethod" validate:"required,payment_method"`
	Amount         float64 `json:"amount" validate:"gte=0"`
	Notes          string  `json:"notes"`
}
