package requests

type OrderItemRequest struct {
	Code        string  `json:"code"`
	Description string  `json:"description" validate:"required"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gt=0"`
}

type CreateServiceOrder struct {
	Kind      string             `json:"kind" validate:"required,oneof=lab-order procedure"`
	PatientID string             `json:"patientId" validate:"required"`
	Items     []OrderItemRequest `json:"items" validate:"dive"`
	Notes     string             `json:"notes"`
}

type GenerateBilling struct {
	ServiceOrderID string `json:"-"`
}
