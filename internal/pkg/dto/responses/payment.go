package responses

import "emr-service/internal/app/models"

type PaymentStatus struct {
	Paid          bool    `json:"paid"`
	BillingStatus string  `json:"billingStatus,omitempty"`
	BillingID     string  `json:"billingId,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Message       string  `json:"message,omitempty"`
}

type Settlement struct {
	Payment      *models.Payment      `json:"payment"`
	ServiceOrder *models.ServiceOrder `json:"serviceOrder"`
}
