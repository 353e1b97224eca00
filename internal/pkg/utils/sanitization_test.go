package utils

import (
	"emr-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateServiceOrderRequest(t *testing.T) {
	t.Run("Kind Is Lowercased And Trimmed", func(t *testing.T) {
		request := &requests.CreateServiceOrder{
			Kind:      "  Lab-Order  ",
			PatientID: " 64f000000000000000000001 ",
			Items: []requests.OrderItemRequest{
				{Code: " CBC ", Description: "  Complete blood count  ", UnitPrice: 1200, Quantity: 1},
			},
		}

		SanitizeCreateServiceOrderRequest(request)

		assert.Equal(t, "lab-order", request.Kind)
		assert.Equal(t, "64f000000000000000000001", request.PatientID)
		assert.Equal(t, "CBC", request.Items[0].Code)
		assert.Equal(t, "Complete blood count", request.Items[0].Description)
	})
}

func TestSanitizeSettlePaymentRequest(t *testing.T) {
	t.Run("Payment Method Normalized", func(t *testing.T) {
		request := &requests.SettlePayment{
			PaymentMethod: "  CASH  ",
			Notes:         "  paid in full  ",
		}

		SanitizeSettlePaymentRequest(request)

		assert.Equal(t, "cash", request.PaymentMethod)
		assert.Equal(t, "paid in full", request.Notes)
	})
}

func TestSanitizeCreateNotificationRequest(t *testing.T) {
	t.Run("Recipient Role Lowercased", func(t *testing.T) {
		request := &requests.CreateNotification{
			Recipient: requests.RecipientSelector{ID: " 64f000000000000000000002 ", Role: " Billing-Staff "},
			Type:      " payment-received ",
			Message:   "  Payment received  ",
		}

		SanitizeCreateNotificationRequest(request)

		assert.Equal(t, "64f000000000000000000002", request.Recipient.ID)
		assert.Equal(t, "billing-staff", request.Recipient.Role)
		assert.Equal(t, "payment-received", request.Type)
		assert.Equal(t, "Payment received", request.Message)
	})
}

func TestValidateStruct(t *testing.T) {
	t.Run("Unknown Payment Method Rejected", func(t *testing.T) {
		request := &requests.SettlePayment{
			PaymentMethod: "barter",
			Amount:        100,
		}

		err := ValidateStruct(request)

		assert.Error(t, err)
	})

	t.Run("Valid Payment Accepted", func(t *testing.T) {
		request := &requests.SettlePayment{
			PaymentMethod: "mobile-money",
			Amount:        100,
		}

		err := ValidateStruct(request)

		assert.NoError(t, err)
	})

	t.Run("Negative Amount Rejected", func(t *testing.T) {
		request := &requests.SettlePayment{
			PaymentMethod: "cash",
			Amount:        -1,
		}

		err := ValidateStruct(request)

		assert.Error(t, err)
	})
}
