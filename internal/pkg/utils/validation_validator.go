package utils

import (
	"emr-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("payment_method", validatePaymentMethod)
	validate.RegisterValidation("payment_type", validatePaymentType)
	validate.RegisterValidation("actor_role", validateActorRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.PaymentMethodCash,
		constvars.PaymentMethodCard,
		constvars.PaymentMethodBankTransfer,
		constvars.PaymentMethodMobileMoney:
		return true
	}
	return false
}

func validatePaymentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.PaymentTypeLabTest,
		constvars.PaymentTypeProcedure,
		constvars.PaymentTypeRegistration,
		constvars.PaymentTypeOther:
		return true
	}
	return false
}

func validateActorRole(fl validator.FieldLevel) bool {
	return IsKnownRole(fl.Field().String())
}

func IsKnownRole(role string) bool {
	switch role {
	case constvars.RoleDoctor,
		constvars.RoleNurse,
		constvars.RoleLabAssistant,
		constvars.RoleFrontDesk,
		constvars.RoleBillingStaff,
		constvars.RoleAdmin:
		return true
	}
	return false
}
