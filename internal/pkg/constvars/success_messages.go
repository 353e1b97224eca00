package constvars

const (
	CreatePatientSuccessMessage       = "Successfully registered patient"
	GetPatientSuccessMessage          = "Successfully retrieved patient"
	GetPatientsSuccessMessage         = "Successfully retrieved patients"
	CreateServiceOrderSuccessMessage  = "Successfully created service order"
	GetServiceOrderSuccessMessage     = "Successfully retrieved service order"
	GetServiceOrdersSuccessMessage    = "Successfully retrieved service orders"
	CancelServiceOrderSuccessMessage  = "Successfully cancelled service order"
	GenerateBillingSuccessMessage     = "Successfully generated billing"
	GetPaymentStatusSuccessMessage    = "Successfully retrieved payment status"
	SettlePaymentSuccessMessage       = "Successfully processed payment"
	GetPaymentSuccessMessage          = "Successfully retrieved payment"
	CreateNotificationSuccessMessage  = "Successfully created notification"
	BroadcastSuccessMessage           = "Successfully broadcasted notification"
	GetNotificationsSuccessMessage    = "Successfully retrieved notifications"
	MarkNotificationReadSuccess       = "Successfully marked notification as read"
	CreateConsultationSuccessMessage  = "Successfully created consultation"
	GetConsultationsSuccessMessage    = "Successfully retrieved consultations"
	CreateVitalSignsSuccessMessage    = "Successfully recorded vital signs"
	GetVitalSignsSuccessMessage       = "Successfully retrieved vital signs"
	GetAllVitalSignsSuccessMessage    = "Successfully retrieved vital signs records"
)

var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"oneof":          "must be one of: %s",
	"min":            "must be at least %s",
	"max":            "must be at most %s",
	"gt":             "must be greater than %s",
	"gte":            "must be greater than or equal to %s",
	"email":          "must be a valid email address",
	"payment_method": "must be a valid payment method",
	"payment_type":   "must be a valid payment type",
	"actor_role":     "must be a valid role",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
}
