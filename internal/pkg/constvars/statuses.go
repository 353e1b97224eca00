package constvars

const (
	OrderStatusPendingPayment = "pending-payment"
	OrderStatusPaid           = "paid"
	OrderStatusInProgress     = "in-progress"
	OrderStatusCompleted      = "completed"
	OrderStatusCancelled      = "cancelled"
)

const (
	BillingStatusPending       = "pending"
	BillingStatusPaid          = "paid"
	BillingStatusPartiallyPaid = "partially-paid"
	BillingStatusCancelled     = "cancelled"
	BillingStatusFailed        = "failed"
	BillingStatusRefunded      = "refunded"
)

const (
	PaymentStatusPaid = "paid"

	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank-transfer"
	PaymentMethodMobileMoney  = "mobile-money"

	PaymentTypeLabTest      = "lab-test"
	PaymentTypeProcedure    = "procedure"
	PaymentTypeRegistration = "registration"
	PaymentTypeOther        = "other"
)

const (
	OrderKindLabOrder  = "lab-order"
	OrderKindProcedure = "procedure"
)

const (
	NotificationStatusUnread = "unread"
	NotificationStatusRead   = "read"
)

const (
	AuditActionCreate  = "create"
	AuditActionRead    = "read"
	AuditActionUpdate  = "update"
	AuditActionCancel  = "cancel"
	AuditActionBilling = "billing"
	AuditActionPayment = "payment"
)
