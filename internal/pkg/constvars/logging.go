package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingRequestKey        = "request"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingActorIDKey        = "actor_id"
	LoggingActorRoleKey      = "actor_role"
	LoggingPatientIDKey      = "patient_id"
	LoggingOrderIDKey        = "order_id"
	LoggingOrderKindKey      = "order_kind"
	LoggingBillingIDKey      = "billing_id"
	LoggingPaymentIDKey      = "payment_id"
	LoggingAmountKey         = "amount"
	LoggingReceiptNumberKey  = "receipt_number"
	LoggingNotificationIDKey = "notification_id"
	LoggingRecipientIDKey    = "recipient_id"
	LoggingRecipientRoleKey  = "recipient_role"
	LoggingConsultationIDKey = "consultation_id"
	LoggingVitalSignsIDKey   = "vital_signs_id"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingQueueNameKey      = "queue_name"
)
