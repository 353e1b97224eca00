package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ACTOR_KEY                ContextKey = "actor"
)

const (
	REQUEST_ID_PREFIX      = "EMR_SVC_"
	RECEIPT_PREFIX         = "REC"
	SETTLEMENT_LOCK_KEY    = "settlement:order:%s"
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	RoleDoctor       = "doctor"
	RoleNurse        = "nurse"
	RoleLabAssistant = "lab-assistant"
	RoleFrontDesk    = "front-desk"
	RoleBillingStaff = "billing-staff"
	RoleAdmin        = "admin"
)

const (
	MongoCollectionUsers            = "users"
	MongoCollectionPatients         = "patients"
	MongoCollectionServiceOrders    = "service_orders"
	MongoCollectionBillings         = "billings"
	MongoCollectionPayments         = "payments"
	MongoCollectionAuditLogs        = "audit_logs"
	MongoCollectionNotifications    = "notifications"
	MongoCollectionConsultations    = "consultations"
	MongoCollectionMedicalHistories = "medical_histories"
	MongoCollectionVitalSigns       = "vital_signs"
)

const (
	NotificationQueueName = "emr_notification_queue"
	NotificationEventName = "new-notification"
)
