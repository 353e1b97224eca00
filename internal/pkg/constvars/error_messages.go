package constvars

// Client-facing messages. Never leak internals here.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your request"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"

	ErrClientServiceOrderNotFound  = "No service order found with that ID"
	ErrClientPatientNotFound       = "No patient found with that ID"
	ErrClientBillingAlreadyExists  = "Billing already exists for this service order"
	ErrClientOrderAlreadyPaid      = "This service order has already been paid"
	ErrClientOrderNotPayable       = "This service order cannot be paid in its current state"
	ErrClientSettlementInProgress  = "A settlement for this service order is already in progress"
	ErrClientRecipientNotFound     = "Recipient not found"
	ErrClientNoUsersWithRole       = "No users with this role found"
	ErrClientNotificationNotFound  = "Notification not found"
	ErrClientPaymentNotFound       = "No payment found with that ID"
	ErrClientConsultationNotFound  = "No consultation found with that ID"
	ErrClientVitalSignsNotFound    = "No vital signs found with that ID"
	ErrClientOrderAlreadyCancelled = "This service order is already cancelled"
)

// Developer-facing messages, logged but hidden from clients in production.
const (
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevCannotParseJSON            = "Failed to parse JSON body"
	ErrDevCannotMarshalJSON          = "Failed to marshal value to JSON"
	ErrDevURLParamIDValidationFailed = "URL parameter '%s' is not a valid object id"
	ErrDevServerDeadlineExceeded     = "Request context deadline exceeded"
	ErrDevInvalidInput               = "Invalid input"

	ErrDevDBFailedToFindDocument     = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument   = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB failed to update document"
	ErrDevDBFailedToDeleteDocument   = "MongoDB failed to delete document"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate documents"
	ErrDevDBStringNotObjectID        = "Provided string is not a valid MongoDB ObjectID"
	ErrDevDBTransactionFailed        = "MongoDB settlement transaction failed"

	ErrDevRedisGetData      = "Redis failed to get data"
	ErrDevRedisSetData      = "Redis failed to set data"
	ErrDevRedisDeleteData   = "Redis failed to delete data"
	ErrDevRedisSetNX        = "Redis failed to execute SetNX"
	ErrDevRedisUnlockFailed = "Redis failed to release lock"
	ErrDevRedisGetNoData    = "Redis has no data for key %s"

	ErrDevRabbitMQPublish = "RabbitMQ failed to publish message to queue %s"

	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"

	ErrDevServiceOrderNotFound   = "Service order does not exist"
	ErrDevPaymentNotFound        = "Payment record does not exist"
	ErrDevPatientNotFound        = "Patient does not exist"
	ErrDevBillingAlreadyExists   = "A billing ledger is already linked to this service order"
	ErrDevOrderAlreadyPaid       = "Billing ledger status is already paid"
	ErrDevOrderNotPayable        = "Service order status does not allow payment"
	ErrDevOrderAlreadyCancelled  = "Service order is already cancelled or completed"
	ErrDevSettlementLockHeld     = "Settlement lock is held by another request"
	ErrDevSettlementInconsistent = "Settlement left related documents in an inconsistent state, manual reconciliation required"
)
