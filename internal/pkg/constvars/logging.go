package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingSessionIDKey        = "session_id"
	LoggingPatientIDKey        = "patient_id"
	LoggingUserIDKey           = "user_id"
	LoggingReservationIDKey    = "reservation_id"
	LoggingReservationCountKey = "reservation_count"
	LoggingRecordCountKey      = "record_count"
	LoggingBillCountKey        = "bill_count"
	LoggingTabKey              = "tab"
	LoggingTagLabelKey         = "tag_label"
	LoggingTagCountKey         = "tag_count"
	LoggingNotificationKey     = "notification"
	LoggingBackendUrlKey       = "backend_url"
	LoggingCollectionKey       = "collection"
	LoggingStatusCodeKey       = "status_code"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingErrorMessageKey     = "error_message"
	LoggingOperationKey        = "operation"
	LoggingRedisKey            = "redis_key"
	LoggingQueueKey            = "queue"
	LoggingObjectKey           = "object_key"
	LoggingControllerCountKey  = "controller_count"
	LoggingRequestKey          = "request"
	LoggingResponseKey         = "response"
)
