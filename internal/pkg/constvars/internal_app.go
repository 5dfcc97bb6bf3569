package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "RSVC_"
)

const (
	RedisSessionKeyPrefix = "reservation-center:session:"
)

const (
	// DateTimeLayout is the wire format of reservation timestamps. It sorts
	// lexically in the same order as chronologically.
	DateTimeLayout = "2006-01-02 15:04:05"
)

const (
	LocalTagKeyFormat = "new-%d"
)
