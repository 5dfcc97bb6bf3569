package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"notblank": "must not be blank",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something wrong with the application, please try again later"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "please log in first"
	ErrClientBackendUnavailable            = "reservation service is unavailable, please retry"
	ErrClientDashboardLoadFailed           = "dashboard could not be loaded completely, please retry"
	ErrClientReservationNotFound           = "reservation not found"
	ErrClientReservationCancelFailed       = "reservation cancellation failed: %s"
	ErrClientGenericNotification           = "an error occurred: %s"
	ErrClientRouteNotFound                 = "route not found"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput                 = "invalid input"
	ErrDevValidationFailed             = "validation failed"
	ErrDevCannotParseJSON              = "cannot parse JSON"
	ErrDevCannotMarshalJSON            = "cannot marshal JSON"
	ErrDevServerProcess                = "server failed to process request"
	ErrDevServerDeadlineExceeded       = "server deadline exceeded"
	ErrDevMissingRequestID             = "request id missing from context"
	ErrDevMissingSessionData           = "session data missing from context"
	ErrDevAuthTokenMissing             = "authorization token missing"
	ErrDevAuthTokenInvalidOrExpired    = "authorization token invalid or expired"
	ErrDevSessionNotFound              = "session not found"
	ErrDevBackendNotAuthenticated      = "backend rejected credentials while fetching %s"
	ErrDevBackendSendRequest           = "failed to send request for %s"
	ErrDevBackendUnexpectedStatus      = "backend answered status %d for %s"
	ErrDevBackendDecodeResponse        = "failed to decode backend response for %s"
	ErrDevBackendResourceNotFound      = "backend could not find %s"
	ErrDevAggregatePartialFailure      = "aggregate load failed on %s"
	ErrDevReservationTransitionDenied  = "backend rejected reservation transition"
	ErrDevInvalidTab                   = "unknown dashboard tab %q"
	ErrDevRedisGetData                 = "failed to get data from redis"
	ErrDevRedisSetData                 = "failed to set data to redis"
	ErrDevRedisDeleteData              = "failed to delete data from redis"
	ErrDevRabbitMQPublishMessage       = "failed to publish message to queue %s"
	ErrDevMinioPresignObject           = "failed to presign object in bucket %s"
	ErrDevMockBackendInvalidTransition = "cannot move reservation from %s to %s"
	ErrDevTooManyRequests              = "rate limit exceeded"
	ErrDevRouteNotFound                = "no route for %s %s"
)
