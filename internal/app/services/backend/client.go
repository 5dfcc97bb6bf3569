// Package backend holds the HTTP plumbing shared by the reservation backend clients.
package backend

import (
	"context"
	"errors"
	"net/http"
	"reservation-center/internal/app/config"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/dto/responses"
	"reservation-center/internal/pkg/exceptions"
	"reservation-center/internal/pkg/utils"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client wraps a resty client with an outbound rate limiter. It is shared by
// all backend resource clients.
type Client struct {
	HTTP    *resty.Client
	Limiter *rate.Limiter
	Log     *zap.Logger
}

func NewClient(backendConfig config.Backend, logger *zap.Logger) *Client {
	limit := rate.Inf
	burst := 1
	if backendConfig.RateLimitPerSecond > 0 {
		limit = rate.Limit(backendConfig.RateLimitPerSecond)
		burst = backendConfig.RateLimitPerSecond
	}

	return &Client{
		HTTP:    NewRestyClient(backendConfig),
		Limiter: rate.NewLimiter(limit, burst),
		Log:     logger,
	}
}

func NewRestyClient(backendConfig config.Backend) *resty.Client {
	timeout := time.Duration(backendConfig.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return resty.New().
		SetBaseURL(backendConfig.BaseUrl).
		SetTimeout(timeout).
		SetRetryCount(backendConfig.RetryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(retryTransportErrorOnGet).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader(constvars.HeaderContentType, constvars.MIMEApplicationJSON).
		SetHeader(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
}

// retryTransportErrorOnGet keeps status changes at-most-once: only reads are
// replayed, and only when no response came back.
func retryTransportErrorOnGet(resp *resty.Response, err error) bool {
	if err == nil || resp == nil || resp.Request == nil {
		return false
	}
	return resp.Request.Method == resty.MethodGet
}

// Request returns a request bound to ctx, carrying the bearer token and the request id.
// It blocks until the rate limiter admits the call.
func (c *Client) Request(ctx context.Context, accessToken, resource string) (*resty.Request, error) {
	err := c.Limiter.Wait(ctx)
	if err != nil {
		return nil, exceptions.ErrBackendSendRequest(err, resource)
	}

	request := c.HTTP.R().SetContext(ctx)
	if accessToken != "" {
		request.SetAuthToken(accessToken)
	}
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		request.SetHeader(constvars.HeaderXRequestID, requestID)
	}
	return request, nil
}

// StatusError maps a non-2xx status to the error kinds callers branch on.
func StatusError(resp *resty.Response, resource string) error {
	cause := errors.New(resp.Status())
	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return exceptions.ErrBackendNotAuthenticated(cause, resource)
	case http.StatusNotFound:
		return exceptions.ErrBackendResourceNotFound(cause, resource)
	default:
		return exceptions.ErrBackendUnexpectedStatus(cause, resp.StatusCode(), resource)
	}
}

// Get fetches path and unwraps the {success, data, errorMessage} envelope.
func Get[T any](ctx context.Context, c *Client, accessToken, path string, queryParams map[string]string, resource string) (T, error) {
	var zero T
	requestID := utils.GetRequestID(ctx)

	request, err := c.Request(ctx, accessToken, resource)
	if err != nil {
		return zero, err
	}

	resp, err := request.SetQueryParams(queryParams).Get(path)
	if err != nil {
		c.Log.Error("backend.Get error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, resource),
			zap.Error(err),
		)
		return zero, exceptions.ErrBackendSendRequest(err, resource)
	}

	if !resp.IsSuccess() {
		c.Log.Error("backend.Get unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, resource),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode()),
		)
		return zero, StatusError(resp, resource)
	}

	var envelope responses.BackendEnvelope[T]
	err = json.Unmarshal(resp.Body(), &envelope)
	if err != nil {
		c.Log.Error("backend.Get error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, resource),
			zap.Error(err),
		)
		return zero, exceptions.ErrBackendDecodeResponse(err, resource)
	}

	if !envelope.Success {
		c.Log.Error("backend.Get backend reported failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, resource),
			zap.String(constvars.LoggingErrorMessageKey, envelope.ErrorMessage),
		)
		return zero, exceptions.ErrBackendUnexpectedStatus(errors.New(envelope.ErrorMessage), resp.StatusCode(), resource)
	}

	c.Log.Debug("backend.Get succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, resource),
		zap.Duration(constvars.LoggingDurationKey, resp.Time()),
	)
	return envelope.Data, nil
}
