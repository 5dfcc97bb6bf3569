package exceptions

import (
	"errors"
	"fmt"
	"reservation-center/internal/pkg/constvars"
	"runtime"
)

// Error kinds. A CustomError unwraps to its kind, so callers branch with
// errors.Is(err, exceptions.ErrKindNetwork) and friends.
var (
	ErrKindNotAuthenticated  = errors.New("not authenticated")
	ErrKindNetwork           = errors.New("network failure")
	ErrKindPartialFailure    = errors.New("partial failure")
	ErrKindInvalidTransition = errors.New("invalid transition")
	ErrKindNotFound          = errors.New("not found")
	ErrKindValidation        = errors.New("validation failed")
)

type CustomError struct {
	StatusCode    int       `json:"status_code"`
	Success       bool      `json:"success"`
	ClientMessage string    `json:"message"`
	DevMessage    string    `json:"dev_message,omitempty"`
	Location      *Location `json:"location,omitempty"`
	Kind          error     `json:"-"`
	Cause         error     `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if e.Location == nil {
		return e.DevMessage
	}
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// BuildNewCustomError records the caller of the constructor var as the location.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      &location,
		Cause:         err,
	}
	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return customErr
}

func (e *CustomError) withKind(kind error) *CustomError {
	e.Kind = kind
	return e
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
