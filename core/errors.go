package core

import (
	"fmt"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes discriminate the failure kinds carried by *goerrors.Error.
const (
	ErrorValidation = "STAYHOOKS_VALIDATION"
	ErrorAuth       = "STAYHOOKS_AUTH"
	ErrorHTTP       = "STAYHOOKS_HTTP"
	ErrorInvoke     = "STAYHOOKS_INVOKE"
	ErrorConnection = "STAYHOOKS_CONNECTION"
	ErrorInternal   = "STAYHOOKS_INTERNAL_ERROR"
)

const (
	MetadataStatus  = "status"
	MetadataPayload = "payload"
)

type ErrorKind string

const (
	KindUnknown    ErrorKind = ""
	KindValidation ErrorKind = "validation"
	KindAuth       ErrorKind = "auth"
	KindHTTP       ErrorKind = "http"
	KindInvoke     ErrorKind = "invoke"
	KindConnection ErrorKind = "connection"
)

func validationError(field string, message string) *goerrors.Error {
	if strings.TrimSpace(field) == "" {
		return goerrors.New(message, goerrors.CategoryValidation).
			WithTextCode(ErrorValidation)
	}
	return goerrors.NewValidation(message, goerrors.FieldError{
		Field:   field,
		Message: message,
	}).
		WithTextCode(ErrorValidation).
		WithSeverity(goerrors.SeverityError)
}

// authError covers missing tokens (status 401, no round trip) and 401/403 responses.
func authError(status int, message string, payload any) *goerrors.Error {
	category := goerrors.CategoryAuth
	if status == http.StatusForbidden {
		category = goerrors.CategoryAuthz
	}
	return goerrors.New(message, category).
		WithCode(status).
		WithTextCode(ErrorAuth).
		WithMetadata(map[string]any{
			MetadataStatus:  status,
			MetadataPayload: payload,
		})
}

func httpError(status int, message string, payload any) *goerrors.Error {
	return goerrors.New(message, httpStatusCategory(status)).
		WithCode(status).
		WithTextCode(ErrorHTTP).
		WithMetadata(map[string]any{
			MetadataStatus:  status,
			MetadataPayload: payload,
		})
}

func invokeError(status int, message string, raw string) *goerrors.Error {
	return goerrors.New(message, goerrors.CategoryOperation).
		WithCode(status).
		WithTextCode(ErrorInvoke).
		WithMetadata(map[string]any{
			MetadataStatus:  status,
			MetadataPayload: raw,
		})
}

func connectionError(source error, message string) *goerrors.Error {
	if source == nil {
		return goerrors.New(message, goerrors.CategoryExternal).
			WithTextCode(ErrorConnection)
	}
	return goerrors.Wrap(source, goerrors.CategoryExternal, fmt.Sprintf("%s: %v", message, source)).
		WithTextCode(ErrorConnection)
}

func httpStatusCategory(status int) goerrors.Category {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return goerrors.CategoryBadInput
	case http.StatusNotFound:
		return goerrors.CategoryNotFound
	case http.StatusConflict:
		return goerrors.CategoryConflict
	case http.StatusTooManyRequests:
		return goerrors.CategoryRateLimit
	default:
		return goerrors.CategoryExternal
	}
}

func defaultErrorMapper(err error) *goerrors.Error {
	if err == nil {
		return nil
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureErrorEnvelope(richErr)
	}
	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureErrorEnvelope(mapped)
}

func ensureErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return ErrorValidation
	case goerrors.CategoryAuth, goerrors.CategoryAuthz:
		return ErrorAuth
	case goerrors.CategoryExternal:
		return ErrorConnection
	default:
		return ErrorInternal
	}
}

// KindOf reports which failure kind err carries, KindUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	var rich *goerrors.Error
	if err == nil || !goerrors.As(err, &rich) {
		return KindUnknown
	}
	switch rich.TextCode {
	case ErrorValidation:
		return KindValidation
	case ErrorAuth:
		return KindAuth
	case ErrorHTTP:
		return KindHTTP
	case ErrorInvoke:
		return KindInvoke
	case ErrorConnection:
		return KindConnection
	default:
		return KindUnknown
	}
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }

func IsAuth(err error) bool { return KindOf(err) == KindAuth }

// IsHTTP is true for any non-2xx failure, auth failures included.
func IsHTTP(err error) bool {
	kind := KindOf(err)
	return kind == KindHTTP || kind == KindAuth
}

func IsInvoke(err error) bool { return KindOf(err) == KindInvoke }

func IsConnection(err error) bool { return KindOf(err) == KindConnection }

// StatusOf returns the HTTP status attached to err, 0 for pre-network failures.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindAuth, KindHTTP, KindInvoke:
	default:
		return 0
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return 0
	}
	return rich.Code
}

// PayloadOf returns the parsed error body (map[string]any) for HTTP failures
// or the raw body string for invoke failures.
func PayloadOf(err error) any {
	var rich *goerrors.Error
	if err == nil || !goerrors.As(err, &rich) || rich.Metadata == nil {
		return nil
	}
	return rich.Metadata[MetadataPayload]
}

// MessageOf returns the envelope message without category decoration.
func MessageOf(err error) string {
	var rich *goerrors.Error
	if err == nil {
		return ""
	}
	if goerrors.As(err, &rich) {
		return rich.Message
	}
	return err.Error()
}
