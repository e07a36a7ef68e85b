package core

import (
	"encoding/json"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ClientErrorBadInput       = "STOREFRONT_BAD_INPUT"
	ClientErrorUnauthorized   = "STOREFRONT_UNAUTHORIZED"
	ClientErrorForbidden      = "STOREFRONT_FORBIDDEN"
	ClientErrorNotFound       = "STOREFRONT_NOT_FOUND"
	ClientErrorValidation     = "STOREFRONT_VALIDATION_FAILED"
	ClientErrorRateLimited    = "STOREFRONT_RATE_LIMITED"
	ClientErrorServerFailure  = "STOREFRONT_SERVER_ERROR"
	ClientErrorNetwork        = "STOREFRONT_NETWORK_ERROR"
	ClientErrorTimeout        = "STOREFRONT_TIMEOUT"
	ClientErrorSessionExpired = "STOREFRONT_SESSION_EXPIRED"
	ClientErrorInternal       = "STOREFRONT_INTERNAL_ERROR"
)

// User-facing notification copy per failure class.
const (
	NotifyForbiddenMessage   = "You do not have permission to perform this action."
	NotifyRateLimitedMessage = "Too many requests. Please slow down."
	NotifyServerErrorMessage = "Server error. Please try again later."
	NotifyNetworkMessage     = "Network error. Please check your connection."
	NotifyTimeoutMessage     = "Request timed out. Please try again."
)

type ErrorFactory func(message string, category ...goerrors.Category) *goerrors.Error

type ErrorMapper func(err error) *goerrors.Error

func clientErrorMapper(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureClientErrorEnvelope(richErr)
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "session expired"), strings.Contains(msg, "refresh token"):
		return newClientError(err.Error(), goerrors.CategoryAuth, ClientErrorSessionExpired)
	case strings.Contains(msg, "timed out"), strings.Contains(msg, "timeout"):
		return newClientError(err.Error(), goerrors.CategoryExternal, ClientErrorTimeout)
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "throttl"):
		return newClientError(err.Error(), goerrors.CategoryRateLimit, ClientErrorRateLimited)
	case strings.Contains(msg, "required"), strings.Contains(msg, "invalid"), strings.Contains(msg, "mismatch"):
		return newClientError(err.Error(), goerrors.CategoryBadInput, ClientErrorBadInput)
	}

	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureClientErrorEnvelope(mapped)
}

func newClientError(message string, category goerrors.Category, textCode string) *goerrors.Error {
	return ensureClientErrorEnvelope(
		goerrors.New(message, category).
			WithTextCode(textCode),
	)
}

func ensureClientErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 && err.Category != goerrors.CategoryExternal {
		err.Code = clientHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultClientTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultClientTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput:
		return ClientErrorBadInput
	case goerrors.CategoryValidation:
		return ClientErrorValidation
	case goerrors.CategoryNotFound:
		return ClientErrorNotFound
	case goerrors.CategoryAuth:
		return ClientErrorUnauthorized
	case goerrors.CategoryAuthz:
		return ClientErrorForbidden
	case goerrors.CategoryRateLimit:
		return ClientErrorRateLimited
	case goerrors.CategoryExternal:
		return ClientErrorNetwork
	default:
		return ClientErrorInternal
	}
}

func clientHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput:
		return http.StatusBadRequest
	case goerrors.CategoryValidation:
		return http.StatusUnprocessableEntity
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryAuth:
		return http.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	case goerrors.CategoryRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the backend's failure envelope. Field errors arrive keyed by
// form field with one message per violation.
type errorBody struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// responseError builds the rich error surfaced to callers for a failing HTTP
// response. The numeric code always carries the original status.
func responseError(status int, body []byte, method string, path string) *goerrors.Error {
	parsed := errorBody{}
	if len(body) > 0 {
		_ = json.Unmarshal(body, &parsed)
	}
	message := strings.TrimSpace(parsed.Message)
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = "request failed"
	}

	category := categoryForStatus(status)
	metadata := map[string]any{
		"method":      method,
		"path":        path,
		"status_code": status,
	}

	var err *goerrors.Error
	if category == goerrors.CategoryValidation && len(parsed.Errors) > 0 {
		fields := make([]goerrors.FieldError, 0, len(parsed.Errors))
		for field, messages := range parsed.Errors {
			for _, fieldMessage := range messages {
				fields = append(fields, goerrors.FieldError{Field: field, Message: fieldMessage})
			}
		}
		err = goerrors.NewValidation(message, fields...)
	} else {
		err = goerrors.New(message, category)
	}

	return err.
		WithCode(status).
		WithTextCode(defaultClientTextCode(category)).
		WithMetadata(metadata)
}

func categoryForStatus(status int) goerrors.Category {
	switch {
	case status == http.StatusUnauthorized:
		return goerrors.CategoryAuth
	case status == http.StatusForbidden:
		return goerrors.CategoryAuthz
	case status == http.StatusNotFound:
		return goerrors.CategoryNotFound
	case status == http.StatusConflict:
		return goerrors.CategoryConflict
	case status == http.StatusUnprocessableEntity:
		return goerrors.CategoryValidation
	case status == http.StatusTooManyRequests:
		return goerrors.CategoryRateLimit
	case status >= http.StatusInternalServerError:
		return goerrors.CategoryExternal
	default:
		return goerrors.CategoryBadInput
	}
}

// notificationFor maps a failure to its broadcast notification. The second
// return is false for failures that are not broadcast (auth, validation,
// plain bad input) so callers can handle them locally.
func notificationFor(err *goerrors.Error) (Notification, bool) {
	if err == nil {
		return Notification{}, false
	}
	status := err.Code
	switch {
	case status == http.StatusForbidden:
		return Notification{Message: NotifyForbiddenMessage, Status: status}, true
	case status == http.StatusTooManyRequests:
		return Notification{Message: NotifyRateLimitedMessage, Status: status}, true
	case status >= http.StatusInternalServerError:
		return Notification{Message: NotifyServerErrorMessage, Status: status}, true
	case status == 0 && err.Category == goerrors.CategoryExternal:
		if strings.EqualFold(strings.TrimSpace(err.TextCode), ClientErrorTimeout) {
			return Notification{Message: NotifyTimeoutMessage, Status: 0}, true
		}
		return Notification{Message: NotifyNetworkMessage, Status: 0}, true
	}
	return Notification{}, false
}
