package transport

import (
	"context"
	"errors"
	"net"

	goerrors "github.com/goliatone/go-errors"

	"github.com/dev-saiful/go-storefront/core"
)

func transportError(
	message string,
	category goerrors.Category,
	code int,
	metadata map[string]any,
) error {
	err := goerrors.New(message, category).
		WithCode(code).
		WithTextCode(transportTextCode(category))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func transportWrapError(
	source error,
	category goerrors.Category,
	message string,
	code int,
	metadata map[string]any,
) error {
	if source == nil {
		return transportError(message, category, code, metadata)
	}
	err := goerrors.Wrap(source, category, message).
		WithCode(code).
		WithTextCode(transportTextCode(category))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

// noResponseError classifies a transmission failure. The status stays 0:
// no response ever arrived, so pretending there is an HTTP status would
// poison the caller's classification.
func noResponseError(source error, method string, url string) error {
	textCode := core.ClientErrorNetwork
	message := "transport: request failed before a response arrived"
	if isTimeout(source) {
		textCode = core.ClientErrorTimeout
		message = "transport: request timed out"
	}
	err := goerrors.Wrap(source, goerrors.CategoryExternal, message).
		WithTextCode(textCode)
	err.WithMetadata(map[string]any{"adapter": KindREST, "method": method, "url": url})
	return err
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func transportTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return core.ClientErrorBadInput
	case goerrors.CategoryAuth:
		return core.ClientErrorUnauthorized
	case goerrors.CategoryAuthz:
		return core.ClientErrorForbidden
	case goerrors.CategoryRateLimit:
		return core.ClientErrorRateLimited
	case goerrors.CategoryExternal:
		return core.ClientErrorNetwork
	default:
		return core.ClientErrorInternal
	}
}
