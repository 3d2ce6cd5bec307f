package bluebottle

import (
	"coffee-finder-service/internal/domain"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

// Upper bound on how much of an error body is kept for diagnostics.
const maxErrorBody = 4 << 10

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	url string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// statusError drains a non-success response into an httpStatusError.
func statusError(resp *http.Response) *httpStatusError {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &httpStatusError{
		Code: resp.StatusCode,
		Body: strings.TrimSpace(string(b)),
	}
}

// statusKind maps a non-200 catalog status to an error kind.
func statusKind(code int) domain.Kind {
	switch code {
	case http.StatusUnauthorized:
		return domain.KindUnauthorized
	case http.StatusNotAcceptable:
		return domain.KindUnacceptableFormat
	case http.StatusServiceUnavailable:
		return domain.KindServiceUnavailable
	case http.StatusGatewayTimeout:
		return domain.KindTimeout
	default:
		return domain.KindGenericError
	}
}

func statusMessage(code int) string {
	switch code {
	case http.StatusUnauthorized:
		return "failed fetching coffee shops list: unauthorized"
	case http.StatusNotAcceptable:
		return "failed fetching coffee shops list: unacceptable accept format"
	case http.StatusServiceUnavailable:
		return "failed fetching coffee shops list: service unavailable"
	case http.StatusGatewayTimeout:
		return "failed fetching coffee shops list: timeout"
	default:
		return fmt.Sprintf("failed fetching coffee shops list: status %d", code)
	}
}

// isTimeout reports whether a transport error was a client-side deadline.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
