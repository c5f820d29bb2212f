package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/pkg/types"
)

// Response is a completed HTTP exchange. Body is the payload after envelope unwrapping; Raw is
// the body as received.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Raw        []byte
}

// IsSuccess reports a 2xx status
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the unwrapped body into v
func (r *Response) Decode(v interface{}) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("error decoding response: empty body (status %d)", r.StatusCode)
	}
	return decodeJSON(r.Body, v)
}

// JSON decodes the unwrapped body into a generic map. Non-object bodies yield an empty map.
func (r *Response) JSON() map[string]interface{} {
	m := map[string]interface{}{}
	_ = json.Unmarshal(r.Body, &m)
	return m
}

// ErrorBody decodes an error response. Bodies that are not JSON become the message.
func (r *Response) ErrorBody() types.ErrorResponse {
	var e types.ErrorResponse
	if err := json.Unmarshal(r.Raw, &e); err != nil || e.Message == "" {
		e.Message = string(r.Raw)
	}
	if e.StatusCode == 0 {
		e.StatusCode = r.StatusCode
	}
	return e
}

// AsError converts the response into a *fiber.Error with its status code and message
func (r *Response) AsError() error {
	return &fiber.Error{
		Code:    r.StatusCode,
		Message: r.ErrorBody().Message,
	}
}

// RetryAfter parses a Retry-After header given in seconds. It returns 0 when absent.
func (r *Response) RetryAfter() time.Duration {
	v := r.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// String renders status and body for assertion messages
func (r *Response) String() string {
	return fmt.Sprintf("status %d: %s", r.StatusCode, truncate(r.Raw, 512))
}

// UnwrapEnvelope returns the data field of a {data, statusCode, timestamp} envelope, or the
// body unchanged when it is not one. Only objects carrying all three keys are unwrapped, so a
// list response {data, page, limit, total} is left alone.
func UnwrapEnvelope(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return body
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return body
	}
	data, hasData := fields["data"]
	_, hasStatus := fields["statusCode"]
	_, hasTimestamp := fields["timestamp"]
	if !hasData || !hasStatus || !hasTimestamp {
		return body
	}
	return data
}
