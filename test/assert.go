package test

import (
	"fmt"
	"slices"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restopos/pos-e2e/pkg/api/v1/client"
)

// AssertStatus asserts the response status, printing the body when it differs
func AssertStatus(t assert.TestingT, resp *client.Response, want int, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !assert.NotNil(t, resp, "no response") {
		return false
	}
	return assert.Equal(t, want, resp.StatusCode, appendBody(resp, msgAndArgs)...)
}

// AssertStatusIn asserts the response status is one of want. It is meant for endpoints whose
// contract is still unsettled.
func AssertStatusIn(t assert.TestingT, resp *client.Response, want []int, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !assert.NotNil(t, resp, "no response") {
		return false
	}
	if slices.Contains(want, resp.StatusCode) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("status %d not in %v", resp.StatusCode, want), appendBody(resp, msgAndArgs)...)
}

// RequireStatus is AssertStatus that stops the test on failure
func RequireStatus(t require.TestingT, resp *client.Response, want int, msgAndArgs ...interface{}) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !AssertStatus(t, resp, want, msgAndArgs...) {
		t.FailNow()
	}
}

// Decode unmarshals the response body into T and stops the test when that fails
func Decode[T any](t require.TestingT, resp *client.Response) T {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	var v T
	require.NotNil(t, resp, "no response")
	require.NoError(t, resp.Decode(&v))
	return v
}

func appendBody(resp *client.Response, msgAndArgs []interface{}) []interface{} {
	msg := resp.String()
	if len(msgAndArgs) > 0 {
		if format, ok := msgAndArgs[0].(string); ok {
			msg = fmt.Sprintf(format, msgAndArgs[1:]...) + ": " + msg
		}
	}
	return []interface{}{msg}
}
