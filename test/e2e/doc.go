// Package e2e holds the end-to-end suites of the POS API, one testify suite per resource area.
//
// Every suite registers its own user and establishment, so suites are independent of each other
// and of the order they run in. Set POS_API_URL to run against a deployed API; otherwise the
// stand-in API is started in process. Run with:
//
//	go test ./test/e2e/...
package e2e
