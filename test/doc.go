// Package test is the harness the POS API end-to-end suites are built on.
//
// The package provides:
//
//   - Environment: the API under test. POS_API_URL selects a deployed API; when it is unset
//     the stand-in API runs in process on a temporary SQLite database, served through httptest
//
//   - Session: the tokens of one test user, read by its AuthClient on every request, the
//     user and establishment created for the run and a Tracker of everything to delete
//
//   - Fixture generators: unique emails, phones, CPFs, CNPJs, SKUs, coupon codes and table
//     numbers, so runs never collide on unique fields
//
//   - RetryOnRateLimit: exponential backoff with jitter for 429 responses, honouring
//     Retry-After and bounded by a deadline
//
//   - BaseSuite: a testify suite that sets all of the above up and tears it down
//
// Example Usage:
//
//	type ProductsSuite struct {
//	    test.BaseSuite
//	}
//
//	func TestProducts(t *testing.T) {
//	    test.Run(t, new(ProductsSuite))
//	}
//
//	func (s *ProductsSuite) TestCreate() {
//	    resp, err := s.Auth().Post(s.Ctx, routes.ProductsURL(nil), req)
//	    s.Require().NoError(err)
//	    test.AssertStatus(s.T(), resp, http.StatusCreated)
//	}
//
// Cleanup is best effort: resources are deleted in dependency order and failures are only
// logged, so a broken endpoint never hides the test result.
package test
