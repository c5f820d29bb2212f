package e2e

import (
	"net/http"
	"testing"

	"github.com/restopos/pos-e2e/pkg/api/v1/routes"
	"github.com/restopos/pos-e2e/pkg/types"
	"github.com/restopos/pos-e2e/test"
)

type HealthSuite struct {
	test.BaseSuite
}

func TestHealthSuite(t *testing.T) {
	s := new(HealthSuite)
	s.SkipEstablishment = true
	test.Run(t, s)
}

func (s *HealthSuite) TestHealthCheck() {
	resp, err := s.Session.Client().Get(s.Ctx, routes.HealthCheckURL())
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusOK)

	health := test.Decode[types.HealthResponse](s.T(), resp)
	s.Equal("ok", health.Status)
}

func (s *HealthSuite) TestHealthCheckTyped() {
	health, err := s.Session.Client().HealthCheck(s.Ctx)
	s.Require().NoError(err)
	s.Equal("ok", health.Status)
}
