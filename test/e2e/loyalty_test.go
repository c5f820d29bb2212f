package e2e

import (
	"net/http"
	"testing"

	"github.com/restopos/pos-e2e/pkg/api/v1/client"
	"github.com/restopos/pos-e2e/pkg/api/v1/routes"
	"github.com/restopos/pos-e2e/pkg/types"
	"github.com/restopos/pos-e2e/test"
)

type LoyaltySuite struct {
	test.BaseSuite
}

func TestLoyaltySuite(t *testing.T) {
	test.Run(t, new(LoyaltySuite))
}

func (s *LoyaltySuite) points(url, customerID string, points int) *client.Response {
	resp, err := s.Auth().Post(s.Ctx, url, types.LoyaltyPointsRequest{
		CustomerID:      customerID,
		EstablishmentID: s.EstablishmentID(),
		Points:          points,
		Description:     "e2e",
	})
	s.Require().NoError(err)
	return resp
}

func (s *LoyaltySuite) balance(customerID string) int {
	resp, err := s.Auth().Get(s.Ctx, routes.LoyaltyBalanceURL(customerID, s.EstablishmentID()))
	s.Require().NoError(err)
	test.RequireStatus(s.T(), resp, http.StatusOK)
	return test.Decode[types.LoyaltyBalance](s.T(), resp).Points
}

func (s *LoyaltySuite) TestEarnAndRedeem() {
	customer := s.CreateCustomer()
	s.Zero(s.balance(customer.ID))

	resp := s.points(routes.EarnPointsURL(), customer.ID, 100)
	test.RequireStatus(s.T(), resp, http.StatusCreated)
	earned := test.Decode[types.LoyaltyTransaction](s.T(), resp)
	s.Equal(types.LoyaltyEarn, earned.Type)
	s.Equal(100, earned.Points)
	s.Equal(100, s.balance(customer.ID))

	resp = s.points(routes.RedeemPointsURL(), customer.ID, 30)
	test.RequireStatus(s.T(), resp, http.StatusCreated)
	s.Equal(types.LoyaltyRedeem, test.Decode[types.LoyaltyTransaction](s.T(), resp).Type)
	s.Equal(70, s.balance(customer.ID))
}

func (s *LoyaltySuite) TestRedeemBeyondBalance() {
	customer := s.CreateCustomer()
	test.RequireStatus(s.T(), s.points(routes.EarnPointsURL(), customer.ID, 10), http.StatusCreated)

	test.AssertStatus(s.T(), s.points(routes.RedeemPointsURL(), customer.ID, 11), http.StatusBadRequest)
	s.Equal(10, s.balance(customer.ID), "a refused redemption leaves the balance unchanged")
}

func (s *LoyaltySuite) TestInvalidRequests() {
	customer := s.CreateCustomer()

	tests := []struct {
		name       string
		url        string
		customerID string
		points     int
		want       int
	}{
		{"zero points", routes.EarnPointsURL(), customer.ID, 0, http.StatusBadRequest},
		{"negative points", routes.RedeemPointsURL(), customer.ID, -5, http.StatusBadRequest},
		{"missing customer", routes.EarnPointsURL(), "", 10, http.StatusBadRequest},
		{"unknown customer", routes.EarnPointsURL(), test.NonExistentID, 10, http.StatusNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			test.AssertStatus(s.T(), s.points(tt.url, tt.customerID, tt.points), tt.want)
		})
	}
}

func (s *LoyaltySuite) TestBalanceRequiresEstablishment() {
	customer := s.CreateCustomer()
	resp, err := s.Auth().Get(s.Ctx, routes.LoyaltyBalanceURL(customer.ID, ""))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusBadRequest)
}

func (s *LoyaltySuite) TestBalanceUnknownCustomer() {
	resp, err := s.Auth().Get(s.Ctx, routes.LoyaltyBalanceURL(test.NonExistentID, s.EstablishmentID()))
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusNotFound)
}
