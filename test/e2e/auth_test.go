package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/restopos/pos-e2e/pkg/api/v1/client"
	"github.com/restopos/pos-e2e/pkg/api/v1/routes"
	"github.com/restopos/pos-e2e/pkg/types"
	"github.com/restopos/pos-e2e/test"
)

type AuthSuite struct {
	test.BaseSuite
}

func TestAuthSuite(t *testing.T) {
	s := new(AuthSuite)
	s.SkipEstablishment = true
	test.Run(t, s)
}

// register creates a throwaway user and schedules its deletion with its own token, since a
// user may only delete itself
func (s *AuthSuite) register(req types.RegisterRequest) types.AuthResponse {
	resp, err := test.RetryOnRateLimit(s.Ctx, s.Session.RetryPolicy(), func(ctx context.Context) (*client.Response, error) {
		return s.Session.Client().Post(ctx, routes.RegisterURL(), req)
	})
	s.Require().NoError(err)
	test.RequireStatus(s.T(), resp, http.StatusCreated)
	auth := test.Decode[types.AuthResponse](s.T(), resp)

	s.T().Cleanup(func() {
		owner := s.Session.Client().WithTokens(client.StaticToken(auth.AccessToken))
		_, _ = owner.Delete(s.Env.Context(), routes.UserURL(auth.User.ID))
	})
	return auth
}

func (s *AuthSuite) TestRegister() {
	email := test.UniqueEmail()
	auth := s.register(types.RegisterRequest{
		Name:     test.UniqueName("Register"),
		Email:    email,
		Password: test.TestPassword,
		Phone:    test.UniquePhone(),
	})

	s.NotEmpty(auth.AccessToken)
	s.NotEmpty(auth.RefreshToken)
	s.NotEmpty(auth.User.ID)
	s.Equal(email, auth.User.Email)
}

func (s *AuthSuite) TestRegisterDuplicateEmail() {
	resp, err := s.Session.Client().Post(s.Ctx, routes.RegisterURL(), types.RegisterRequest{
		Name:     test.UniqueName("Duplicate"),
		Email:    s.Session.User().Email,
		Password: test.TestPassword,
	})
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusConflict)
	s.NotEmpty(resp.ErrorBody().Message)
}

func (s *AuthSuite) TestRegisterInvalidPayload() {
	tests := []struct {
		name string
		req  types.RegisterRequest
	}{
		{"missing name", types.RegisterRequest{Email: test.UniqueEmail(), Password: test.TestPassword}},
		{"malformed email", types.RegisterRequest{Name: "Bad Email", Email: "not-an-email", Password: test.TestPassword}},
		{"short password", types.RegisterRequest{Name: "Short", Email: test.UniqueEmail(), Password: "abc"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp, err := s.Session.Client().Post(s.Ctx, routes.RegisterURL(), tt.req)
			s.Require().NoError(err)
			test.AssertStatus(s.T(), resp, http.StatusBadRequest)
		})
	}
}

func (s *AuthSuite) TestLogin() {
	user := s.Session.User()
	auth, err := s.Session.Client().Login(s.Ctx, types.LoginRequest{
		Email:    user.Email,
		Password: s.Session.Password(),
	})
	s.Require().NoError(err)
	s.NotEmpty(auth.AccessToken)
	s.NotEmpty(auth.RefreshToken)
	s.Equal(user.ID, auth.User.ID)
}

func (s *AuthSuite) TestLoginRejectsBadCredentials() {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", s.Session.User().Email, "WrongPassword123!"},
		{"unknown email", test.UniqueEmail(), test.TestPassword},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp, err := s.Session.Client().Post(s.Ctx, routes.LoginURL(), types.LoginRequest{Email: tt.email, Password: tt.password})
			s.Require().NoError(err)
			test.AssertStatus(s.T(), resp, http.StatusUnauthorized)
		})
	}
}

func (s *AuthSuite) TestProfile() {
	profile, err := s.Auth().Profile(s.Ctx)
	s.Require().NoError(err)
	s.Equal(s.Session.User().ID, profile.ID)
	s.Equal(s.Session.User().Email, profile.Email)
}

func (s *AuthSuite) TestProfileRequiresToken() {
	tests := []struct {
		name   string
		client *client.APIClient
	}{
		{"no token", s.Session.Client()},
		{"garbage token", s.Session.Client().WithTokens(client.StaticToken("not-a-jwt"))},
		{"refresh token as access token", s.Session.Client().WithTokens(client.StaticToken(s.Session.RefreshToken()))},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp, err := tt.client.Get(s.Ctx, routes.ProfileURL())
			s.Require().NoError(err)
			test.AssertStatus(s.T(), resp, http.StatusUnauthorized)
		})
	}
}

func (s *AuthSuite) TestRefreshRotatesTokens() {
	auth := s.register(types.RegisterRequest{
		Name:     test.UniqueName("Refresh"),
		Email:    test.UniqueEmail(),
		Password: test.TestPassword,
	})

	refreshed, err := s.Session.Client().RefreshToken(s.Ctx, auth.RefreshToken)
	s.Require().NoError(err)
	s.NotEmpty(refreshed.AccessToken)
	s.NotEqual(auth.AccessToken, refreshed.AccessToken)
	s.NotEqual(auth.RefreshToken, refreshed.RefreshToken)

	profile, err := s.Session.Client().WithTokens(client.StaticToken(refreshed.AccessToken)).Profile(s.Ctx)
	s.Require().NoError(err)
	s.Equal(auth.User.ID, profile.ID)
}

func (s *AuthSuite) TestRefreshRejectsBadTokens() {
	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"empty", "", http.StatusBadRequest},
		{"garbage", "not-a-jwt", http.StatusUnauthorized},
		{"access token", s.Session.Token(), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp, err := s.Session.Client().Post(s.Ctx, routes.RefreshURL(), types.RefreshRequest{RefreshToken: tt.token})
			s.Require().NoError(err)
			test.AssertStatus(s.T(), resp, tt.want)
		})
	}
}

func (s *AuthSuite) TestSessionRefreshKeepsClientsWorking() {
	authClient := s.Auth()
	before := s.Session.Token()

	s.Require().NoError(s.Session.RefreshTokens(s.Ctx))
	s.Equal(test.StateRefreshed, s.Session.State())
	s.NotEqual(before, s.Session.Token())

	resp, err := authClient.Get(s.Ctx, routes.ProfileURL())
	s.Require().NoError(err)
	test.AssertStatus(s.T(), resp, http.StatusOK)
}
