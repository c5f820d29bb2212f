package test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/restopos/pos-e2e/config"
)

// BaseSuite is embedded by every e2e suite. SetupSuite starts (or connects to) the API,
// registers a fresh user and creates an establishment for it; TearDownSuite deletes everything
// the suite tracked and releases the environment.
type BaseSuite struct {
	suite.Suite

	Config  *config.Config
	Env     *Environment
	Session *Session
	// Ctx is bounded by the setup timeout during SetupSuite and by the API timeout in each test
	Ctx context.Context

	cancelCtx context.CancelFunc

	// Options applied to the environment, set before suite.Run
	EnvOptions []Option
	// SkipEstablishment leaves Session without an establishment
	SkipEstablishment bool
}

// SetupSuite initializes the environment and the authenticated session
func (s *BaseSuite) SetupSuite() {
	s.Config = config.Load()

	env, err := NewEnvironment(s.Config, s.EnvOptions...)
	s.Require().NoError(err, "failed to create environment")
	s.Env = env
	s.Ctx, s.cancelCtx = env.SetupContext()

	session, err := env.NewSession()
	s.Require().NoError(err, "failed to create session")
	s.Session = session

	_, err = s.Session.SetupTestUser(s.Ctx)
	s.Require().NoError(err, "failed to set up test user")

	if !s.SkipEstablishment {
		_, err = s.Session.SetupTestEstablishment(s.Ctx)
		s.Require().NoError(err, "failed to set up test establishment")
	}
}

// SetupTest gives each test a fresh context bounded by the API timeout
func (s *BaseSuite) SetupTest() {
	s.resetCtx()
	s.Ctx, s.cancelCtx = s.Env.TestContext()
}

// TearDownTest releases the test's context
func (s *BaseSuite) TearDownTest() {
	s.resetCtx()
}

func (s *BaseSuite) resetCtx() {
	if s.cancelCtx != nil {
		s.cancelCtx()
		s.cancelCtx = nil
	}
}

// TearDownSuite removes tracked resources and closes the environment
func (s *BaseSuite) TearDownSuite() {
	s.resetCtx()
	if s.Session != nil && s.Env != nil {
		ctx, cancel := s.Env.SetupContext()
		s.Session.Cleanup(ctx)
		cancel()
	}
	if s.Env != nil {
		s.Env.Close()
	}
}

// Auth returns the session's authenticated client
func (s *BaseSuite) Auth() *AuthClient {
	return s.Session.AuthClient()
}

// EstablishmentID returns the ID of the suite's establishment
func (s *BaseSuite) EstablishmentID() string {
	return s.Session.EstablishmentID()
}

// Run runs an e2e suite, skipping it under -short
func Run(t *testing.T, s suite.TestingSuite) {
	if testing.Short() {
		t.Skip("skipping e2e suite in short mode")
	}
	suite.Run(t, s)
}
