//go:build integration
// +build integration

package repository

import (
	"crm-backend/internal/database/models"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// crmSuite is embedded by the repository suites: it owns the shared container handle
// and seeds a campaign with two callers for every test
type crmSuite struct {
	suite.Suite
	base      *testutils.BaseTestSuite
	users     *testutils.UserFactory
	campaigns *testutils.CampaignFactory
	leads     *testutils.LeadFactory

	campaign *models.Campaign
	asha     *models.User
	ravi     *models.User
}

func (s *crmSuite) SetupSuite() {
	s.base = testutils.SetupTestSuite(s.T())
	s.users = testutils.NewUserFactory(s.base.DB)
	s.campaigns = testutils.NewCampaignFactory(s.base.DB)
	s.leads = testutils.NewLeadFactory(s.base.DB)
}

func (s *crmSuite) SetupTest() {
	s.base.SetupTest()

	var err error
	s.campaign, err = s.campaigns.Create()
	s.Require().NoError(err)
	s.asha, err = s.users.Create(func(u *models.User) { u.Name = "Asha" })
	s.Require().NoError(err)
	s.ravi, err = s.users.Create(func(u *models.User) { u.Name = "Ravi" })
	s.Require().NoError(err)
}

func (s *crmSuite) TearDownTest() {
	s.base.TearDownTest()
}
