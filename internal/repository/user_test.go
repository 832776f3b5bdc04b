//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserCampaignRepositoryTestSuite tests the read side of users and campaigns
type UserCampaignRepositoryTestSuite struct {
	crmSuite
	users     *UserRepository
	campaigns *CampaignRepository
}

func (suite *UserCampaignRepositoryTestSuite) SetupSuite() {
	suite.crmSuite.SetupSuite()
	suite.users = NewUserRepository(suite.base.DB)
	suite.campaigns = NewCampaignRepository(suite.base.DB)
}

func (suite *UserCampaignRepositoryTestSuite) TestUserLookups() {
	got, err := suite.users.GetByID(suite.asha.ID)
	suite.Require().NoError(err)
	suite.Equal("Asha", got.Name)

	byEmail, err := suite.users.GetByEmail(suite.ravi.Email)
	suite.Require().NoError(err)
	suite.Equal(suite.ravi.ID, byEmail.ID)

	_, err = suite.users.GetByID(suite.ravi.ID + 100)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *UserCampaignRepositoryTestSuite) TestUpdateTotalLeads() {
	suite.Require().NoError(suite.campaigns.UpdateTotalLeads(suite.campaign.ID, 42))

	got, err := suite.campaigns.GetByID(suite.campaign.ID)
	suite.Require().NoError(err)
	suite.Equal(42, got.TotalLeads)
}

func TestUserCampaignRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserCampaignRepositoryTestSuite))
}
