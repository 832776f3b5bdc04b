//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AssigneeLeadRepositoryTestSuite tests the AssigneeLeadRepository
type AssigneeLeadRepositoryTestSuite struct {
	crmSuite
	repo *AssigneeLeadRepository
	lead *models.Lead
}

func (suite *AssigneeLeadRepositoryTestSuite) SetupSuite() {
	suite.crmSuite.SetupSuite()
	suite.repo = NewAssigneeLeadRepository(suite.base.DB)
}

func (suite *AssigneeLeadRepositoryTestSuite) SetupTest() {
	suite.crmSuite.SetupTest()
	var err error
	suite.lead, err = suite.leads.Create(suite.campaign.ID)
	suite.Require().NoError(err)
}

func (suite *AssigneeLeadRepositoryTestSuite) open(assigneeID uint) *models.AssigneeLead {
	record := &models.AssigneeLead{CampaignID: suite.campaign.ID, AssigneeID: assigneeID, LeadID: suite.lead.ID}
	suite.Require().NoError(suite.repo.Create(record, &suite.ravi.ID))
	return record
}

func (suite *AssigneeLeadRepositoryTestSuite) TestCreate_DefaultsFreshAndLogsEvent() {
	record := suite.open(suite.asha.ID)

	suite.Equal(models.LeadStatusFresh, record.Status)
	suite.False(record.AssignedAt.IsZero())

	events, err := suite.repo.GetEventsByLeadID(suite.lead.ID)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.Nil(events[0].FromStatus)
	suite.Equal(models.LeadStatusFresh, events[0].ToStatus)
	suite.Equal(suite.ravi.ID, *events[0].ChangedBy)
}

func (suite *AssigneeLeadRepositoryTestSuite) TestOnlyOneCurrentRecordPerLead() {
	suite.open(suite.asha.ID)

	second := &models.AssigneeLead{CampaignID: suite.campaign.ID, AssigneeID: suite.ravi.ID, LeadID: suite.lead.ID}
	suite.Error(suite.repo.Create(second, nil))
}

func (suite *AssigneeLeadRepositoryTestSuite) TestTransition() {
	record := suite.open(suite.asha.ID)
	notes := "call after six"

	suite.Require().NoError(suite.repo.Transition(record.ID, models.LeadStatusCallBack, &notes, &suite.asha.ID))

	got, err := suite.repo.GetByID(record.ID)
	suite.Require().NoError(err)
	suite.Equal(models.LeadStatusCallBack, got.Status)
	suite.Equal(notes, *got.Notes)

	events, err := suite.repo.GetEventsByLeadID(suite.lead.ID)
	suite.Require().NoError(err)
	suite.Require().Len(events, 2)
	suite.Equal(models.LeadStatusFresh, *events[1].FromStatus)
	suite.Equal(models.LeadStatusCallBack, events[1].ToStatus)

	err = suite.repo.Transition(record.ID+100, models.LeadStatusWon, nil, nil)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *AssigneeLeadRepositoryTestSuite) TestTransition_RechecksLockedStatus() {
	record := suite.open(suite.asha.ID)
	suite.Require().NoError(suite.repo.Transition(record.ID, models.LeadStatusWon, nil, nil))

	// a second request that validated against the stale Fresh status
	err := suite.repo.Transition(record.ID, models.LeadStatusInterested, nil, nil)

	suite.True(errors.Is(err, apperrors.ErrInvalidStatusTransition))
	got, err := suite.repo.GetByID(record.ID)
	suite.Require().NoError(err)
	suite.Equal(models.LeadStatusWon, got.Status)

	events, err := suite.repo.GetEventsByLeadID(suite.lead.ID)
	suite.Require().NoError(err)
	suite.Len(events, 2)
}

func (suite *AssigneeLeadRepositoryTestSuite) assignedTo() *uint {
	var lead models.Lead
	suite.Require().NoError(suite.base.DB.First(&lead, suite.lead.ID).Error)
	return lead.AssignedTo
}

func (suite *AssigneeLeadRepositoryTestSuite) TestReassign_ClosesPreviousRecord() {
	first := suite.open(suite.asha.ID)
	raviAssignment, err := suite.campaigns.AssignUser(suite.campaign.ID, suite.ravi.ID)
	suite.Require().NoError(err)

	second, err := suite.repo.Reassign(suite.lead.ID, suite.campaign.ID, suite.ravi.ID, raviAssignment.ID, &suite.asha.ID, nil)
	suite.Require().NoError(err)
	suite.Equal(raviAssignment.ID, *suite.assignedTo())

	closed, err := suite.repo.GetByID(first.ID)
	suite.Require().NoError(err)
	suite.Equal(models.LeadStatusLost, closed.Status)
	suite.Contains(*closed.Notes, "Reassigned")

	current, err := suite.repo.GetCurrentByLeadID(suite.lead.ID)
	suite.Require().NoError(err)
	suite.Equal(second.ID, current.ID)
	suite.Equal("Ravi", current.Assignee.Name)

	history, err := suite.repo.GetHistoryByLeadID(suite.lead.ID)
	suite.Require().NoError(err)
	suite.Len(history, 2)
}

func (suite *AssigneeLeadRepositoryTestSuite) TestReassign_WithoutCurrentRecord() {
	ashaAssignment, err := suite.campaigns.AssignUser(suite.campaign.ID, suite.asha.ID)
	suite.Require().NoError(err)

	record, err := suite.repo.Reassign(suite.lead.ID, suite.campaign.ID, suite.asha.ID, ashaAssignment.ID, nil, nil)

	suite.Require().NoError(err)
	suite.Equal(models.LeadStatusFresh, record.Status)
	suite.Equal(ashaAssignment.ID, *suite.assignedTo())
}

func (suite *AssigneeLeadRepositoryTestSuite) TestReassign_RollsBackWhenAssignmentWriteFails() {
	ashaAssignment, err := suite.campaigns.AssignUser(suite.campaign.ID, suite.asha.ID)
	suite.Require().NoError(err)
	first, err := suite.repo.Reassign(suite.lead.ID, suite.campaign.ID, suite.asha.ID, ashaAssignment.ID, nil, nil)
	suite.Require().NoError(err)

	// no such campaign assignment, so the assigned_to foreign key rejects the write
	_, err = suite.repo.Reassign(suite.lead.ID, suite.campaign.ID, suite.ravi.ID, ashaAssignment.ID+1000, nil, nil)
	suite.Require().Error(err)

	current, err := suite.repo.GetCurrentByLeadID(suite.lead.ID)
	suite.Require().NoError(err)
	suite.Equal(first.ID, current.ID)
	suite.Equal(models.LeadStatusFresh, current.Status)
	suite.Equal(ashaAssignment.ID, *suite.assignedTo())

	history, err := suite.repo.GetHistoryByLeadID(suite.lead.ID)
	suite.Require().NoError(err)
	suite.Len(history, 1)
}

func (suite *AssigneeLeadRepositoryTestSuite) TestReassign_RefusesWonLead() {
	record := suite.open(suite.asha.ID)
	suite.Require().NoError(suite.repo.Transition(record.ID, models.LeadStatusWon, nil, nil))
	raviAssignment, err := suite.campaigns.AssignUser(suite.campaign.ID, suite.ravi.ID)
	suite.Require().NoError(err)

	_, err = suite.repo.Reassign(suite.lead.ID, suite.campaign.ID, suite.ravi.ID, raviAssignment.ID, nil, nil)

	suite.True(errors.Is(err, apperrors.ErrInvalidStatusTransition))
	current, err := suite.repo.GetCurrentByLeadID(suite.lead.ID)
	suite.Require().NoError(err)
	suite.Equal(record.ID, current.ID)
}

func (suite *AssigneeLeadRepositoryTestSuite) TestClose() {
	ashaAssignment, err := suite.campaigns.AssignUser(suite.campaign.ID, suite.asha.ID)
	suite.Require().NoError(err)
	_, err = suite.repo.Reassign(suite.lead.ID, suite.campaign.ID, suite.asha.ID, ashaAssignment.ID, nil, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.Close(suite.lead.ID, "Unassigned", nil))
	_, err = suite.repo.GetCurrentByLeadID(suite.lead.ID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
	suite.Nil(suite.assignedTo())

	// nothing left to close
	suite.NoError(suite.repo.Close(suite.lead.ID, "Unassigned", nil))
}

func (suite *AssigneeLeadRepositoryTestSuite) TestCurrentListingsAndStageStats() {
	suite.open(suite.asha.ID)
	other, err := suite.leads.Create(suite.campaign.ID)
	suite.Require().NoError(err)
	won := &models.AssigneeLead{CampaignID: suite.campaign.ID, AssigneeID: suite.asha.ID, LeadID: other.ID, Status: models.LeadStatusWon}
	suite.Require().NoError(suite.repo.Create(won, nil))

	byCampaign, err := suite.repo.GetCurrentByCampaignID(suite.campaign.ID)
	suite.Require().NoError(err)
	suite.Len(byCampaign, 2)

	byAssignee, err := suite.repo.GetCurrentByAssigneeID(suite.asha.ID)
	suite.Require().NoError(err)
	suite.Len(byAssignee, 2)

	stats, err := suite.repo.GetStageStats()
	suite.Require().NoError(err)
	suite.Require().Len(stats, 1)
	suite.Equal("Asha", stats[0].Name)
	suite.Equal(int64(1), stats[0].Fresh)
	suite.Equal(int64(1), stats[0].Won)
}

func TestAssigneeLeadRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssigneeLeadRepositoryTestSuite))
}
