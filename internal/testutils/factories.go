package testutils

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"crm-backend/internal/database/models"

	"gorm.io/gorm"
)

var factorySeq atomic.Int64

func nextSeq() int64 {
	return factorySeq.Add(1)
}

// StrPtr returns a pointer to s
func StrPtr(s string) *string {
	return &s
}

// UserFactory builds users with unique emails
type UserFactory struct {
	db *gorm.DB
}

// NewUserFactory creates a user factory; db may be nil when only Build is used
func NewUserFactory(db *gorm.DB) *UserFactory {
	return &UserFactory{db: db}
}

// Build returns an unsaved caller
func (f *UserFactory) Build() *models.User {
	n := nextSeq()
	name := fmt.Sprintf("Caller %d", n)
	return &models.User{
		Name:     name,
		Email:    fmt.Sprintf("caller%d@example.com", n),
		Initials: strings.ToUpper(name[:1]) + "C",
		Role:     models.UserRoleCaller,
	}
}

// Create saves a caller, applying opts before the insert
func (f *UserFactory) Create(opts ...func(*models.User)) (*models.User, error) {
	u := f.Build()
	for _, opt := range opts {
		opt(u)
	}
	return u, f.db.Create(u).Error
}

// CampaignFactory builds campaigns
type CampaignFactory struct {
	db *gorm.DB
}

// NewCampaignFactory creates a campaign factory
func NewCampaignFactory(db *gorm.DB) *CampaignFactory {
	return &CampaignFactory{db: db}
}

// Build returns an unsaved active campaign
func (f *CampaignFactory) Build() *models.Campaign {
	return &models.Campaign{
		Name:   fmt.Sprintf("Campaign %d", nextSeq()),
		Status: models.CampaignStatusActive,
	}
}

// Create saves a campaign
func (f *CampaignFactory) Create(opts ...func(*models.Campaign)) (*models.Campaign, error) {
	c := f.Build()
	for _, opt := range opts {
		opt(c)
	}
	return c, f.db.Create(c).Error
}

// AssignUser adds user to campaign as an active caller
func (f *CampaignFactory) AssignUser(campaignID, userID uint) (*models.CampaignAssignee, error) {
	a := &models.CampaignAssignee{
		CampaignID:     campaignID,
		UserID:         userID,
		RoleInCampaign: models.CampaignRoleCaller,
		IsActive:       true,
		AssignedAt:     time.Now(),
	}
	return a, f.db.Create(a).Error
}

// LeadFactory builds leads with unique contact data
type LeadFactory struct {
	db *gorm.DB
}

// NewLeadFactory creates a lead factory
func NewLeadFactory(db *gorm.DB) *LeadFactory {
	return &LeadFactory{db: db}
}

// Build returns an unsaved lead of the campaign
func (f *LeadFactory) Build(campaignID uint) *models.Lead {
	n := nextSeq()
	return &models.Lead{
		FirstName:  StrPtr("Lead"),
		LastName:   StrPtr(fmt.Sprintf("%d", n)),
		Email:      StrPtr(fmt.Sprintf("lead%d@example.com", n)),
		Phone:      StrPtr(fmt.Sprintf("+1555%07d", n)),
		CampaignID: campaignID,
	}
}

// Create saves a lead of the campaign
func (f *LeadFactory) Create(campaignID uint, opts ...func(*models.Lead)) (*models.Lead, error) {
	l := f.Build(campaignID)
	for _, opt := range opts {
		opt(l)
	}
	return l, f.db.Create(l).Error
}
