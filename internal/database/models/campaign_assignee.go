package models

import (
	"time"
)

// CampaignAssignee records that a user works a campaign in a given role.
// Only one active row may exist per (campaign, user); removal clears IsActive.
type CampaignAssignee struct {
	BaseModel
	CampaignID     uint         `json:"campaign_id" gorm:"not null;uniqueIndex:idx_campaign_assignees_active,where:is_active = true" validate:"required"`
	UserID         uint         `json:"user_id" gorm:"not null;index;uniqueIndex:idx_campaign_assignees_active,where:is_active = true" validate:"required"`
	AssignedBy     *uint        `json:"assigned_by,omitempty"`
	RoleInCampaign CampaignRole `json:"role_in_campaign" gorm:"type:varchar(20);not null;default:'caller'"`
	IsActive       bool         `json:"is_active" gorm:"not null;default:true"`
	AssignedAt     time.Time    `json:"assigned_at" gorm:"not null"`

	// Relationships
	Campaign *Campaign `json:"campaign,omitempty" gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CampaignAssignee
func (CampaignAssignee) TableName() string {
	return "campaign_assignees"
}

// DisplayName returns the joined user's name, or an empty string when the user was not loaded
func (a *CampaignAssignee) DisplayName() string {
	if a.User == nil {
		return ""
	}
	return a.User.Name
}
