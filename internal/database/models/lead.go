package models

// Lead is a prospective contact belonging to a campaign.
// AssignedTo references a campaign_assignees row of the same campaign, not a user.
type Lead struct {
	BaseModel
	FirstName     *string `json:"first_name" gorm:"size:100"`
	LastName      *string `json:"last_name" gorm:"size:100"`
	Email         *string `json:"email" gorm:"size:255;index:idx_leads_email_lower,expression:lower(email)"`
	Phone         *string `json:"phone" gorm:"size:30;index"`
	AltPhone      *string `json:"alt_phone" gorm:"size:30"`
	AddressLine   *string `json:"address_line" gorm:"size:255"`
	City          *string `json:"city" gorm:"size:100"`
	State         *string `json:"state" gorm:"size:100"`
	Country       *string `json:"country" gorm:"size:100"`
	Zip           *string `json:"zip" gorm:"size:20"`
	Rating        *int    `json:"rating"`
	CurrentStatus *string `json:"current_status" gorm:"size:50"`
	CampaignID    uint    `json:"campaign_id" gorm:"not null;index"`
	AssignedTo    *uint   `json:"assigned_to" gorm:"index"`

	// Relationships
	Campaign   *Campaign         `json:"-" gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
	Assignment *CampaignAssignee `json:"-" gorm:"foreignKey:AssignedTo;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}
