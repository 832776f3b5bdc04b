package models

// Campaign groups leads that are worked by a set of assigned callers
type Campaign struct {
	BaseModel
	Name        string         `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description string         `json:"description" gorm:"type:text"`
	Status      CampaignStatus `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT'"`
	CreatedBy   *uint          `json:"created_by,omitempty" gorm:"index"`
	TotalLeads  int            `json:"total_leads" gorm:"not null;default:0"`

	Assignees []CampaignAssignee `json:"assignees,omitempty" gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Campaign
func (Campaign) TableName() string {
	return "campaigns"
}
