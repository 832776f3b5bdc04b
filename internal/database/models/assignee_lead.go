package models

import (
	"time"
)

// AssigneeLead is the audit record of a lead being worked by a user.
// At most one record per lead is current (status other than Lost).
type AssigneeLead struct {
	BaseModel
	CampaignID uint       `json:"campaign_id" gorm:"not null;index"`
	AssigneeID uint       `json:"assignee_id" gorm:"not null;index"`
	LeadID     uint       `json:"lead_id" gorm:"not null;uniqueIndex:idx_assignee_leads_current,where:status <> 'Lost'"`
	AssignedBy *uint      `json:"assigned_by,omitempty"`
	Status     LeadStatus `json:"status" gorm:"type:varchar(30);not null;default:'Fresh'"`
	Notes      *string    `json:"notes,omitempty" gorm:"type:text"`
	AssignedAt time.Time  `json:"assigned_at" gorm:"not null"`

	// Relationships
	Lead     *Lead `json:"lead,omitempty" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	Assignee *User `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AssigneeLead
func (AssigneeLead) TableName() string {
	return "assignee_leads"
}

// AssigneeLeadEvent is an append-only entry describing one lifecycle transition
type AssigneeLeadEvent struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	AssigneeLeadID uint        `json:"assignee_lead_id" gorm:"not null;index"`
	LeadID         uint        `json:"lead_id" gorm:"not null;index"`
	FromStatus     *LeadStatus `json:"from_status,omitempty" gorm:"type:varchar(30)"`
	ToStatus       LeadStatus  `json:"to_status" gorm:"type:varchar(30);not null"`
	ChangedBy      *uint       `json:"changed_by,omitempty"`
	Note           string      `json:"note,omitempty" gorm:"type:text"`
	CreatedAt      time.Time   `json:"created_at"`
}

// TableName returns the table name for AssigneeLeadEvent
func (AssigneeLeadEvent) TableName() string {
	return "assignee_lead_events"
}

// StageStats aggregates the records of one assignee by lifecycle stage
type StageStats struct {
	AssigneeID uint   `json:"assignee_id"`
	Name       string `json:"name"`
	Fresh      int64  `json:"fresh"`
	Active     int64  `json:"active"`
	Won        int64  `json:"won"`
	Lost       int64  `json:"lost"`
}
