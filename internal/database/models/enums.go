package models

// UserRole defines the roles a user can hold in the organisation
type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleManager    UserRole = "manager"
	UserRoleSupervisor UserRole = "supervisor"
	UserRoleCaller     UserRole = "caller"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleSupervisor, UserRoleCaller:
		return true
	}
	return false
}

// CampaignRole defines the role a user plays inside a single campaign
type CampaignRole string

const (
	CampaignRoleCaller     CampaignRole = "caller"
	CampaignRoleManager    CampaignRole = "manager"
	CampaignRoleSupervisor CampaignRole = "supervisor"
)

// IsValid checks if the CampaignRole is valid
func (r CampaignRole) IsValid() bool {
	switch r {
	case CampaignRoleCaller, CampaignRoleManager, CampaignRoleSupervisor:
		return true
	}
	return false
}

// CampaignStatus defines the lifecycle of a campaign
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusPaused    CampaignStatus = "PAUSED"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
)

// IsValid checks if the CampaignStatus is valid
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

// LeadStatus is the lifecycle state of an assignee-lead record.
// The spelling of "Commited" matches the values stored by existing clients.
type LeadStatus string

const (
	LeadStatusFresh         LeadStatus = "Fresh"
	LeadStatusNotConnected  LeadStatus = "Not Connected"
	LeadStatusInterested    LeadStatus = "Interested"
	LeadStatusCommited      LeadStatus = "Commited"
	LeadStatusCallBack      LeadStatus = "Call Back"
	LeadStatusNotInterested LeadStatus = "Not Interested"
	LeadStatusWon           LeadStatus = "Won"
	LeadStatusLost          LeadStatus = "Lost"
	LeadStatusTempleVisit   LeadStatus = "Temple Visit"
	LeadStatusTempleDonor   LeadStatus = "Temple Donor"
)

// IsValid checks if the LeadStatus is valid
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusFresh, LeadStatusNotConnected, LeadStatusInterested, LeadStatusCommited,
		LeadStatusCallBack, LeadStatusNotInterested, LeadStatusWon, LeadStatusLost,
		LeadStatusTempleVisit, LeadStatusTempleDonor:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave this status
func (s LeadStatus) IsTerminal() bool {
	return s == LeadStatusWon || s == LeadStatusLost
}

// IsCurrent reports whether a record in this status is the lead's current assignment
func (s LeadStatus) IsCurrent() bool {
	return s != LeadStatusLost
}

// CanTransitionTo reports whether a record may move from s to next.
// Terminal statuses are final and Fresh is only ever an initial state.
func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}
	if s.IsTerminal() || next == LeadStatusFresh {
		return false
	}
	return s != next
}
