package repository

import (
	"errors"
	"fmt"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssigneeLeadRepository handles the assignee-lead audit trail.
// Every status change writes a matching assignee_lead_events row in the same transaction.
type AssigneeLeadRepository struct {
	db *gorm.DB
}

// NewAssigneeLeadRepository creates a new assignee-lead repository
func NewAssigneeLeadRepository(db *gorm.DB) *AssigneeLeadRepository {
	return &AssigneeLeadRepository{db: db}
}

// Create inserts a new record and its creation event
func (r *AssigneeLeadRepository) Create(record *models.AssigneeLead, changedBy *uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return createRecord(tx, record, changedBy)
	})
}

func createRecord(tx *gorm.DB, record *models.AssigneeLead, changedBy *uint) error {
	if record.Status == "" {
		record.Status = models.LeadStatusFresh
	}
	if record.AssignedAt.IsZero() {
		record.AssignedAt = time.Now()
	}
	if err := tx.Create(record).Error; err != nil {
		return err
	}
	event := &models.AssigneeLeadEvent{
		AssigneeLeadID: record.ID,
		LeadID:         record.LeadID,
		ToStatus:       record.Status,
		ChangedBy:      changedBy,
	}
	if record.Notes != nil {
		event.Note = *record.Notes
	}
	return tx.Create(event).Error
}

// closeCurrent moves the lead's current record to Lost, appending suffix to its notes.
// It returns gorm.ErrRecordNotFound when the lead has no current record.
// With keepWon set a Won record is left alone and ErrInvalidStatusTransition is returned.
func closeCurrent(tx *gorm.DB, leadID uint, suffix string, changedBy *uint, keepWon bool) error {
	var current models.AssigneeLead
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("lead_id = ? AND status <> ?", leadID, models.LeadStatusLost).
		First(&current).Error
	if err != nil {
		return err
	}
	if keepWon && current.Status == models.LeadStatusWon {
		return fmt.Errorf("%w: lead %d is won", apperrors.ErrInvalidStatusTransition, leadID)
	}

	err = tx.Model(&models.AssigneeLead{}).Where("id = ?", current.ID).Updates(map[string]interface{}{
		"status": models.LeadStatusLost,
		"notes":  gorm.Expr("COALESCE(notes, '') || ?", suffix),
	}).Error
	if err != nil {
		return err
	}

	from := current.Status
	return tx.Create(&models.AssigneeLeadEvent{
		AssigneeLeadID: current.ID,
		LeadID:         leadID,
		FromStatus:     &from,
		ToStatus:       models.LeadStatusLost,
		ChangedBy:      changedBy,
		Note:           suffix,
	}).Error
}

// GetByID retrieves a record by ID
func (r *AssigneeLeadRepository) GetByID(id uint) (*models.AssigneeLead, error) {
	var record models.AssigneeLead
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// GetCurrentByLeadID retrieves the current record of a lead
func (r *AssigneeLeadRepository) GetCurrentByLeadID(leadID uint) (*models.AssigneeLead, error) {
	var record models.AssigneeLead
	err := r.db.Preload("Assignee").
		Where("lead_id = ? AND status <> ?", leadID, models.LeadStatusLost).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetCurrentByCampaignID retrieves the current records of a campaign, most recent first
func (r *AssigneeLeadRepository) GetCurrentByCampaignID(campaignID uint) ([]models.AssigneeLead, error) {
	var records []models.AssigneeLead
	err := r.db.Preload("Assignee").Preload("Lead").
		Where("campaign_id = ? AND status <> ?", campaignID, models.LeadStatusLost).
		Order("assigned_at DESC").
		Find(&records).Error
	return records, err
}

// GetCurrentByAssigneeID retrieves the current records held by a user
func (r *AssigneeLeadRepository) GetCurrentByAssigneeID(assigneeID uint) ([]models.AssigneeLead, error) {
	var records []models.AssigneeLead
	err := r.db.Preload("Lead").
		Where("assignee_id = ? AND status <> ?", assigneeID, models.LeadStatusLost).
		Order("assigned_at DESC").
		Find(&records).Error
	return records, err
}

// GetHistoryByLeadID retrieves every record of a lead, oldest first
func (r *AssigneeLeadRepository) GetHistoryByLeadID(leadID uint) ([]models.AssigneeLead, error) {
	var records []models.AssigneeLead
	err := r.db.Preload("Assignee").
		Where("lead_id = ?", leadID).
		Order("assigned_at ASC, id ASC").
		Find(&records).Error
	return records, err
}

// GetEventsByLeadID retrieves the transition log of a lead, oldest first
func (r *AssigneeLeadRepository) GetEventsByLeadID(leadID uint) ([]models.AssigneeLeadEvent, error) {
	var events []models.AssigneeLeadEvent
	err := r.db.Where("lead_id = ?", leadID).Order("id ASC").Find(&events).Error
	return events, err
}

// Transition moves a record to a new status and logs the change.
// The lifecycle rule is checked against the locked row, so a concurrent move into a
// terminal status wins and the later request gets ErrInvalidStatusTransition.
func (r *AssigneeLeadRepository) Transition(id uint, to models.LeadStatus, notes *string, changedBy *uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var record models.AssigneeLead
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&record, "id = ?", id).Error; err != nil {
			return err
		}
		if !record.Status.CanTransitionTo(to) {
			return fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidStatusTransition, record.Status, to)
		}

		updates := map[string]interface{}{"status": to}
		if notes != nil {
			updates["notes"] = *notes
		}
		if err := tx.Model(&models.AssigneeLead{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		from := record.Status
		event := &models.AssigneeLeadEvent{
			AssigneeLeadID: id,
			LeadID:         record.LeadID,
			FromStatus:     &from,
			ToStatus:       to,
			ChangedBy:      changedBy,
		}
		if notes != nil {
			event.Note = *notes
		}
		return tx.Create(event).Error
	})
}

// Reassign closes the lead's current record, opens a Fresh one for newAssigneeID and
// points leads.assigned_to at assignmentID, all in one transaction.
// A lead without a current record simply gets the new one. A Won lead is refused.
func (r *AssigneeLeadRepository) Reassign(leadID, campaignID, newAssigneeID, assignmentID uint, assignedBy *uint, notes *string) (*models.AssigneeLead, error) {
	record := &models.AssigneeLead{
		CampaignID: campaignID,
		AssigneeID: newAssigneeID,
		LeadID:     leadID,
		AssignedBy: assignedBy,
		Status:     models.LeadStatusFresh,
		Notes:      notes,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := closeCurrent(tx, leadID, " - Reassigned to new assignee", assignedBy, true); err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := createRecord(tx, record, assignedBy); err != nil {
			return err
		}
		return setAssignedTo(tx, leadID, &assignmentID)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Close moves the lead's current record to Lost and clears leads.assigned_to in one transaction.
// A lead without a current record only has its assignment cleared.
func (r *AssigneeLeadRepository) Close(leadID uint, note string, changedBy *uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := closeCurrent(tx, leadID, " - "+note, changedBy, false)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return setAssignedTo(tx, leadID, nil)
	})
}

func setAssignedTo(tx *gorm.DB, leadID uint, assignmentID *uint) error {
	result := tx.Model(&models.Lead{}).Where("id = ?", leadID).Update("assigned_to", assignmentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetStageStats counts records per assignee grouped into fresh, active, won and lost stages
func (r *AssigneeLeadRepository) GetStageStats() ([]models.StageStats, error) {
	var stats []models.StageStats
	err := r.db.Table("assignee_leads AS al").
		Select(`u.id AS assignee_id, u.name AS name,
			COUNT(CASE WHEN al.status = ? THEN 1 END) AS fresh,
			COUNT(CASE WHEN al.status IN ? THEN 1 END) AS active,
			COUNT(CASE WHEN al.status = ? THEN 1 END) AS won,
			COUNT(CASE WHEN al.status IN ? THEN 1 END) AS lost`,
			models.LeadStatusFresh,
			[]models.LeadStatus{
				models.LeadStatusNotConnected, models.LeadStatusInterested, models.LeadStatusCommited,
				models.LeadStatusCallBack, models.LeadStatusTempleVisit, models.LeadStatusTempleDonor,
			},
			models.LeadStatusWon,
			[]models.LeadStatus{models.LeadStatusNotInterested, models.LeadStatusLost},
		).
		Joins("JOIN users u ON al.assignee_id = u.id").
		Where("u.role IN ?", []models.UserRole{models.UserRoleCaller, models.UserRoleManager, models.UserRoleSupervisor}).
		Group("u.id, u.name").
		Order("u.name").
		Scan(&stats).Error
	return stats, err
}
