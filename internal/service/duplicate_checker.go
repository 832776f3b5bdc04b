package service

import (
	"errors"
	"fmt"
	"strings"

	"crm-backend/internal/database/models"
	"crm-backend/internal/repository"

	"gorm.io/gorm"
)

// DuplicateChecker looks for an existing lead with the same contact details in any campaign
type DuplicateChecker struct {
	leadRepo repository.LeadRepositoryInterface
}

// NewDuplicateChecker creates a new duplicate checker
func NewDuplicateChecker(leadRepo repository.LeadRepositoryInterface) *DuplicateChecker {
	return &DuplicateChecker{leadRepo: leadRepo}
}

// FindDuplicate returns the first lead matching email, or failing that phone.
// Blank values are not looked up. A nil lead with a nil error means no duplicate.
func (d *DuplicateChecker) FindDuplicate(email, phone string) (*models.Lead, error) {
	if email = strings.TrimSpace(email); email != "" {
		lead, err := d.leadRepo.FindByEmail(email)
		if err == nil {
			return lead, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up lead by email: %w", err)
		}
	}

	if phone = strings.TrimSpace(phone); phone != "" {
		lead, err := d.leadRepo.FindByPhone(phone)
		if err == nil {
			return lead, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up lead by phone: %w", err)
		}
	}

	return nil, nil
}
