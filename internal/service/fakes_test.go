package service_test

import (
	"sort"
	"strings"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/repository"

	"gorm.io/gorm"
)

// memStore is an in-memory stand-in for Postgres, shared by the fake repositories below.
// Like the real store every write is visible to the next read.
type memStore struct {
	users         map[uint]*models.User
	campaigns     map[uint]*models.Campaign
	assignees     []*models.CampaignAssignee
	leads         []*models.Lead
	assigneeLeads []*models.AssigneeLead
	nextID        uint

	failLeadCreate    func(*models.Lead) error
	failAuditCreate   error
	failAssignedTo    error
	failCurrentLookup error
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[uint]*models.User{},
		campaigns: map[uint]*models.Campaign{},
		nextID:    1000,
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *memStore) addUser(id uint, name string) *models.User {
	u := &models.User{Name: name, Email: strings.ToLower(name) + "@example.com", Role: models.UserRoleCaller}
	u.ID = id
	s.users[id] = u
	return u
}

func (s *memStore) addCampaign(id uint) *models.Campaign {
	c := &models.Campaign{Name: "Campaign", Status: models.CampaignStatusActive}
	c.ID = id
	s.campaigns[id] = c
	return c
}

func (s *memStore) addAssignee(campaignID, userID uint) *models.CampaignAssignee {
	a := &models.CampaignAssignee{
		CampaignID:     campaignID,
		UserID:         userID,
		RoleInCampaign: models.CampaignRoleCaller,
		IsActive:       true,
		AssignedAt:     time.Now(),
	}
	a.ID = s.id()
	s.assignees = append(s.assignees, a)
	return a
}

func (s *memStore) activeAssignees(campaignID uint) []*models.CampaignAssignee {
	var out []*models.CampaignAssignee
	for _, a := range s.assignees {
		if a.CampaignID == campaignID && a.IsActive {
			out = append(out, a)
		}
	}
	return out
}

func (s *memStore) withUser(a *models.CampaignAssignee) models.CampaignAssignee {
	cp := *a
	cp.User = s.users[a.UserID]
	return cp
}

func (s *memStore) leadsOf(campaignID uint) []*models.Lead {
	var out []*models.Lead
	for _, l := range s.leads {
		if l.CampaignID == campaignID {
			out = append(out, l)
		}
	}
	return out
}

func (s *memStore) lead(id uint) *models.Lead {
	for _, l := range s.leads {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func (s *memStore) recordFor(leadID uint) *models.AssigneeLead {
	for _, r := range s.assigneeLeads {
		if r.LeadID == leadID && r.Status != models.LeadStatusLost {
			return r
		}
	}
	return nil
}

type fakeUserRepo struct{ s *memStore }

func (r fakeUserRepo) GetByID(id uint) (*models.User, error) {
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeCampaignRepo struct{ s *memStore }

func (r fakeCampaignRepo) Create(c *models.Campaign) error {
	c.ID = r.s.id()
	r.s.campaigns[c.ID] = c
	return nil
}

func (r fakeCampaignRepo) GetByID(id uint) (*models.Campaign, error) {
	if c, ok := r.s.campaigns[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeCampaignRepo) UpdateTotalLeads(id uint, total int64) error {
	if c, ok := r.s.campaigns[id]; ok {
		c.TotalLeads = int(total)
		return nil
	}
	return gorm.ErrRecordNotFound
}

type fakeAssigneeRepo struct{ s *memStore }

func (r fakeAssigneeRepo) Create(a *models.CampaignAssignee) error {
	a.ID = r.s.id()
	cp := *a
	r.s.assignees = append(r.s.assignees, &cp)
	return nil
}

func (r fakeAssigneeRepo) GetByID(id uint) (*models.CampaignAssignee, error) {
	for _, a := range r.s.assignees {
		if a.ID == id {
			cp := r.s.withUser(a)
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeAssigneeRepo) GetActiveByCampaignAndUser(campaignID, userID uint) (*models.CampaignAssignee, error) {
	for _, a := range r.s.activeAssignees(campaignID) {
		if a.UserID == userID {
			cp := r.s.withUser(a)
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeAssigneeRepo) GetActiveByCampaignID(campaignID uint) ([]models.CampaignAssignee, error) {
	active := r.s.activeAssignees(campaignID)
	out := make([]models.CampaignAssignee, 0, len(active))
	for _, a := range active {
		out = append(out, r.s.withUser(a))
	}
	return out, nil
}

func (r fakeAssigneeRepo) GetActiveByUserID(userID uint) ([]models.CampaignAssignee, error) {
	var out []models.CampaignAssignee
	for _, a := range r.s.assignees {
		if a.UserID == userID && a.IsActive {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r fakeAssigneeRepo) Update(id uint, updates map[string]interface{}) error {
	for _, a := range r.s.assignees {
		if a.ID == id {
			if v, ok := updates["is_active"].(bool); ok {
				a.IsActive = v
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r fakeAssigneeRepo) Deactivate(campaignID, userID uint) (bool, error) {
	for _, a := range r.s.activeAssignees(campaignID) {
		if a.UserID == userID {
			a.IsActive = false
			return true, nil
		}
	}
	return false, nil
}

type fakeLeadRepo struct{ s *memStore }

func (r fakeLeadRepo) Create(l *models.Lead) error {
	if r.s.failLeadCreate != nil {
		if err := r.s.failLeadCreate(l); err != nil {
			return err
		}
	}
	l.ID = r.s.id()
	l.CreatedAt = time.Now()
	cp := *l
	r.s.leads = append(r.s.leads, &cp)
	return nil
}

func (r fakeLeadRepo) GetByID(id uint) (*models.Lead, error) {
	for _, l := range r.s.leads {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeLeadRepo) GetAll(limit, offset int) ([]models.Lead, int64, error) {
	var out []models.Lead
	for i, l := range r.s.leads {
		if i >= offset && len(out) < limit {
			out = append(out, *l)
		}
	}
	return out, int64(len(r.s.leads)), nil
}

func (r fakeLeadRepo) FindByEmail(email string) (*models.Lead, error) {
	for _, l := range r.s.leads {
		if l.Email != nil && strings.EqualFold(*l.Email, email) {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeLeadRepo) FindByPhone(phone string) (*models.Lead, error) {
	for _, l := range r.s.leads {
		if l.Phone != nil && *l.Phone == phone {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeLeadRepo) Update(id uint, updates map[string]interface{}) error {
	l := r.s.lead(id)
	if l == nil {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["email"].(string); ok {
		l.Email = &v
	}
	if v, ok := updates["phone"].(string); ok {
		l.Phone = &v
	}
	return nil
}

func (r fakeLeadRepo) Delete(id uint) error {
	for i, l := range r.s.leads {
		if l.ID == id {
			r.s.leads = append(r.s.leads[:i], r.s.leads[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r fakeLeadRepo) GetByAssignment(assignmentID uint) ([]models.Lead, error) {
	var out []models.Lead
	for _, l := range r.s.leads {
		if l.AssignedTo != nil && *l.AssignedTo == assignmentID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r fakeLeadRepo) GetUnassignedByCampaign(campaignID uint) ([]models.Lead, error) {
	var out []models.Lead
	for _, l := range r.s.leadsOf(campaignID) {
		if l.AssignedTo == nil {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r fakeLeadRepo) CountByCampaign(campaignID uint) (int64, error) {
	return int64(len(r.s.leadsOf(campaignID))), nil
}

type fakeAssigneeLeadRepo struct{ s *memStore }

func (r fakeAssigneeLeadRepo) Create(record *models.AssigneeLead, changedBy *uint) error {
	if r.s.failAuditCreate != nil {
		return r.s.failAuditCreate
	}
	record.ID = r.s.id()
	if record.Status == "" {
		record.Status = models.LeadStatusFresh
	}
	cp := *record
	r.s.assigneeLeads = append(r.s.assigneeLeads, &cp)
	return nil
}

func (r fakeAssigneeLeadRepo) GetByID(id uint) (*models.AssigneeLead, error) {
	for _, rec := range r.s.assigneeLeads {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeAssigneeLeadRepo) GetCurrentByLeadID(leadID uint) (*models.AssigneeLead, error) {
	if r.s.failCurrentLookup != nil {
		return nil, r.s.failCurrentLookup
	}
	if rec := r.s.recordFor(leadID); rec != nil {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeAssigneeLeadRepo) GetCurrentByCampaignID(campaignID uint) ([]models.AssigneeLead, error) {
	var out []models.AssigneeLead
	for _, rec := range r.s.assigneeLeads {
		if rec.CampaignID == campaignID && rec.Status != models.LeadStatusLost {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r fakeAssigneeLeadRepo) GetCurrentByAssigneeID(assigneeID uint) ([]models.AssigneeLead, error) {
	var out []models.AssigneeLead
	for _, rec := range r.s.assigneeLeads {
		if rec.AssigneeID == assigneeID && rec.Status != models.LeadStatusLost {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r fakeAssigneeLeadRepo) GetHistoryByLeadID(leadID uint) ([]models.AssigneeLead, error) {
	var out []models.AssigneeLead
	for _, rec := range r.s.assigneeLeads {
		if rec.LeadID == leadID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r fakeAssigneeLeadRepo) GetEventsByLeadID(leadID uint) ([]models.AssigneeLeadEvent, error) {
	return []models.AssigneeLeadEvent{}, nil
}

func (r fakeAssigneeLeadRepo) Transition(id uint, to models.LeadStatus, notes *string, changedBy *uint) error {
	rec, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if !rec.Status.CanTransitionTo(to) {
		return apperrors.ErrInvalidStatusTransition
	}
	rec.Status = to
	return nil
}

// Reassign and Close check every failure before mutating anything, the way the
// real repository rolls its transaction back.
func (r fakeAssigneeLeadRepo) Reassign(leadID, campaignID, newAssigneeID, assignmentID uint, assignedBy *uint, notes *string) (*models.AssigneeLead, error) {
	l := r.s.lead(leadID)
	if l == nil {
		return nil, gorm.ErrRecordNotFound
	}
	if r.s.failAssignedTo != nil {
		return nil, r.s.failAssignedTo
	}
	if r.s.failAuditCreate != nil {
		return nil, r.s.failAuditCreate
	}
	prev := r.s.recordFor(leadID)
	if prev != nil && prev.Status == models.LeadStatusWon {
		return nil, apperrors.ErrInvalidStatusTransition
	}
	if prev != nil {
		prev.Status = models.LeadStatusLost
	}
	record := &models.AssigneeLead{CampaignID: campaignID, AssigneeID: newAssigneeID, LeadID: leadID, AssignedBy: assignedBy, Notes: notes}
	if err := r.Create(record, assignedBy); err != nil {
		return nil, err
	}
	l.AssignedTo = &assignmentID
	return record, nil
}

func (r fakeAssigneeLeadRepo) Close(leadID uint, note string, changedBy *uint) error {
	l := r.s.lead(leadID)
	if l == nil {
		return gorm.ErrRecordNotFound
	}
	if r.s.failAssignedTo != nil {
		return r.s.failAssignedTo
	}
	if rec := r.s.recordFor(leadID); rec != nil {
		rec.Status = models.LeadStatusLost
	}
	l.AssignedTo = nil
	return nil
}

func (r fakeAssigneeLeadRepo) GetStageStats() ([]models.StageStats, error) {
	byUser := map[uint]*models.StageStats{}
	for _, rec := range r.s.assigneeLeads {
		st, ok := byUser[rec.AssigneeID]
		if !ok {
			st = &models.StageStats{AssigneeID: rec.AssigneeID}
			byUser[rec.AssigneeID] = st
		}
		switch rec.Status {
		case models.LeadStatusFresh:
			st.Fresh++
		case models.LeadStatusWon:
			st.Won++
		case models.LeadStatusLost, models.LeadStatusNotInterested:
			st.Lost++
		default:
			st.Active++
		}
	}
	out := make([]models.StageStats, 0, len(byUser))
	for _, st := range byUser {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssigneeID < out[j].AssigneeID })
	return out, nil
}

// compile-time checks
var (
	_ repository.UserRepositoryInterface             = fakeUserRepo{}
	_ repository.CampaignRepositoryInterface         = fakeCampaignRepo{}
	_ repository.CampaignAssigneeRepositoryInterface = fakeAssigneeRepo{}
	_ repository.LeadRepositoryInterface             = fakeLeadRepo{}
	_ repository.AssigneeLeadRepositoryInterface     = fakeAssigneeLeadRepo{}
)
