package service

import (
	"math/rand/v2"
	"sync"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
)

// PlannedLead pairs a candidate lead with the assignment that will receive it
type PlannedLead struct {
	Lead     LeadInput
	Assignee models.CampaignAssignee
}

// DistributionPlanner spreads leads over assignees: a Fisher-Yates shuffle of the leads
// followed by round-robin over the assignees in their given order.
type DistributionPlanner struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDistributionPlanner creates a planner seeded from the clock
func NewDistributionPlanner() *DistributionPlanner {
	seed := uint64(time.Now().UnixNano())
	return NewSeededDistributionPlanner(rand.New(rand.NewPCG(seed, seed>>1|1)))
}

// NewSeededDistributionPlanner creates a planner drawing from rng, for reproducible plans
func NewSeededDistributionPlanner(rng *rand.Rand) *DistributionPlanner {
	return &DistributionPlanner{rng: rng}
}

// Plan returns one entry per lead in shuffled order. The input slice is not modified.
func (p *DistributionPlanner) Plan(leads []LeadInput, assignees []models.CampaignAssignee) ([]PlannedLead, error) {
	if len(assignees) == 0 {
		return nil, apperrors.ErrNoAssigneesAvailable
	}

	shuffled := make([]LeadInput, len(leads))
	copy(shuffled, leads)

	// rand.Rand is not safe for concurrent use and the planner is shared across requests
	p.mu.Lock()
	for i := len(shuffled) - 1; i > 0; i-- {
		j := p.rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	p.mu.Unlock()

	plan := make([]PlannedLead, len(shuffled))
	for i, lead := range shuffled {
		plan[i] = PlannedLead{Lead: lead, Assignee: assignees[i%len(assignees)]}
	}
	return plan, nil
}

// LeadsPerCaller is the rounded-up share of leads each assignee receives
func LeadsPerCaller(totalLeads, totalCallers int) int {
	if totalCallers == 0 {
		return 0
	}
	return (totalLeads + totalCallers - 1) / totalCallers
}
