// Package memory implements lead storage in process memory. It enforces the
// same uniqueness rules as the postgres store and is meant for local runs and
// tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/phbpx/leadcapture"
)

// LeadStore keeps leads in maps guarded by a mutex.
type LeadStore struct {
	mu       sync.RWMutex
	leads    map[int64]leadcapture.Lead
	byEmail  map[string]int64
	nextLead int64
	nextSI   int64
	now      func() time.Time
}

func NewLeadStore() *LeadStore {
	return &LeadStore{
		leads:   make(map[int64]leadcapture.Lead),
		byEmail: make(map[string]int64),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *LeadStore) Create(_ context.Context, newLead leadcapture.NewLead) (leadcapture.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[newLead.Email]; ok {
		return leadcapture.Lead{}, leadcapture.ConflictError("Email already exists", "email")
	}

	now := s.now()
	s.nextLead++
	lead := leadcapture.Lead{
		ID:        s.nextLead,
		Name:      newLead.Name,
		Mobile:    newLead.Mobile,
		Email:     newLead.Email,
		PostCode:  newLead.PostCode,
		CreatedAt: now,
		UpdatedAt: now,
	}

	types := newLead.DistinctServiceTypes()
	lead.ServiceInterest = make([]leadcapture.ServiceInterest, 0, len(types))
	for _, st := range types {
		s.nextSI++
		lead.ServiceInterest = append(lead.ServiceInterest, leadcapture.ServiceInterest{
			ID:          s.nextSI,
			LeadID:      lead.ID,
			ServiceType: st,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	s.leads[lead.ID] = lead
	s.byEmail[lead.Email] = lead.ID

	return clone(lead), nil
}

func (s *LeadStore) GetByID(_ context.Context, id int64) (leadcapture.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lead, ok := s.leads[id]
	if !ok {
		return leadcapture.Lead{}, leadcapture.NotFoundError("Lead not found")
	}
	return clone(lead), nil
}

// Len returns the number of stored leads.
func (s *LeadStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

func clone(lead leadcapture.Lead) leadcapture.Lead {
	si := make([]leadcapture.ServiceInterest, len(lead.ServiceInterest))
	copy(si, lead.ServiceInterest)
	lead.ServiceInterest = si
	return lead
}
