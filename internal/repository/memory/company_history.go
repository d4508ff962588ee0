package memory

import (
	"context"
	"sync"

	"go-bidtrack-backend/internal/domain"
)

// CompanyHistory is the in-memory company failure history. It backs tests
// and single-process deployments that do not need durable history.
type CompanyHistory struct {
	mu      sync.RWMutex
	entries map[string]*domain.CompanyRoleHistory
}

// NewCompanyHistory creates an empty in-memory history store
func NewCompanyHistory() *CompanyHistory {
	return &CompanyHistory{entries: make(map[string]*domain.CompanyRoleHistory)}
}

// RecordFailure appends a failure record, creating the (company, role) entry
// if absent. Attendees are copied so later caller mutations cannot leak in.
func (s *CompanyHistory) RecordFailure(_ context.Context, company, role string, record domain.FailureRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.HistoryKey(company, role)
	entry, ok := s.entries[key]
	if !ok {
		entry = &domain.CompanyRoleHistory{Company: company, Role: role}
		s.entries[key] = entry
	}
	record.Attendees = append([]string(nil), record.Attendees...)
	entry.Failures = append(entry.Failures, record)
	return nil
}

// GetHistory returns a deep copy of the entry, or nil when nothing was ever
// recorded for the pair.
func (s *CompanyHistory) GetHistory(_ context.Context, company, role string) (*domain.CompanyRoleHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[domain.HistoryKey(company, role)].Clone(), nil
}

func (s *CompanyHistory) HasFailures(_ context.Context, company, role string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[domain.HistoryKey(company, role)]
	return ok && len(entry.Failures) > 0, nil
}

func (s *CompanyHistory) GetWarningMessage(_ context.Context, company, role string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[domain.HistoryKey(company, role)].WarningMessage(), nil
}
