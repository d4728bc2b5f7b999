package service

import (
	"sync/atomic"
	"time"

	"sip-agent/domain"
	"sip-agent/repository"
)

// ScenarioService manages the saved-scenario comparison set. Ids are issued
// from a process-lifetime monotonic counter, so two saves in the same
// millisecond still get distinct ids.
type ScenarioService struct {
	sipService *SIPService
	store      repository.ScenarioStore
	lastID     atomic.Int64
}

func NewScenarioService(sipService *SIPService, store repository.ScenarioStore) *ScenarioService {
	return &ScenarioService{
		sipService: sipService,
		store:      store,
	}
}

// Save computes the projection for the input and appends the snapshot to the
// store. The same parameters may be saved any number of times; each save is a
// distinct record.
func (s *ScenarioService) Save(input domain.SIPInput) (domain.Scenario, error) {
	result := s.sipService.Compute(input)

	scenario := domain.Scenario{
		ID:          s.lastID.Add(1),
		Input:       input,
		FutureValue: result.FutureValue,
		CreatedAt:   time.Now(),
	}

	if err := s.store.Add(scenario); err != nil {
		return domain.Scenario{}, err
	}

	return scenario, nil
}

// Remove deletes the scenario with the given id; unknown ids are a no-op.
func (s *ScenarioService) Remove(id int64) error {
	return s.store.Remove(id)
}

// List returns the saved scenarios in insertion order.
func (s *ScenarioService) List() []domain.Scenario {
	return s.store.List()
}

// IsEmpty reports whether any scenario is saved.
func (s *ScenarioService) IsEmpty() bool {
	return s.store.IsEmpty()
}
