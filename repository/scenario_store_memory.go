package repository

import (
	"sync"

	"sip-agent/domain"
)

// ScenarioStoreMemory is an in-memory implementation of ScenarioStore.
type ScenarioStoreMemory struct {
	mu        sync.Mutex
	scenarios []domain.Scenario
}

// NewScenarioStoreMemory creates a new empty in-memory scenario store.
func NewScenarioStoreMemory() *ScenarioStoreMemory {
	return &ScenarioStoreMemory{
		scenarios: []domain.Scenario{},
	}
}

// Add appends the scenario at the end of the sequence.
func (s *ScenarioStoreMemory) Add(scenario domain.Scenario) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenarios = append(s.scenarios, scenario)
	return nil
}

// Remove deletes the scenario with the given id. Removing an id that is not
// present is not an error.
func (s *ScenarioStoreMemory) Remove(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sc := range s.scenarios {
		if sc.ID == id {
			s.scenarios = append(s.scenarios[:i], s.scenarios[i+1:]...)
			return nil
		}
	}
	return nil
}

// List returns a snapshot copy of the scenarios in insertion order.
func (s *ScenarioStoreMemory) List() []domain.Scenario {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Scenario, len(s.scenarios))
	copy(out, s.scenarios)
	return out
}

// IsEmpty reports whether the store holds no scenarios.
func (s *ScenarioStoreMemory) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.scenarios) == 0
}
