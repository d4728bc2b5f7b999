package repository

import "sip-agent/domain"

// ScenarioStore holds the saved scenarios for the lifetime of the process,
// in insertion order.
type ScenarioStore interface {
	Add(scenario domain.Scenario) error
	Remove(id int64) error
	List() []domain.Scenario
	IsEmpty() bool
}
