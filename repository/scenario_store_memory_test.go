package repository

import (
	"testing"

	"sip-agent/domain"
)

func scenario(id int64) domain.Scenario {
	return domain.Scenario{
		ID: id,
		Input: domain.SIPInput{
			MonthlyContribution: 1000,
			AnnualRatePercent:   8,
			Years:               5,
		},
		FutureValue: 73000,
	}
}

func TestScenarioStoreMemory_AddPreservesOrder(t *testing.T) {

	store := NewScenarioStoreMemory()

	for id := int64(1); id <= 3; id++ {
		if err := store.Add(scenario(id)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	list := store.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(list))
	}

	for i, sc := range list {
		if sc.ID != int64(i+1) {
			t.Errorf("expected id %d at position %d, got %d", i+1, i, sc.ID)
		}
	}
}

func TestScenarioStoreMemory_RemoveMiddle(t *testing.T) {

	store := NewScenarioStoreMemory()
	store.Add(scenario(1))
	store.Add(scenario(2))
	store.Add(scenario(3))

	if err := store.Remove(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := store.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(list))
	}

	if list[0].ID != 1 || list[1].ID != 3 {
		t.Errorf("expected order 1,3 after removal, got %d,%d", list[0].ID, list[1].ID)
	}
}

func TestScenarioStoreMemory_RemoveUnknownIsNoOp(t *testing.T) {

	store := NewScenarioStoreMemory()
	store.Add(scenario(1))

	if err := store.Remove(42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.List()) != 1 {
		t.Errorf("expected store unchanged")
	}
}

func TestScenarioStoreMemory_IsEmpty(t *testing.T) {

	store := NewScenarioStoreMemory()

	if !store.IsEmpty() {
		t.Errorf("expected new store to be empty")
	}

	store.Add(scenario(1))

	if store.IsEmpty() {
		t.Errorf("expected store not empty after add")
	}

	store.Remove(1)

	if !store.IsEmpty() {
		t.Errorf("expected store empty after removing sole scenario")
	}
}

func TestScenarioStoreMemory_ListIsSnapshot(t *testing.T) {

	store := NewScenarioStoreMemory()
	store.Add(scenario(1))

	list := store.List()
	list[0].ID = 99

	if store.List()[0].ID != 1 {
		t.Errorf("mutating the snapshot must not affect the store")
	}
}
