package domain

import "time"

// Scenario is a saved calculation snapshot, kept for side-by-side comparison.
// The same parameters may be saved multiple times as distinct records.
type Scenario struct {
	ID          int64     `json:"id"`
	Input       SIPInput  `json:"input"`
	FutureValue float64   `json:"future_value"`
	CreatedAt   time.Time `json:"created_at"`
}
