package domain

type GrowthScheduleInput struct {
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualRatePercent   float64 `json:"annual_rate_percent"`
	Years               int     `json:"years"`
}

// YearProjection is the state of the plan at the end of one year.
type YearProjection struct {
	Year             int     `json:"year"`
	FutureValue      float64 `json:"future_value"`
	TotalContributed float64 `json:"total_contributed"`
	TotalGrowth      float64 `json:"total_growth"`
}

type GrowthScheduleResult struct {
	Schedule       []YearProjection `json:"schedule"`
	ContributedPct float64          `json:"contributed_pct"`
	GrowthPct      float64          `json:"growth_pct"`
}
