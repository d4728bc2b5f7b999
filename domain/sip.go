package domain

// SIPInput are the parameters of a systematic investment plan: a fixed
// monthly contribution invested at an annual rate for a number of years.
type SIPInput struct {
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualRatePercent   float64 `json:"annual_rate_percent"`
	Years               float64 `json:"years"`
}

type SIPResult struct {
	FutureValue      float64 `json:"future_value"`
	TotalContributed float64 `json:"total_contributed"`
	TotalGrowth      float64 `json:"total_growth"`
}
