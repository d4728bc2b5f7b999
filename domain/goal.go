package domain

type GoalInput struct {
	TargetAmount      float64 `json:"target_amount"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Years             float64 `json:"years"`
}

type GoalResult struct {
	RequiredMonthlyContribution float64 `json:"required_monthly_contribution"`
	TotalContributed            float64 `json:"total_contributed"`
	TotalGrowth                 float64 `json:"total_growth"`
}
