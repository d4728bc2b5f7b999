package service

const (
	MaxMonthlyContribution = 10_000_000.0    // aporte mensual máximo
	MaxTargetAmount        = 1_000_000_000.0 // 1 billón
	MaxAnnualRate          = 100.0           // 100% anual
	MaxScheduleYears       = 100             // horizonte máximo de proyección
	MaxGoalYears           = 100.0
)
