package service

import (
	"errors"
	"fmt"
	"math"

	"sip-agent/domain"
)

type GoalService struct {
	sipService *SIPService
}

func NewGoalService(sipService *SIPService) *GoalService {
	return &GoalService{sipService: sipService}
}

// Plan inverts the projection: the monthly contribution required to reach
// the target amount at the given rate and duration.
func (s *GoalService) Plan(input domain.GoalInput) (domain.GoalResult, error) {

	// Validaciones
	if input.TargetAmount <= 0 {
		return domain.GoalResult{}, errors.New("monto objetivo inválido")
	}
	if input.TargetAmount > MaxTargetAmount {
		return domain.GoalResult{}, fmt.Errorf("monto objetivo excede el máximo permitido de $%.2f", MaxTargetAmount)
	}
	if input.AnnualRatePercent < 0 {
		return domain.GoalResult{}, errors.New("tasa inválida")
	}
	if input.AnnualRatePercent > MaxAnnualRate {
		return domain.GoalResult{}, fmt.Errorf("tasa excede el máximo permitido de %.2f%%", MaxAnnualRate)
	}
	if input.Years <= 0 {
		return domain.GoalResult{}, errors.New("plazo inválido")
	}
	if input.Years > MaxGoalYears {
		return domain.GoalResult{}, fmt.Errorf("plazo excede el máximo permitido de %.0f años", MaxGoalYears)
	}

	n := input.Years * 12
	i := (input.AnnualRatePercent / 100) / 12

	var monthly float64
	if i == 0 {
		monthly = input.TargetAmount / n
	} else {
		factor := ((math.Pow(1+i, n) - 1) / i) * (1 + i)
		monthly = input.TargetAmount / factor
	}

	// Proyectar con el aporte calculado para obtener el desglose
	result := s.sipService.Compute(domain.SIPInput{
		MonthlyContribution: monthly,
		AnnualRatePercent:   input.AnnualRatePercent,
		Years:               input.Years,
	})

	return domain.GoalResult{
		RequiredMonthlyContribution: monthly,
		TotalContributed:            result.TotalContributed,
		TotalGrowth:                 result.TotalGrowth,
	}, nil
}
