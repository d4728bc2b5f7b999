package service

import (
	"errors"
	"fmt"

	"sip-agent/domain"
)

type GrowthService struct {
	sipService *SIPService
}

func NewGrowthService(sipService *SIPService) *GrowthService {
	return &GrowthService{sipService: sipService}
}

// BuildSchedule projects the balance at the end of every year of the plan,
// plus the final contributed-vs-growth percentage split.
func (s *GrowthService) BuildSchedule(
	input domain.GrowthScheduleInput,
) (domain.GrowthScheduleResult, error) {

	// Validaciones
	if input.MonthlyContribution <= 0 {
		return domain.GrowthScheduleResult{}, errors.New("aporte mensual inválido")
	}
	if input.MonthlyContribution > MaxMonthlyContribution {
		return domain.GrowthScheduleResult{}, fmt.Errorf("aporte excede el máximo permitido de $%.2f", MaxMonthlyContribution)
	}
	if input.AnnualRatePercent < 0 {
		return domain.GrowthScheduleResult{}, errors.New("tasa inválida")
	}
	if input.AnnualRatePercent > MaxAnnualRate {
		return domain.GrowthScheduleResult{}, fmt.Errorf("tasa excede el máximo permitido de %.2f%%", MaxAnnualRate)
	}
	if input.Years <= 0 {
		return domain.GrowthScheduleResult{}, errors.New("plazo inválido")
	}
	if input.Years > MaxScheduleYears {
		return domain.GrowthScheduleResult{}, fmt.Errorf("plazo excede el máximo permitido de %d años", MaxScheduleYears)
	}

	schedule := []domain.YearProjection{}

	for year := 1; year <= input.Years; year++ {
		result := s.sipService.Compute(domain.SIPInput{
			MonthlyContribution: input.MonthlyContribution,
			AnnualRatePercent:   input.AnnualRatePercent,
			Years:               float64(year),
		})

		schedule = append(schedule, domain.YearProjection{
			Year:             year,
			FutureValue:      result.FutureValue,
			TotalContributed: result.TotalContributed,
			TotalGrowth:      result.TotalGrowth,
		})
	}

	final := schedule[len(schedule)-1]

	var contributedPct, growthPct float64
	if final.FutureValue > 0 {
		contributedPct = final.TotalContributed / final.FutureValue * 100
		growthPct = final.TotalGrowth / final.FutureValue * 100
	}

	return domain.GrowthScheduleResult{
		Schedule:       schedule,
		ContributedPct: contributedPct,
		GrowthPct:      growthPct,
	}, nil
}
