package service

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	"sip-agent/domain"
	"sip-agent/repository"
)

type SIPService struct {
	cache repository.CacheRepository
}

// NewSIPService creates a new SIPService backed by the given result cache.
func NewSIPService(cache repository.CacheRepository) *SIPService {
	return &SIPService{cache: cache}
}

// Compute projects the future value of a monthly contribution invested at an
// annual rate for a number of years.
//
// Compute is a total function: any non-finite input, a negative contribution
// or a non-positive duration yields the zero result instead of an error. The
// result keeps full float64 precision; display rounding is the caller's
// concern.
func (s *SIPService) Compute(input domain.SIPInput) domain.SIPResult {
	if !validSIPInput(input) {
		return domain.SIPResult{}
	}

	key := cacheKey(input)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			var result domain.SIPResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result
			}
		}
	}

	fv := futureValue(input.MonthlyContribution, input.AnnualRatePercent, input.Years)
	contributed := input.MonthlyContribution * input.Years * 12

	result := domain.SIPResult{
		FutureValue:      fv,
		TotalContributed: contributed,
		TotalGrowth:      fv - contributed,
	}

	// Cachear el resultado (no crítico si falla)
	if s.cache != nil {
		if encoded, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(encoded)); err != nil {
				log.Printf("Warning: failed to cache sip result: %v", err)
			}
		}
	}

	return result
}

// futureValue is the future value of a monthly annuity with the annuity-due
// multiplier: each contribution compounds from the start of its period.
func futureValue(monthly, annualRatePercent, years float64) float64 {
	n := years * 12
	i := (annualRatePercent / 100) / 12

	// tasa cero: sin crecimiento, evita división por cero
	if i == 0 {
		return monthly * n
	}

	return monthly * ((math.Pow(1+i, n) - 1) / i) * (1 + i)
}

func validSIPInput(input domain.SIPInput) bool {
	for _, v := range []float64{
		input.MonthlyContribution,
		input.AnnualRatePercent,
		input.Years,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if input.MonthlyContribution < 0 {
		return false
	}
	if input.Years <= 0 {
		return false
	}
	return true
}

func cacheKey(input domain.SIPInput) string {
	return fmt.Sprintf("sip:%g:%g:%g",
		input.MonthlyContribution,
		input.AnnualRatePercent,
		input.Years,
	)
}
