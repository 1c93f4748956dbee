package pricing

import (
	"errors"
	"math"
)

const (
	// MinWeightKg is the acceptance threshold enforced at order creation.
	// The engine itself prices any positive weight.
	MinWeightKg = 10.0

	ecoPointsStepKg = 10.0
	ecoPointsPer    = 200
)

var (
	ErrUnknownCategory = errors.New("unknown waste category")
	ErrUnknownSubtype  = errors.New("unknown waste subtype")
	// ErrRateNotConfigured means the catalog names the subtype but no valid
	// rate row exists for it. A data defect, not a caller error.
	ErrRateNotConfigured = errors.New("pricing rate not configured")
)

// Quote is the deterministic pricing result for one submission.
type Quote struct {
	MinEarning float64
	MaxEarning float64
	EcoPoints  int
	Unit       Unit
}

// Estimate prices a validated (category, subtype, weight) triple. Pure
// function: same inputs always produce the same quote. Per-kilogram subtypes
// scale linearly with weight; per-item subtypes pay the flat rate once.
func Estimate(category Category, subtype Subtype, weightKg float64) (*Quote, error) {
	if _, ok := catalog[category]; !ok {
		return nil, ErrUnknownCategory
	}
	if !IsKnown(category, subtype) {
		return nil, ErrUnknownSubtype
	}
	rate, ok := rates[subtype]
	if !ok || rate.Min < 0 || rate.Max < rate.Min {
		return nil, ErrRateNotConfigured
	}

	multiplier := 1.0
	if rate.Unit == PerKilogram {
		multiplier = weightKg
	}

	return &Quote{
		MinEarning: rate.Min * multiplier,
		MaxEarning: rate.Max * multiplier,
		EcoPoints:  EcoPoints(weightKg),
		Unit:       rate.Unit,
	}, nil
}

// EcoPoints awards 200 points per complete 10 kg increment, independent of
// category and rate.
func EcoPoints(weightKg float64) int {
	if weightKg <= 0 {
		return 0
	}
	return int(math.Floor(weightKg/ecoPointsStepKg)) * ecoPointsPer
}

// RewardAmount resolves the single persisted reward figure for a quote: the
// midpoint of the earning range for monetary kinds, the point total otherwise.
func (q *Quote) RewardAmount(ecoPointsKind bool) float64 {
	if ecoPointsKind {
		return float64(q.EcoPoints)
	}
	return (q.MinEarning + q.MaxEarning) / 2
}
