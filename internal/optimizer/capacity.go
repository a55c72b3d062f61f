package optimizer

import (
	"github.com/shopspring/decimal"

	"github.com/eugenenazirov/freight-optimizer/internal/containers"
)

var hundred = decimal.NewFromInt(100)

// UnitsNeeded returns how many units of spec are required to carry the cargo.
// Any fractional excess over a unit's volume or weight limit requires another
// unit; the result is never below one. Inputs are expected within the bounds
// Optimize enforces, which keep the count well inside int range.
func UnitsNeeded(volume, weight decimal.Decimal, spec containers.Spec) int {
	byVolume := ceilUnits(volume, spec.MaxVolumeCBM)
	byWeight := ceilUnits(weight, spec.MaxWeightKg)
	return max(byVolume, byWeight, 1)
}

// Evaluate computes the unit count and the resulting capacity, utilisation and
// waste figures for carrying the cargo in units of spec.
func Evaluate(volume, weight decimal.Decimal, spec containers.Spec) Evaluation {
	count := UnitsNeeded(volume, weight, spec)
	units := decimal.NewFromInt(int64(count))

	totalVolume := spec.MaxVolumeCBM.Mul(units)
	totalWeight := spec.MaxWeightKg.Mul(units)

	return Evaluation{
		ContainerCode:          spec.Code,
		UnitCount:              count,
		TotalCapacityVolumeCBM: totalVolume,
		TotalCapacityWeightKg:  totalWeight,
		VolumeUtilizationPct:   percentOf(volume, totalVolume),
		WeightUtilizationPct:   percentOf(weight, totalWeight),
		WastedVolumeCBM:        totalVolume.Sub(volume),
		WeightPerUnitKg:        weight.Div(units).Round(1),
	}
}

// ceilUnits returns ceil(amount/capacity). The quotient is checked by
// multiplication because Div rounds to DivisionPrecision digits.
func ceilUnits(amount, capacity decimal.Decimal) int {
	units := amount.Div(capacity).Ceil()
	for units.Mul(capacity).LessThan(amount) {
		units = units.Add(decimal.NewFromInt(1))
	}
	return int(units.IntPart())
}

func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	return part.Div(whole).Mul(hundred).Round(1)
}
