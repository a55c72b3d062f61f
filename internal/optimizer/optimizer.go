package optimizer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eugenenazirov/freight-optimizer/internal/containers"
)

// Shipments strictly below both LCL limits are consolidated.
var (
	lclMaxVolumeCBM = decimal.NewFromInt(25)
	lclMaxWeightKg  = decimal.NewFromInt(10000)
)

// A full container is "near its limit" above 95% of the per-unit weight ceiling.
var (
	fclUnitWeightLimitKg = decimal.NewFromInt(27000)
	nearLimitRatio       = decimal.New(95, -2)
	nearLimitWeightKg    = fclUnitWeightLimitKg.Mul(nearLimitRatio)
)

// Scoring heuristic. These weights are hand tuned rather than derived from a
// cost model; replacing them with per-unit freight costs would change the
// recommendations at the boundaries.
var (
	unitPenalty         = decimal.NewFromInt(20)
	undersizedPenalty   = decimal.NewFromInt(-100)
	bulkyCargoCBM       = decimal.NewFromInt(60)
	bulkyHighCubeFactor = decimal.New(7, -1)
	heavyCargoKg        = decimal.NewFromInt(25000)
	heavyTwinFactor     = decimal.New(8, -1)
	heavyTwinMaxUnits   = 2
)

const (
	lclRecommendation = "LCL (Less than Container Load)"
	lclDistribution   = "Cargo will be consolidated with other shipments in a shared container."
	lclPricingNote    = "LCL is priced on a W/M basis: the freight charge uses volume or weight, whichever is greater."
)

// Input bounds. Any value at or above 10^maxExponent already needs more than
// MaxUnitsPerType units of every catalog container.
const (
	MaxDecimalPlaces = 6
	MaxUnitsPerType  = 1_000_000
	maxExponent      = 12
)

type heuristicOptimizer struct {
	specs []containers.Spec
}

// New creates an Optimizer that scores every catalog container type.
func New() Optimizer {
	return &heuristicOptimizer{specs: containers.All()}
}

func (o *heuristicOptimizer) Optimize(volume, weight decimal.Decimal) (Result, error) {
	result, _, err := o.optimize(volume, weight)
	return result, err
}

func (o *heuristicOptimizer) OptimizeWithCandidates(volume, weight decimal.Decimal) (Result, []Candidate, error) {
	return o.optimize(volume, weight)
}

func (o *heuristicOptimizer) Candidates(volume, weight decimal.Decimal) ([]Candidate, error) {
	if err := o.validate(volume, weight); err != nil {
		return nil, err
	}
	return o.score(volume, weight), nil
}

// optimize returns the recommendation and, for FCL shipments, the scored
// candidates it was chosen from.
func (o *heuristicOptimizer) optimize(volume, weight decimal.Decimal) (Result, []Candidate, error) {
	if err := o.validate(volume, weight); err != nil {
		return Result{}, nil, err
	}
	if isLCL(volume, weight) {
		return lclResult(volume, weight), nil, nil
	}

	candidates := o.score(volume, weight)
	i := bestIndex(candidates)
	return fclResult(volume, weight, o.specs[i], candidates[i].Evaluation), candidates, nil
}

func (o *heuristicOptimizer) score(volume, weight decimal.Decimal) []Candidate {
	candidates := make([]Candidate, 0, len(o.specs))
	for _, spec := range o.specs {
		eval := Evaluate(volume, weight, spec)
		candidates = append(candidates, Candidate{
			Evaluation: eval,
			Score:      scoreEvaluation(volume, weight, eval),
		})
	}
	return candidates
}

// bestIndex returns the position of the lowest score; on a tie the earlier
// catalog entry wins.
func bestIndex(candidates []Candidate) int {
	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Score.LessThan(candidates[best].Score) {
			best = i
		}
	}
	return best
}

func scoreEvaluation(volume, weight decimal.Decimal, eval Evaluation) decimal.Decimal {
	waste := eval.TotalCapacityVolumeCBM.Sub(volume)
	if waste.IsNegative() {
		return waste.Mul(undersizedPenalty)
	}

	score := waste.Add(unitPenalty.Mul(decimal.NewFromInt(int64(eval.UnitCount))))
	switch {
	case volume.GreaterThan(bulkyCargoCBM) && eval.ContainerCode == containers.Code40HC:
		score = score.Mul(bulkyHighCubeFactor)
	case weight.GreaterThan(heavyCargoKg) && eval.ContainerCode == containers.Code20GP && eval.UnitCount <= heavyTwinMaxUnits:
		score = score.Mul(heavyTwinFactor)
	}
	return score
}

// validate checks the exponent before anything that formats or rescales the
// value, since both cost time proportional to the exponent.
func (o *heuristicOptimizer) validate(volume, weight decimal.Decimal) error {
	if err := checkScale("volume", volume); err != nil {
		return err
	}
	if err := checkScale("weight", weight); err != nil {
		return err
	}
	if !volume.IsPositive() {
		return fmt.Errorf("%w: volume %s CBM", ErrInvalidArgument, volume)
	}
	if !weight.IsPositive() {
		return fmt.Errorf("%w: weight %s kg", ErrInvalidArgument, weight)
	}

	limit := decimal.NewFromInt(MaxUnitsPerType)
	for _, spec := range o.specs {
		if volume.GreaterThan(spec.MaxVolumeCBM.Mul(limit)) {
			return fmt.Errorf("%w: volume exceeds supported size of %d x %s", ErrInvalidArgument, MaxUnitsPerType, spec.ShortName)
		}
		if weight.GreaterThan(spec.MaxWeightKg.Mul(limit)) {
			return fmt.Errorf("%w: weight exceeds supported size of %d x %s", ErrInvalidArgument, MaxUnitsPerType, spec.ShortName)
		}
	}
	return nil
}

func checkScale(name string, value decimal.Decimal) error {
	exp := value.Exponent()
	if exp < -MaxDecimalPlaces {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidArgument, name, MaxDecimalPlaces)
	}
	if exp > maxExponent {
		return fmt.Errorf("%w: %s exceeds supported size", ErrInvalidArgument, name)
	}
	return nil
}

func isLCL(volume, weight decimal.Decimal) bool {
	return volume.LessThan(lclMaxVolumeCBM) && weight.LessThan(lclMaxWeightKg)
}

func lclResult(volume, weight decimal.Decimal) Result {
	reasoning := fmt.Sprintf(
		"Volume of %s CBM is below the %s CBM LCL limit and weight of %s kg is below the %s kg LCL limit, so consolidated shipping is the most economical option.",
		volume, lclMaxVolumeCBM, weight, lclMaxWeightKg,
	)
	return Result{
		PrimaryRecommendation: lclRecommendation,
		UnitCount:             1,
		ContainerTypeCode:     containers.CodeLCL,
		Reasoning:             reasoning,
		SuggestedDistribution: lclDistribution,
		TotalVolumeCBM:        volume,
		TotalWeightKg:         weight,
		IsLCL:                 true,
		AdditionalDetail:      lclPricingNote,
	}
}

func fclResult(volume, weight decimal.Decimal, spec containers.Spec, eval Evaluation) Result {
	units := decimal.NewFromInt(int64(eval.UnitCount))
	weightPerUnit := weight.Div(units)
	nearLimit := weightPerUnit.GreaterThan(nearLimitWeightKg)

	reasons := []string{
		fmt.Sprintf("Cargo of %s CBM and %s kg exceeds the LCL limits (%s CBM / %s kg).",
			volume, weight, lclMaxVolumeCBM, lclMaxWeightKg),
		unitsReason(volume, weight, spec, eval.UnitCount),
	}
	if nearLimit {
		reasons = append(reasons, fmt.Sprintf(
			"Warning: %s kg per unit is close to the %s kg container weight limit; confirm the cargo weight before booking.",
			weightPerUnit.Round(1), fclUnitWeightLimitKg,
		))
	}
	reasons = append(reasons, fmt.Sprintf("Volume utilization: %s%%, weight utilization: %s%%.",
		eval.VolumeUtilizationPct.StringFixed(1), eval.WeightUtilizationPct.StringFixed(1)))

	recommendation := spec.FullName
	distribution := fmt.Sprintf("Load all cargo into 1 x %s.", spec.ShortName)
	if eval.UnitCount > 1 {
		recommendation = fmt.Sprintf("%d x %s", eval.UnitCount, spec.ShortName)
		distribution = fmt.Sprintf("Split across %d x %s: approximately %s CBM and %s kg per unit.",
			eval.UnitCount, spec.ShortName, volume.Div(units).Round(1), weightPerUnit.Round(1))
	}

	return Result{
		PrimaryRecommendation:  recommendation,
		UnitCount:              eval.UnitCount,
		ContainerTypeCode:      spec.Code,
		Reasoning:              strings.Join(reasons, " "),
		NearWeightLimitWarning: nearLimit,
		SuggestedDistribution:  distribution,
		TotalVolumeCBM:         volume,
		TotalWeightKg:          weight,
	}
}

// unitsReason explains which limit determined the unit count.
func unitsReason(volume, weight decimal.Decimal, spec containers.Spec, count int) string {
	if count == 1 {
		return fmt.Sprintf("A single %s holds up to %s CBM and %s kg, enough for the whole shipment.",
			spec.ShortName, spec.MaxVolumeCBM, spec.MaxWeightKg)
	}
	if ceilUnits(weight, spec.MaxWeightKg) >= ceilUnits(volume, spec.MaxVolumeCBM) {
		return fmt.Sprintf("%d units of %s are needed because each unit carries at most %s kg.",
			count, spec.ShortName, spec.MaxWeightKg)
	}
	return fmt.Sprintf("%d units of %s are needed because each unit holds at most %s CBM.",
		count, spec.ShortName, spec.MaxVolumeCBM)
}
