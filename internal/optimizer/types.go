package optimizer

import "github.com/shopspring/decimal"

// Evaluation captures how a shipment fits into a single container type.
type Evaluation struct {
	ContainerCode          string          `json:"containerCode"`
	UnitCount              int             `json:"unitCount"`
	TotalCapacityVolumeCBM decimal.Decimal `json:"totalCapacityVolumeCbm"`
	TotalCapacityWeightKg  decimal.Decimal `json:"totalCapacityWeightKg"`
	VolumeUtilizationPct   decimal.Decimal `json:"volumeUtilizationPct"`
	WeightUtilizationPct   decimal.Decimal `json:"weightUtilizationPct"`
	WastedVolumeCBM        decimal.Decimal `json:"wastedVolumeCbm"`
	WeightPerUnitKg        decimal.Decimal `json:"weightPerUnitKg"`
}

// Candidate is an Evaluation together with the heuristic score it received.
// Lower scores are better.
type Candidate struct {
	Evaluation
	Score decimal.Decimal `json:"score"`
}

// Result is the recommendation returned by Optimize.
// When IsLCL is true UnitCount is 1 and ContainerTypeCode is "LCL"; otherwise
// ContainerTypeCode names a catalog entry.
type Result struct {
	PrimaryRecommendation  string          `json:"primaryRecommendation"`
	UnitCount              int             `json:"unitCount"`
	ContainerTypeCode      string          `json:"containerTypeCode"`
	Reasoning              string          `json:"reasoning"`
	NearWeightLimitWarning bool            `json:"nearWeightLimitWarning"`
	SuggestedDistribution  string          `json:"suggestedDistribution"`
	TotalVolumeCBM         decimal.Decimal `json:"totalVolumeCbm"`
	TotalWeightKg          decimal.Decimal `json:"totalWeightKg"`
	IsLCL                  bool            `json:"isLcl"`
	AdditionalDetail       string          `json:"additionalDetail,omitempty"`
}

// Fields returns the result as a map keyed by the JSON field names, for
// callers that serialise into formats other than JSON.
func (r Result) Fields() map[string]any {
	fields := map[string]any{
		"primaryRecommendation":  r.PrimaryRecommendation,
		"unitCount":              r.UnitCount,
		"containerTypeCode":      r.ContainerTypeCode,
		"reasoning":              r.Reasoning,
		"nearWeightLimitWarning": r.NearWeightLimitWarning,
		"suggestedDistribution":  r.SuggestedDistribution,
		"totalVolumeCbm":         r.TotalVolumeCBM.String(),
		"totalWeightKg":          r.TotalWeightKg.String(),
		"isLcl":                  r.IsLCL,
	}
	if r.AdditionalDetail != "" {
		fields["additionalDetail"] = r.AdditionalDetail
	}
	return fields
}

// Optimizer describes the behaviour required from a container allocation optimizer.
type Optimizer interface {
	// Optimize recommends LCL or a container type and count for the shipment.
	Optimize(volume, weight decimal.Decimal) (Result, error)
	// OptimizeWithCandidates is Optimize that also returns the scored catalog
	// entries the recommendation was chosen from. Candidates are nil for LCL.
	OptimizeWithCandidates(volume, weight decimal.Decimal) (Result, []Candidate, error)
	// Candidates scores every catalog entry for the shipment, in catalog order.
	Candidates(volume, weight decimal.Decimal) ([]Candidate, error)
}
