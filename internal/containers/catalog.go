package containers

import "github.com/shopspring/decimal"

// Container type codes. Other packages refer to container types through these
// constants only.
const (
	CodeLCL  = "LCL"
	Code20GP = "20GP"
	Code40GP = "40GP"
	Code40HC = "40HC"
)

// Spec describes the cargo limits of a single container unit.
type Spec struct {
	Code         string          `json:"code"`
	FullName     string          `json:"fullName"`
	ShortName    string          `json:"shortName"`
	MaxVolumeCBM decimal.Decimal `json:"maxVolumeCbm"`
	MaxWeightKg  decimal.Decimal `json:"maxWeightKg"`
}

var catalog = []Spec{
	{
		Code:         Code20GP,
		FullName:     "1 x 20' General Purpose",
		ShortName:    "20' GP",
		MaxVolumeCBM: decimal.NewFromInt(30),
		MaxWeightKg:  decimal.NewFromInt(27000),
	},
	{
		Code:         Code40GP,
		FullName:     "1 x 40' General Purpose",
		ShortName:    "40' GP",
		MaxVolumeCBM: decimal.NewFromInt(62),
		MaxWeightKg:  decimal.NewFromInt(27000),
	},
	{
		Code:         Code40HC,
		FullName:     "1 x 40' High Cube",
		ShortName:    "40' HC",
		MaxVolumeCBM: decimal.NewFromInt(68),
		MaxWeightKg:  decimal.NewFromInt(27000),
	},
}

// All returns a copy of the catalog in its canonical order (20GP, 40GP, 40HC).
func All() []Spec {
	out := make([]Spec, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the spec registered under code.
func Lookup(code string) (Spec, bool) {
	for _, spec := range catalog {
		if spec.Code == code {
			return spec, true
		}
	}
	return Spec{}, false
}

// Codes returns the container codes in catalog order.
func Codes() []string {
	codes := make([]string, 0, len(catalog))
	for _, spec := range catalog {
		codes = append(codes, spec.Code)
	}
	return codes
}
