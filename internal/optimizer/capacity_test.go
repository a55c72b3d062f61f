package optimizer

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/eugenenazirov/freight-optimizer/internal/containers"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustSpec(t testing.TB, code string) containers.Spec {
	t.Helper()

	spec, ok := containers.Lookup(code)
	if !ok {
		t.Fatalf("container %s missing from catalog", code)
	}
	return spec
}

func TestUnitsNeeded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		volume string
		weight string
		code   string
		want   int
	}{
		{name: "VolumeExactlyAtCapacity", volume: "30.0", weight: "100", code: containers.Code20GP, want: 1},
		{name: "VolumeMarginallyOverCapacity", volume: "30.01", weight: "100", code: containers.Code20GP, want: 2},
		{name: "WeightExactlyAtCapacity", volume: "10", weight: "27000", code: containers.Code20GP, want: 1},
		{name: "WeightMarginallyOverCapacity", volume: "10", weight: "27000.001", code: containers.Code20GP, want: 2},
		{name: "TinyCargoStillNeedsOneUnit", volume: "0.5", weight: "0.5", code: containers.Code40HC, want: 1},
		{name: "VolumeBound", volume: "150", weight: "40000", code: containers.Code40HC, want: 3},
		{name: "WeightBound", volume: "45", weight: "50000", code: containers.Code40GP, want: 2},
		{name: "BothExactMultiples", volume: "60", weight: "54000", code: containers.Code20GP, want: 2},
		{name: "ExcessBeyondDivisionPrecision", volume: "62.0000000000000000001", weight: "1", code: containers.Code40GP, want: 2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := UnitsNeeded(dec(tc.volume), dec(tc.weight), mustSpec(t, tc.code))
			if got != tc.want {
				t.Fatalf("UnitsNeeded(%s, %s, %s) = %d, want %d", tc.volume, tc.weight, tc.code, got, tc.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		volume        string
		weight        string
		code          string
		wantUnits     int
		wantVolumeCap string
		wantWeightCap string
		wantVolumePct string
		wantWeightPct string
		wantWasted    string
		wantPerUnit   string
	}{
		{
			name:          "TwoTwentyFootUnits",
			volume:        "35",
			weight:        "12000",
			code:          containers.Code20GP,
			wantUnits:     2,
			wantVolumeCap: "60",
			wantWeightCap: "54000",
			wantVolumePct: "58.3",
			wantWeightPct: "22.2",
			wantWasted:    "25",
			wantPerUnit:   "6000",
		},
		{
			name:          "WeightDrivenFortyFoot",
			volume:        "45",
			weight:        "50000",
			code:          containers.Code40GP,
			wantUnits:     2,
			wantVolumeCap: "124",
			wantWeightCap: "54000",
			wantVolumePct: "36.3",
			wantWeightPct: "92.6",
			wantWasted:    "79",
			wantPerUnit:   "25000",
		},
		{
			name:          "PercentageRoundsHalfUp",
			volume:        "26.475",
			weight:        "10000",
			code:          containers.Code20GP,
			wantUnits:     1,
			wantVolumeCap: "30",
			wantWeightCap: "27000",
			wantVolumePct: "88.3",
			wantWeightPct: "37",
			wantWasted:    "3.525",
			wantPerUnit:   "10000",
		},
		{
			name:          "PerUnitWeightRoundsHalfUp",
			volume:        "31",
			weight:        "40000.1",
			code:          containers.Code20GP,
			wantUnits:     2,
			wantVolumeCap: "60",
			wantWeightCap: "54000",
			wantVolumePct: "51.7",
			wantWeightPct: "74.1",
			wantWasted:    "29",
			wantPerUnit:   "20000.1",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Evaluate(dec(tc.volume), dec(tc.weight), mustSpec(t, tc.code))

			if got.ContainerCode != tc.code {
				t.Fatalf("expected container %s, got %s", tc.code, got.ContainerCode)
			}
			if got.UnitCount != tc.wantUnits {
				t.Fatalf("expected %d units, got %d", tc.wantUnits, got.UnitCount)
			}
			assertDecimal(t, "total volume capacity", got.TotalCapacityVolumeCBM, tc.wantVolumeCap)
			assertDecimal(t, "total weight capacity", got.TotalCapacityWeightKg, tc.wantWeightCap)
			assertDecimal(t, "volume utilization", got.VolumeUtilizationPct, tc.wantVolumePct)
			assertDecimal(t, "weight utilization", got.WeightUtilizationPct, tc.wantWeightPct)
			assertDecimal(t, "wasted volume", got.WastedVolumeCBM, tc.wantWasted)
			assertDecimal(t, "weight per unit", got.WeightPerUnitKg, tc.wantPerUnit)
		})
	}
}

func TestEvaluateNeverWastesNegativeVolume(t *testing.T) {
	t.Parallel()

	step := dec("0.37")
	for _, spec := range containers.All() {
		for volume := dec("0.01"); volume.LessThan(dec("250")); volume = volume.Add(step) {
			eval := Evaluate(volume, dec("1000"), spec)
			if eval.WastedVolumeCBM.IsNegative() {
				t.Fatalf("negative waste %s for %s CBM in %s", eval.WastedVolumeCBM, volume, spec.Code)
			}
			if eval.TotalCapacityVolumeCBM.LessThan(volume) {
				t.Fatalf("capacity %s below cargo %s in %s", eval.TotalCapacityVolumeCBM, volume, spec.Code)
			}
		}
	}
}

func assertDecimal(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()

	if !got.Equal(dec(want)) {
		t.Fatalf("expected %s %s, got %s", field, want, got)
	}
}
