package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kingpin/v2"
	"github.com/shopspring/decimal"

	"github.com/eugenenazirov/freight-optimizer/internal/optimizer"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "optimize: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	app := kingpin.New("optimize", "Recommend LCL or a container allocation for a single shipment")
	app.UsageWriter(out)
	app.ErrorWriter(out)
	volumeFlag := app.Flag("volume", "Total cargo volume in cubic meters").Required().String()
	weightFlag := app.Flag("weight", "Total cargo weight in kilograms").Required().String()
	format := app.Flag("format", "Output format").Default("text").Enum("text", "json")
	showAlternatives := app.Flag("alternatives", "Show how every container type scored").Bool()

	if _, err := app.Parse(args); err != nil {
		return err
	}

	volume, err := decimal.NewFromString(*volumeFlag)
	if err != nil {
		return fmt.Errorf("parse volume %q: %w", *volumeFlag, err)
	}
	weight, err := decimal.NewFromString(*weightFlag)
	if err != nil {
		return fmt.Errorf("parse weight %q: %w", *weightFlag, err)
	}

	result, alternatives, err := optimizer.New().OptimizeWithCandidates(volume, weight)
	if err != nil {
		return err
	}
	if !*showAlternatives {
		alternatives = nil
	}

	if *format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Result       optimizer.Result      `json:"result"`
			Alternatives []optimizer.Candidate `json:"alternatives,omitempty"`
		}{result, alternatives})
	}
	return writeText(out, result, alternatives)
}

func writeText(out io.Writer, result optimizer.Result, alternatives []optimizer.Candidate) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Recommendation:\t%s\n", result.PrimaryRecommendation)
	fmt.Fprintf(tw, "Container type:\t%s\n", result.ContainerTypeCode)
	fmt.Fprintf(tw, "Units:\t%d\n", result.UnitCount)
	fmt.Fprintf(tw, "Distribution:\t%s\n", result.SuggestedDistribution)
	fmt.Fprintf(tw, "Reasoning:\t%s\n", result.Reasoning)
	if result.AdditionalDetail != "" {
		fmt.Fprintf(tw, "Note:\t%s\n", result.AdditionalDetail)
	}
	if result.NearWeightLimitWarning {
		fmt.Fprintf(tw, "Weight warning:\tper-unit weight is close to the container limit\n")
	}

	if len(alternatives) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "TYPE\tUNITS\tVOLUME %\tWEIGHT %\tWASTED CBM\tSCORE")
		for _, c := range alternatives {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
				c.ContainerCode, c.UnitCount,
				c.VolumeUtilizationPct.StringFixed(1), c.WeightUtilizationPct.StringFixed(1),
				c.WastedVolumeCBM, c.Score.StringFixed(1))
		}
	}
	return tw.Flush()
}
