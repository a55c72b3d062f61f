package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/eugenenazirov/freight-optimizer/internal/optimizer"
)

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--volume", "35", "--weight", "12000"}, &out); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	text := out.String()
	for _, want := range []string{"1 x 40' General Purpose", "40GP", "Volume utilization"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, text)
		}
	}
	if strings.Contains(text, "SCORE") {
		t.Fatalf("did not expect alternatives table without --alternatives")
	}
}

func TestRunTextWithAlternativesAndWarning(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--volume=50", "--weight=52000", "--alternatives"}, &out); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	text := out.String()
	for _, want := range []string{"2 x 20' GP", "Weight warning", "SCORE", "20GP", "40GP", "40HC"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, text)
		}
	}
}

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--volume", "15", "--weight", "5000", "--format", "json"}, &out); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	var body struct {
		Result optimizer.Result `json:"result"`
	}
	if err := json.Unmarshal(out.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if !body.Result.IsLCL || body.Result.ContainerTypeCode != "LCL" {
		t.Fatalf("expected LCL result, got %+v", body.Result)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{name: "MissingWeight", args: []string{"--volume", "10"}},
		{name: "BadVolume", args: []string{"--volume", "ten", "--weight", "100"}},
		{name: "BadFormat", args: []string{"--volume", "10", "--weight", "100", "--format", "xml"}},
		{name: "ZeroVolume", args: []string{"--volume", "0", "--weight", "100"}, is: optimizer.ErrInvalidArgument},
		{name: "OversizedVolume", args: []string{"--volume", "1e21", "--weight", "1000"}, is: optimizer.ErrInvalidArgument},
		{name: "TooManyDecimals", args: []string{"--volume", "30e-200000", "--weight", "12000"}, is: optimizer.ErrInvalidArgument},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tc.args, &out)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.is != nil && !errors.Is(err, tc.is) {
				t.Fatalf("expected %v, got %v", tc.is, err)
			}
		})
	}
}
