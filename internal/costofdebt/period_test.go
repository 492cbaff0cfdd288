package costofdebt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPeriod(t *testing.T) {
	cfg := DefaultIndexerConfig()

	tests := []struct {
		name     string
		input    string
		expected Period
	}{
		{"annual abbreviation", "CDI + 1,5% a.a.", PeriodAnnual},
		{"annual spelled out", "CDI + 1,5% ao ano", PeriodAnnual},
		{"monthly abbreviation", "CDI + 0,45% a.m.", PeriodMonthly},
		{"monthly spelled out", "1% ao mês", PeriodMonthly},
		{"mensal keyword", "taxa mensal de 1%", PeriodMonthly},
		{"no marker defaults to annual", "CDI + 1,5%", PeriodAnnual},
		{"empty defaults to annual", "", PeriodAnnual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.DetectPeriod(tt.input))
		})
	}
}

func TestToAnnual(t *testing.T) {
	tests := []struct {
		name     string
		monthly  float64
		expected float64
	}{
		{"one percent monthly", 0.01, 0.126825},
		{"zero stays zero", 0, 0},
		{"half percent monthly", 0.005, math.Pow(1.005, 12) - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ToAnnual(tt.monthly), 1e-6)
		})
	}
}

// Compound annualization must exceed linear scaling for any positive
// rate; using r*12 would systematically understate the cost of debt.
func TestToAnnualExceedsLinear(t *testing.T) {
	for _, monthly := range []float64{0.001, 0.01, 0.02, 0.05} {
		assert.Greater(t, ToAnnual(monthly), monthly*12)
	}
}
