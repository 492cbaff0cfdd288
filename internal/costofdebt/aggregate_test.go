package costofdebt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weighableLine(company string, index IndexID, kdPercent, value float64) LineResult {
	return LineResult{
		Company:       company,
		FinancingType: "debenture",
		DeclaredValue: value,
		HasValue:      value > 0,
		Classified:    ClassifiedIndexer{Index: index, Identified: true},
		Validation: ValidationResult{
			ComputedKd: ComputedKd{
				Kd:        kdPercent / 100,
				KdPercent: kdPercent,
				HasKd:     true,
				InRange:   true,
			},
		},
	}
}

func TestAggregateWeightedKd(t *testing.T) {
	lines := []LineResult{
		weighableLine("ACME", IndexCDI, 10, 100),
		weighableLine("ACME", IndexIPCA, 12, 200),
		weighableLine("ACME", IndexTLP, 14, 300),
	}

	aggregates := Aggregate(lines)
	require.Len(t, aggregates, 1)

	agg := aggregates[0]
	assert.Equal(t, "ACME", agg.Company)
	assert.InDelta(t, 12.67, agg.WeightedKd, 0.01)
	assert.InDelta(t, 12.0, agg.MeanKd, 1e-9)
	assert.InDelta(t, 10.0, agg.MinKd, 1e-9)
	assert.InDelta(t, 14.0, agg.MaxKd, 1e-9)
	assert.Equal(t, 3, agg.LineCount)
	assert.Equal(t, 3, agg.DistinctIndexes)
	assert.Equal(t, 1, agg.DistinctTypes)
	assert.InDelta(t, 600, agg.TotalValue, 1e-9)
	assert.InDelta(t, 200, agg.MeanValue, 1e-9)
	assert.ElementsMatch(t, []string{"CDI", "IPCA", "TLP"}, agg.IndexesUsed)
}

func TestAggregateStdDev(t *testing.T) {
	t.Run("single line has zero stddev", func(t *testing.T) {
		aggregates := Aggregate([]LineResult{weighableLine("ACME", IndexCDI, 10, 100)})
		require.Len(t, aggregates, 1)
		assert.Zero(t, aggregates[0].StdDevKd)
	})

	t.Run("sample stddev for multiple lines", func(t *testing.T) {
		aggregates := Aggregate([]LineResult{
			weighableLine("ACME", IndexCDI, 10, 100),
			weighableLine("ACME", IndexCDI, 14, 100),
		})
		require.Len(t, aggregates, 1)
		// Sample stddev of {10, 14} is 2*sqrt(2).
		assert.InDelta(t, 2.8284, aggregates[0].StdDevKd, 1e-4)
	})
}

func TestAggregateHHI(t *testing.T) {
	t.Run("single index concentration is 1", func(t *testing.T) {
		aggregates := Aggregate([]LineResult{
			weighableLine("ACME", IndexCDI, 10, 100),
			weighableLine("ACME", IndexCDI, 12, 300),
		})
		require.Len(t, aggregates, 1)
		assert.InDelta(t, 1.0, aggregates[0].HHIByIndex, 1e-9)
		assert.InDelta(t, 0.0, aggregates[0].Diversification, 1e-9)
	})

	t.Run("even split across two indexes", func(t *testing.T) {
		aggregates := Aggregate([]LineResult{
			weighableLine("ACME", IndexCDI, 10, 100),
			weighableLine("ACME", IndexIPCA, 12, 100),
		})
		require.Len(t, aggregates, 1)
		assert.InDelta(t, 0.5, aggregates[0].HHIByIndex, 1e-9)
		assert.InDelta(t, 0.5, aggregates[0].Diversification, 1e-9)
	})

	t.Run("bounds hold for many groups", func(t *testing.T) {
		lines := []LineResult{
			weighableLine("ACME", IndexCDI, 10, 137),
			weighableLine("ACME", IndexIPCA, 11, 263),
			weighableLine("ACME", IndexTLP, 12, 401),
			weighableLine("ACME", IndexTR, 13, 89),
		}
		aggregates := Aggregate(lines)
		require.Len(t, aggregates, 1)
		assert.GreaterOrEqual(t, aggregates[0].HHIByIndex, 0.25)
		assert.LessOrEqual(t, aggregates[0].HHIByIndex, 1.0)
	})

	t.Run("unidentified lines with value still shape heterogeneity", func(t *testing.T) {
		unidentified := LineResult{
			Company:       "ACME",
			FinancingType: "loan",
			DeclaredValue: 100,
			HasValue:      true,
			Classified:    ClassifiedIndexer{},
		}
		aggregates := Aggregate([]LineResult{
			weighableLine("ACME", IndexCDI, 10, 100),
			unidentified,
		})
		require.Len(t, aggregates, 1)
		// The Kd statistics see one line, the HHI sees two groups.
		assert.Equal(t, 1, aggregates[0].LineCount)
		assert.InDelta(t, 0.5, aggregates[0].HHIByIndex, 1e-9)
	})
}

func TestAggregateExclusions(t *testing.T) {
	t.Run("zero-value lines do not weigh", func(t *testing.T) {
		zeroValue := weighableLine("ACME", IndexIPCA, 50, 0)
		aggregates := Aggregate([]LineResult{
			weighableLine("ACME", IndexCDI, 10, 100),
			zeroValue,
		})
		require.Len(t, aggregates, 1)
		assert.InDelta(t, 10.0, aggregates[0].WeightedKd, 1e-9)
		assert.Equal(t, 1, aggregates[0].LineCount)
	})

	t.Run("company with no weighable line is omitted", func(t *testing.T) {
		noKd := LineResult{
			Company:       "GHOST",
			DeclaredValue: 100,
			HasValue:      true,
		}
		aggregates := Aggregate([]LineResult{
			weighableLine("ACME", IndexCDI, 10, 100),
			noKd,
		})
		require.Len(t, aggregates, 1)
		assert.Equal(t, "ACME", aggregates[0].Company)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Aggregate(nil))
	})
}

func TestAggregateSortedByWeightedKdDescending(t *testing.T) {
	aggregates := Aggregate([]LineResult{
		weighableLine("LOW", IndexCDI, 8, 100),
		weighableLine("HIGH", IndexCDI, 20, 100),
		weighableLine("MID", IndexCDI, 12, 100),
	})
	require.Len(t, aggregates, 3)

	assert.Equal(t, "HIGH", aggregates[0].Company)
	assert.Equal(t, "MID", aggregates[1].Company)
	assert.Equal(t, "LOW", aggregates[2].Company)
}
