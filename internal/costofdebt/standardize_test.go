package costofdebt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardize(t *testing.T) {
	cfg := DefaultIndexerConfig()

	t.Run("floating rate with spread and period", func(t *testing.T) {
		result := cfg.Standardize("CDI + 1,50% a.a.")

		require.True(t, result.Identified)
		assert.Equal(t, IndexCDI, result.Index)
		assert.True(t, result.HasSpread)
		assert.InDelta(t, 0.015, result.Spread, 1e-9)
		assert.Equal(t, PeriodAnnual, result.Period)
		assert.False(t, result.IsFixedRate)
		assert.Empty(t, result.Observations)
	})

	t.Run("monthly period detected", func(t *testing.T) {
		result := cfg.Standardize("CDI + 0,45% a.m.")

		require.True(t, result.Identified)
		assert.Equal(t, PeriodMonthly, result.Period)
		// Conversion to annual happens in the calculator, not here.
		assert.InDelta(t, 0.0045, result.Spread, 1e-9)
	})

	t.Run("fixed rate carries the total rate as spread", func(t *testing.T) {
		result := cfg.Standardize("Pré-fixado 6,94% a.a.")

		require.True(t, result.Identified)
		assert.True(t, result.IsFixedRate)
		assert.True(t, result.HasSpread)
		assert.InDelta(t, 0.0694, result.Spread, 1e-9)
	})

	t.Run("missing spread is recorded", func(t *testing.T) {
		result := cfg.Standardize("TLP")

		require.True(t, result.Identified)
		assert.False(t, result.HasSpread)
		assert.Contains(t, result.Observations, "spread not found, assumed 0")
	})

	t.Run("empty text", func(t *testing.T) {
		result := cfg.Standardize("")

		assert.False(t, result.Identified)
		assert.Contains(t, result.Observations, "index description empty")
	})

	t.Run("unidentified text", func(t *testing.T) {
		result := cfg.Standardize("EURIBOR + 1%")

		assert.False(t, result.Identified)
		assert.Contains(t, result.Observations, "index type not identified")
	})

	t.Run("original text is preserved verbatim", func(t *testing.T) {
		original := "  Cdi + 1,50% a.a.  "
		result := cfg.Standardize(original)

		assert.Equal(t, original, result.OriginalText)
	})
}
