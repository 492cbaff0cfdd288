package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kdcli/internal/costofdebt"
)

func sampleLine() costofdebt.LineResult {
	return costofdebt.LineResult{
		Company:       "ACME",
		FinancingType: "debenture",
		DeclaredValue: 1000,
		HasValue:      true,
		Classified: costofdebt.ClassifiedIndexer{
			Index:      costofdebt.IndexCDI,
			Identified: true,
			Spread:     0.015,
			HasSpread:  true,
			Period:     costofdebt.PeriodAnnual,
		},
		Validation: costofdebt.ValidationResult{
			ComputedKd: costofdebt.ComputedKd{
				BaseRate:   0.1365,
				HasBase:    true,
				SpreadUsed: 0.015,
				Kd:         0.1515,
				KdPercent:  15.15,
				HasKd:      true,
				InRange:    true,
			},
		},
	}
}

func TestLineRecords(t *testing.T) {
	records := LineRecords([]costofdebt.LineResult{sampleLine()})
	require.Len(t, records, 1)

	record := records[0]
	require.Len(t, record, len(LineHeaders))
	assert.Equal(t, "ACME", record[0])
	assert.Equal(t, "CDI", record[1])
	assert.Equal(t, "1.5000", record[2])
	assert.Equal(t, "debenture", record[3])
	assert.Equal(t, "1000.00", record[4])
	assert.Equal(t, "15.1500", record[5])
	assert.Equal(t, "a.a.", record[6])
	assert.Equal(t, "0.1365", record[7])
	assert.Equal(t, "true", record[9])
	assert.Equal(t, "false", record[13])
}

// Missing values must come out as empty cells, not zeros.
func TestLineRecordsMissingValues(t *testing.T) {
	unidentified := costofdebt.LineResult{
		Company:    "GHOST",
		Classified: costofdebt.ClassifiedIndexer{Period: costofdebt.PeriodAnnual},
	}

	records := LineRecords([]costofdebt.LineResult{unidentified})
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "UNIDENTIFIED", record[1])
	assert.Empty(t, record[2]) // spread
	assert.Empty(t, record[4]) // declared value
	assert.Empty(t, record[5]) // kd
	assert.Empty(t, record[7]) // base rate
}

func TestCompanyRecords(t *testing.T) {
	records := CompanyRecords([]costofdebt.CompanyAggregate{
		{
			Company:         "ACME",
			WeightedKd:      12.6667,
			MeanKd:          12,
			MinKd:           10,
			MaxKd:           14,
			LineCount:       3,
			DistinctIndexes: 3,
			DistinctTypes:   1,
			TotalValue:      600,
			MeanValue:       200,
			IndexesUsed:     []string{"CDI", "IPCA", "TLP"},
			HHIByIndex:      0.3889,
			HHIByType:       1,
			Diversification: 0.6111,
		},
	})
	require.Len(t, records, 1)

	record := records[0]
	require.Len(t, record, len(CompanyHeaders))
	assert.Equal(t, "ACME", record[0])
	assert.Equal(t, "12.6667", record[1])
	assert.Equal(t, "3", record[6])
	assert.Equal(t, "CDI|IPCA|TLP", record[11])
	assert.Equal(t, "0.6111", record[14])
}

func TestReviewRecordsFiltersFlaggedRows(t *testing.T) {
	normal := sampleLine()

	flagged := sampleLine()
	flagged.Company = "BETA"
	flagged.Validation.ExtremeHigh = true
	flagged.Validation.NeedsManualReview = true

	records := ReviewRecords([]costofdebt.LineResult{normal, flagged})
	require.Len(t, records, 1)
	assert.Equal(t, "BETA", records[0][0])
}

func TestReviewRecordsEmptyWhenNothingFlagged(t *testing.T) {
	records := ReviewRecords([]costofdebt.LineResult{sampleLine()})
	assert.Empty(t, records)
}
