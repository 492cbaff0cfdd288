package exporter

import (
	"strconv"
	"strings"

	"kdcli/internal/costofdebt"
)

// LineHeaders is the column set of the per-line report.
var LineHeaders = []string{
	"company",
	"index",
	"spread_pct",
	"financing_type",
	"declared_value",
	"kd_pct",
	"period",
	"base_rate",
	"observations",
	"in_range",
	"extreme_high",
	"extreme_low",
	"suspected_error",
	"needs_review",
	"diagnosis",
}

// CompanyHeaders is the column set of the per-company report.
var CompanyHeaders = []string{
	"company",
	"weighted_kd_pct",
	"mean_kd_pct",
	"stddev_kd_pct",
	"min_kd_pct",
	"max_kd_pct",
	"line_count",
	"distinct_indexes",
	"distinct_types",
	"total_value",
	"mean_value",
	"indexes_used",
	"hhi_by_index",
	"hhi_by_type",
	"diversification",
}

// LineRecords converts per-line results into CSV records. Missing
// values (no spread, no Kd, unparsed declared value) are emitted as
// empty cells, never as zeros, so the spreadsheet stays honest about
// what was computed.
func LineRecords(lines []costofdebt.LineResult) [][]string {
	records := make([][]string, 0, len(lines))
	for _, lr := range lines {
		spread := ""
		if lr.Classified.HasSpread {
			spread = formatFloat(lr.Classified.Spread*100, 4)
		}
		value := ""
		if lr.HasValue {
			value = formatFloat(lr.DeclaredValue, 2)
		}
		kd := ""
		baseRate := ""
		if lr.Validation.HasKd {
			kd = formatFloat(lr.Validation.KdPercent, 4)
		}
		if lr.Validation.HasBase {
			baseRate = formatFloat(lr.Validation.BaseRate, 4)
		}

		observations := append([]string{}, lr.Classified.Observations...)
		observations = append(observations, lr.Validation.Observations...)

		records = append(records, []string{
			lr.Company,
			lr.IndexLabel(),
			spread,
			lr.FinancingType,
			value,
			kd,
			lr.Classified.Period.String(),
			baseRate,
			strings.Join(observations, "; "),
			formatBool(lr.Validation.InRange),
			formatBool(lr.Validation.ExtremeHigh),
			formatBool(lr.Validation.ExtremeLow),
			formatBool(lr.Validation.SuspectedError),
			formatBool(lr.Validation.NeedsManualReview),
			lr.Validation.Diagnosis,
		})
	}
	return records
}

// CompanyRecords converts per-company aggregates into CSV records.
func CompanyRecords(companies []costofdebt.CompanyAggregate) [][]string {
	records := make([][]string, 0, len(companies))
	for _, agg := range companies {
		records = append(records, []string{
			agg.Company,
			formatFloat(agg.WeightedKd, 4),
			formatFloat(agg.MeanKd, 4),
			formatFloat(agg.StdDevKd, 4),
			formatFloat(agg.MinKd, 4),
			formatFloat(agg.MaxKd, 4),
			strconv.Itoa(agg.LineCount),
			strconv.Itoa(agg.DistinctIndexes),
			strconv.Itoa(agg.DistinctTypes),
			formatFloat(agg.TotalValue, 2),
			formatFloat(agg.MeanValue, 2),
			strings.Join(agg.IndexesUsed, "|"),
			formatFloat(agg.HHIByIndex, 4),
			formatFloat(agg.HHIByType, 4),
			formatFloat(agg.Diversification, 4),
		})
	}
	return records
}

// ReviewRecords filters the per-line records down to rows that carry
// any extreme or review flag, for the manual-review report.
func ReviewRecords(lines []costofdebt.LineResult) [][]string {
	var flagged []costofdebt.LineResult
	for _, lr := range lines {
		if lr.Validation.ExtremeHigh || lr.Validation.ExtremeLow ||
			lr.Validation.SuspectedError || lr.Validation.NeedsManualReview {
			flagged = append(flagged, lr)
		}
	}
	return LineRecords(flagged)
}

func formatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func formatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
