package costofdebt

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Aggregate folds per-line validation results into one CompanyAggregate
// per company.
//
// Two populations are deliberately distinct: the weighting population
// (lines with a computed Kd and a strictly positive declared value)
// drives the Kd statistics, while the heterogeneity population (every
// positive-value line, identified or not) drives the HHI indices.
// Companies with no weighable line are omitted entirely rather than
// emitted with NaNs. Output is sorted by weighted Kd descending.
func Aggregate(lines []LineResult) []CompanyAggregate {
	byCompany := make(map[string][]LineResult)
	var companies []string
	for _, line := range lines {
		if line.Company == "" {
			continue
		}
		if _, seen := byCompany[line.Company]; !seen {
			companies = append(companies, line.Company)
		}
		byCompany[line.Company] = append(byCompany[line.Company], line)
	}

	var aggregates []CompanyAggregate
	for _, company := range companies {
		if agg, ok := aggregateCompany(company, byCompany[company]); ok {
			aggregates = append(aggregates, agg)
		}
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		if aggregates[i].WeightedKd != aggregates[j].WeightedKd {
			return aggregates[i].WeightedKd > aggregates[j].WeightedKd
		}
		return aggregates[i].Company < aggregates[j].Company
	})

	return aggregates
}

func aggregateCompany(company string, lines []LineResult) (CompanyAggregate, bool) {
	var kds, values []float64
	indexSet := make(map[string]bool)
	typeSet := make(map[string]bool)
	var indexesUsed []string

	for _, line := range lines {
		if !line.Weighable() {
			continue
		}
		kds = append(kds, line.Validation.KdPercent)
		values = append(values, line.DeclaredValue)
		if !indexSet[line.IndexLabel()] {
			indexSet[line.IndexLabel()] = true
			indexesUsed = append(indexesUsed, line.IndexLabel())
		}
		typeSet[line.FinancingType] = true
	}

	if len(kds) == 0 {
		return CompanyAggregate{}, false
	}

	totalValue := floats.Sum(values)

	agg := CompanyAggregate{
		Company:         company,
		WeightedKd:      stat.Mean(kds, values),
		MeanKd:          stat.Mean(kds, nil),
		MinKd:           floats.Min(kds),
		MaxKd:           floats.Max(kds),
		LineCount:       len(kds),
		DistinctIndexes: len(indexSet),
		DistinctTypes:   len(typeSet),
		TotalValue:      totalValue,
		MeanValue:       totalValue / float64(len(values)),
		IndexesUsed:     indexesUsed,
	}
	if len(kds) > 1 {
		agg.StdDevKd = stat.StdDev(kds, nil)
	}

	agg.HHIByIndex = hhi(lines, func(lr LineResult) string { return lr.IndexLabel() })
	agg.HHIByType = hhi(lines, func(lr LineResult) string { return lr.FinancingType })
	agg.Diversification = 1 - agg.HHIByIndex

	return agg, true
}

// hhi computes the Herfindahl-Hirschman index over value shares of the
// groups produced by key, across every positive-value line. The result
// is clamped to [0,1] against floating-point overshoot.
func hhi(lines []LineResult, key func(LineResult) string) float64 {
	shares := make(map[string]float64)
	var total float64
	for _, line := range lines {
		if !line.HasValue || line.DeclaredValue <= 0 {
			continue
		}
		shares[key(line)] += line.DeclaredValue
		total += line.DeclaredValue
	}
	if total == 0 {
		return 0
	}

	var index float64
	for _, value := range shares {
		share := value / total
		index += share * share
	}
	if index > 1 {
		index = 1
	}
	if index < 0 {
		index = 0
	}
	return index
}
