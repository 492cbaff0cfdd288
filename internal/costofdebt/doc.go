// Package costofdebt implements the indexer classification and
// cost-of-debt (Kd) computation engine.
//
// The engine turns heterogeneous free-text financing-rate descriptions
// ("CDI + 1,50% a.a.", "TLP_IPCA", "Pré-fixado 6,94%") into a canonical
// rate structure, combines it with reference base rates into an
// annualized Kd per financing line, flags extreme results for manual
// review, and rolls everything up into per-company weighted statistics
// and debt-heterogeneity indices.
//
// # Pipeline
//
// Data flows strictly left to right, one stage per file:
//
//   - normalize.go: text normal form (uppercase, accents stripped)
//   - classify.go: ordered-rule index identification
//   - spread.go: spread extraction with locale-aware decimals
//   - period.go: period detection and compound annualization
//   - calculate.go: Kd = base + spread (or the fixed rate directly)
//   - validate.go: extreme-case classification with diagnoses
//   - aggregate.go: per-company weighted Kd and HHI indices
//   - pipeline.go: batch orchestration over the stages above
//
// Classification rules are an ordered table, most specific first, so
// priority is data rather than code: "TLP_IPCA" resolves to TLP before
// the IPCA rule can fire, and "100% do DI" resolves to DI, never CDI.
//
// # Soft error model
//
// Malformed or unrecognized text never produces an error. Each stage
// degrades to an explicit sentinel with a recorded observation, and
// three unresolved outcomes stay distinguishable downstream: index
// unidentified, index identified without a configured base rate, and a
// computed Kd outside the valid range. The engine only fails hard on an
// empty batch or records missing the company identifier.
//
// # Concurrency
//
// Every per-line stage is a pure function of the record and the
// immutable IndexerConfig, so Process fans records out across a bounded
// worker pool without locking; only the final per-company aggregation
// is a reduction barrier.
//
// # Usage
//
//	engine, err := costofdebt.NewEngine(costofdebt.DefaultIndexerConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	batch, err := engine.Process(ctx, lines)
//	if err != nil {
//	    return err
//	}
//	for _, company := range batch.Companies {
//	    fmt.Println(company.Company, company.WeightedKd)
//	}
package costofdebt
