package costofdebt

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"kdcli/pkg/contracts/domain"
)

// Engine orchestrates the per-line pipeline and the per-company
// aggregation over one batch of financing lines.
type Engine struct {
	cfg            *IndexerConfig
	logger         *slog.Logger
	maxConcurrency int
}

// NewEngine creates an engine bound to an immutable indexer
// configuration.
func NewEngine(cfg *IndexerConfig, logger *slog.Logger) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("indexer configuration is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate indexer configuration: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cfg:            cfg,
		logger:         logger,
		maxConcurrency: runtime.NumCPU(),
	}, nil
}

// SetMaxConcurrency bounds the per-line fan-out. Values below 1 are
// coerced to 1.
func (e *Engine) SetMaxConcurrency(n int) {
	if n < 1 {
		n = 1
	}
	e.maxConcurrency = n
}

// ProcessLine runs the full per-line pipeline for one raw record:
// classification, spread extraction, period normalization, Kd
// computation and extreme-case validation. It is a pure function of the
// record and the immutable configuration, so it is safe to call
// concurrently from any number of goroutines.
func (e *Engine) ProcessLine(line domain.FinancingLine) LineResult {
	classified := e.cfg.Standardize(line.IndexText)
	computed := ComputeKd(classified, e.cfg)
	validation := ValidateKd(computed, classified, e.cfg)

	value, hasValue := ParseLocaleNumber(line.DeclaredValue)

	return LineResult{
		Company:       line.Company,
		FinancingType: line.FinancingType,
		DeclaredValue: value,
		HasValue:      hasValue,
		MaturityDate:  line.MaturityDate,
		Classified:    classified,
		Validation:    validation,
	}
}

// Process runs the batch: every line through the per-line pipeline
// (records are independent, so they fan out across a bounded worker
// pool), then the grouping barrier into per-company aggregates. Output
// order matches input order regardless of scheduling.
//
// The only hard failures are an empty batch and records without a
// company identifier; unrecognized index text degrades to the
// unidentified sentinel per line.
func (e *Engine) Process(ctx context.Context, lines []domain.FinancingLine) (*BatchResult, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := e.logger.With(slog.String("run_id", runID))

	if len(lines) == 0 {
		return nil, fmt.Errorf("no financing lines provided")
	}
	for i, line := range lines {
		if line.Company == "" {
			return nil, fmt.Errorf("line %d: missing company identifier", i)
		}
	}

	logger.InfoContext(ctx, "starting cost-of-debt batch",
		slog.Int("lines", len(lines)),
		slog.Int("max_concurrency", e.maxConcurrency),
	)

	results := make([]LineResult, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxConcurrency)

	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = e.ProcessLine(line)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("process lines: %w", err)
	}

	batch := &BatchResult{
		RunID:      runID,
		Lines:      results,
		Companies:  Aggregate(results),
		TotalLines: len(results),
	}
	for _, lr := range results {
		if lr.Classified.Identified {
			batch.IdentifiedLines++
		}
		if lr.Validation.HasKd {
			batch.ComputedLines++
		}
		if lr.Weighable() {
			batch.WeighableLines++
		}
		if lr.Validation.NeedsManualReview || lr.Validation.ExtremeHigh || lr.Validation.ExtremeLow {
			batch.ReviewLines++
		}
	}

	logger.InfoContext(ctx, "cost-of-debt batch completed",
		slog.Duration("duration", time.Since(start)),
		slog.Int("total_lines", batch.TotalLines),
		slog.Int("identified_lines", batch.IdentifiedLines),
		slog.Int("computed_lines", batch.ComputedLines),
		slog.Int("weighable_lines", batch.WeighableLines),
		slog.Int("review_lines", batch.ReviewLines),
		slog.Int("companies", len(batch.Companies)),
	)

	return batch, nil
}
