package analysis

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Analyzer runs the full single-pass pipeline: tabular parse, column
// detection, row normalization, sign interpretation, analytics, assembly.
// It holds no per-invocation state, so a single Analyzer is safe for
// concurrent use.
type Analyzer struct {
	rules  *ruleEngine
	logger *slog.Logger
	tracer trace.Tracer
}

// New creates an Analyzer. The category automaton is precomputed once here.
func New(logger *slog.Logger) *Analyzer {
	return &Analyzer{
		rules:  newRuleEngine(),
		logger: logger,
		tracer: otel.Tracer("spendscope/analysis"),
	}
}

// AnalyzeText parses raw CSV text and analyzes it. Structural CSV errors are
// the only failure; everything else degrades by dropping rows.
func (a *Analyzer) AnalyzeText(ctx context.Context, csvText string) (*Result, error) {
	tb, err := ParseTable(csvText)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeTable(ctx, tb), nil
}

// AnalyzeTable analyzes an already-parsed table. This is the entry point for
// non-CSV sources (e.g. a spreadsheet sheet converted to rows).
func (a *Analyzer) AnalyzeTable(ctx context.Context, tb *Table) *Result {
	_, span := a.tracer.Start(ctx, "analysis.AnalyzeTable")
	defer span.End()

	columns := DetectColumns(tb.Headers)

	norm := newNormalizer(tb.Headers, columns, a.rules)
	txns := make([]Transaction, 0, len(tb.Rows))
	for _, row := range tb.Rows {
		if t, ok := norm.Normalize(row); ok {
			txns = append(txns, t)
		}
	}

	interpretation := interpretSigns(txns)
	out := outflows(txns)

	result := &Result{
		Meta: Meta{
			Rows:           len(txns),
			Currency:       Currency,
			Detected:       columns.Detected(),
			Interpretation: interpretation,
		},
		Summary:      computeSummary(txns),
		ByCategory:   aggregateByCategory(out),
		DailyOut:     aggregateByDay(out),
		TopMerchants: aggregateByMerchant(out),
		Anomalies:    detectAnomalies(out),
		Recurring:    detectRecurring(txns),
		Transactions: txns,
	}

	span.SetAttributes(
		attribute.Int("analysis.rows_in", len(tb.Rows)),
		attribute.Int("analysis.transactions", len(txns)),
		attribute.String("analysis.interpretation", interpretation),
	)
	a.logger.Debug("statement analyzed",
		slog.Int("rows_in", len(tb.Rows)),
		slog.Int("transactions", len(txns)),
		slog.Int("dropped", len(tb.Rows)-len(txns)),
		slog.String("interpretation", interpretation),
	)
	return result
}
