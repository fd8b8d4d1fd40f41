package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"salesreport/internal"
	"salesreport/internal/catalog"
	"salesreport/internal/config"
	"salesreport/internal/report"
	"salesreport/internal/runlog"
	"salesreport/internal/storage"
)

// Service runs the full batch: read, parse, validate, filter, enrich,
// persist, aggregate, render. One pass, no shared state between runs beyond
// the catalog cache and the appended log.
type Service struct {
	cfg    config.Config
	db     *storage.DB
	client *catalog.Client
	log    zerolog.Logger
}

func NewService(db *storage.DB, cfg config.Config, log zerolog.Logger) *Service {
	return &Service{cfg: cfg, db: db, client: catalog.NewClient(cfg), log: log}
}

type RunOptions struct {
	Offline  bool
	Filter   FilterOptions
	XLSXPath string
}

type RunResult struct {
	TraceID       string
	Counts        internal.RunCounts
	FilterSummary FilterSummary
	ReportPath    string
	EnrichedPath  string
}

// Run executes the whole pipeline and writes the enriched file, the report
// and the application log entries. Catalog failure degrades to zero matches;
// only input-file problems and output-write failures abort the run.
func (s *Service) Run(ctx context.Context) (RunResult, error) {
	return s.run(ctx, RunOptions{})
}

func (s *Service) RunWithOptions(ctx context.Context, opts RunOptions) (RunResult, error) {
	return s.run(ctx, opts)
}

func (s *Service) run(ctx context.Context, opts RunOptions) (RunResult, error) {
	start := time.Now()
	rl := runlog.New(s.cfg.LogPath)
	_ = rl.Stamped("Application started")

	lines, err := ReadSalesLines(s.cfg.InputPath)
	if err != nil {
		_ = rl.Stamped("Run aborted: " + err.Error())
		return RunResult{}, err
	}
	s.log.Info().Int("lines", len(lines)).Str("input", s.cfg.InputPath).Msg("sales data read")

	outcomes := ParseLines(lines)
	txs := Transactions(outcomes)
	valid, invalid := Validate(txs)
	filtered, filterSummary := ApplyFilters(valid, len(txs), invalid, opts.Filter)

	mapping := catalog.BuildMapping(s.catalogProducts(ctx, opts.Offline))
	enriched := Enrich(filtered, mapping)

	counts := internal.RunCounts{
		LinesRead: len(lines),
		Parsed:    len(txs),
		Skipped:   len(lines) - len(txs),
		Invalid:   invalid,
		Valid:     len(valid),
	}
	for _, e := range enriched {
		if e.APIMatch {
			counts.Matched++
		} else {
			counts.Unmatched++
		}
	}

	if err := WriteEnriched(s.cfg.EnrichedPath, enriched); err != nil {
		return RunResult{}, fmt.Errorf("write enriched data: %w", err)
	}
	if opts.XLSXPath != "" {
		if err := ExportEnrichedToXLSX(enriched, opts.XLSXPath); err != nil {
			return RunResult{}, fmt.Errorf("export xlsx: %w", err)
		}
	}

	summary := report.Build(filtered, enriched, s.cfg.TopN, s.cfg.LowQtyThreshold)
	renderer := report.Renderer{CurrencySymbol: s.cfg.CurrencySymbol}
	if err := renderer.WriteFile(s.cfg.ReportPath, summary, time.Now()); err != nil {
		return RunResult{}, fmt.Errorf("write report: %w", err)
	}

	_ = rl.Line(fmt.Sprintf("Total records parsed: %d", counts.LinesRead))
	_ = rl.Line(fmt.Sprintf("Invalid records removed: %d", counts.LinesRead-counts.Valid))
	_ = rl.Line(fmt.Sprintf("Valid records after cleaning: %d", counts.Valid))
	_ = rl.Stamped("Application finished")

	traceID := uuid.NewString()
	if err := s.db.InsertRun(traceID, s.cfg.InputPath, counts); err != nil {
		s.log.Warn().Err(err).Msg("run history insert failed")
	}

	s.log.Info().
		Str("trace", traceID).
		Int("valid", counts.Valid).
		Int("matched", counts.Matched).
		Dur("elapsed", time.Since(start)).
		Msg("pipeline run complete")

	return RunResult{
		TraceID:       traceID,
		Counts:        counts,
		FilterSummary: filterSummary,
		ReportPath:    s.cfg.ReportPath,
		EnrichedPath:  s.cfg.EnrichedPath,
	}, nil
}

// catalogProducts picks the catalog source: live fetch (refreshing the cache
// on success) or the local cache in offline mode. Both paths degrade to nil.
func (s *Service) catalogProducts(ctx context.Context, offline bool) []internal.ProductRecord {
	if offline {
		products, err := s.db.ListProducts()
		if err != nil {
			s.log.Warn().Err(err).Msg("catalog cache read failed, continuing without enrichment")
			return nil
		}
		s.log.Info().Int("products", len(products)).Msg("catalog loaded from cache")
		return products
	}

	products := s.client.FetchProductsOrEmpty(ctx, s.log)
	if len(products) > 0 {
		if err := s.db.UpsertProducts(products); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache refresh failed")
		}
	}
	return products
}
