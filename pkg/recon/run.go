package recon

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/steelneuf/DWH---Test/pkg/recon/logging"
	"github.com/steelneuf/DWH---Test/pkg/recon/models"
	"github.com/steelneuf/DWH---Test/pkg/recon/table"
	"github.com/steelneuf/DWH---Test/pkg/recon/xlsxio"
)

// Output workbook names.
const (
	// DataOutputFile receives one reconciled sheet per configured sheet.
	DataOutputFile = "ValidatieOutput.xlsx"
	// TestOutputFile receives the duplicate, summary, dashboard and log
	// report sheets.
	TestOutputFile = "Testresultaat.xlsx"
)

// Loader loads one sheet of one source file as a table. A failed load
// returns an empty table together with the error; the orchestrator recovers
// by using the empty table.
type Loader interface {
	LoadSheet(path, sheetName string) (*table.Table, error)
}

// Options configure a reconciliation run.
type Options struct {
	InputDir        string
	InputColumnsDir string
	OutputDir       string
	ValidationDir   string
}

// Runner orchestrates a full run: source discovery, configuration loading,
// sequential per-sheet reconciliation and report writing. Sheets are
// processed strictly sequentially; the data workbook stays open across the
// whole batch and is flushed on every exit path.
type Runner struct {
	opts    Options
	loader  Loader
	log     *zap.Logger
	capture *logging.Capture
}

// NewRunner creates a Runner with the given collaborators.
func NewRunner(opts Options, loader Loader, log *zap.Logger, capture *logging.Capture) *Runner {
	return &Runner{opts: opts, loader: loader, log: log, capture: capture}
}

// Run executes the whole validation run. Only missing sources or a missing
// sheet configuration are fatal; every per-source and per-sheet failure is
// recovered into empty or zero-valued report entries.
func (r *Runner) Run() error {
	r.log.Info("starting validation run")

	sources := xlsxio.DiscoverAll(r.opts.InputDir, r.opts.InputColumnsDir, r.log)
	if len(sources) == 0 {
		return fmt.Errorf("%w: no *.xlsx or *.csv in %s or %s",
			ErrNoSources, r.opts.InputDir, r.opts.InputColumnsDir)
	}
	r.logDiscovered(sources)

	cfgPath, err := xlsxio.FindValidationConfig(r.opts.ValidationDir)
	if err != nil {
		return err
	}
	configs, err := xlsxio.ReadSheetConfigs(cfgPath, r.log)
	if err != nil {
		return err
	}

	summaries, duplicates, dashboards := r.processAllSheets(configs, sources)

	if err := r.writeTestResults(summaries, duplicates, dashboards); err != nil {
		return err
	}

	r.log.Info("validation finished",
		zap.String("data", DataOutputFile), zap.String("results", TestOutputFile))
	return nil
}

// processAllSheets runs every configured sheet against the shared data
// workbook. A failing sheet yields a zero-valued summary and the run
// continues with the remaining sheets.
func (r *Runner) processAllSheets(configs []models.SheetConfig, sources []models.Source) (
	[]models.SummaryRecord, []models.DuplicateRecord, []models.DashboardRecord) {

	writer := xlsxio.NewReportWriter(filepath.Join(r.opts.OutputDir, DataOutputFile), r.log)
	defer func() {
		if err := writer.Close(); err != nil {
			r.log.Error("failed to write data output", zap.Error(err))
			return
		}
		r.log.Info("data output written", zap.String("file", DataOutputFile))
	}()

	var (
		summaries  []models.SummaryRecord
		duplicates []models.DuplicateRecord
		dashboards []models.DashboardRecord
	)
	for _, cfg := range configs {
		summary, dups, dash, err := r.processSheet(writer, cfg, sources)
		if err != nil {
			r.log.Error("failed to process sheet", zap.String("sheet", cfg.Sheet), zap.Error(err))
			summary = models.SummaryRecord{Sheet: cfg.Sheet}
			dups, dash = nil, nil
		}
		summaries = append(summaries, summary)
		duplicates = append(duplicates, dups...)
		dashboards = append(dashboards, dash...)
	}
	return summaries, duplicates, dashboards
}

// processSheet loads, compares, reports and writes one sheet.
func (r *Runner) processSheet(writer *xlsxio.ReportWriter, cfg models.SheetConfig, sources []models.Source) (
	models.SummaryRecord, []models.DuplicateRecord, []models.DashboardRecord, error) {

	tables := r.loadSources(cfg.Sheet, sources)

	result := Compare(tables, cfg)
	dups := FindDuplicates(cfg.Sheet, tables, cfg.KeyColumn, r.log)
	dash := DashboardRecords(cfg.Sheet, tables, cfg.KeyColumn)

	if err := writer.WriteSheet(cfg.Sheet, result.Table); err != nil {
		return models.SummaryRecord{}, nil, nil, &SheetError{Sheet: cfg.Sheet, Stage: "write", Err: err}
	}

	summary := models.SummaryRecord{
		Sheet:      cfg.Sheet,
		Totaal:     result.Table.NumRows(),
		Matches:    result.Matches,
		Mismatches: result.Mismatches,
	}
	r.log.Info("sheet compared",
		zap.String("sheet", cfg.Sheet),
		zap.Int("matches", result.Matches),
		zap.Int("mismatches", result.Mismatches))
	r.logMismatches(result.Verdicts)

	return summary, dups, dash, nil
}

// loadSources loads every source's table for one sheet. A failed load is
// recovered into an empty table and logged as a warning.
func (r *Runner) loadSources(sheet string, sources []models.Source) []SourceTable {
	out := make([]SourceTable, 0, len(sources))
	for _, src := range sources {
		t, err := r.loader.LoadSheet(src.Path, sheet)
		if err != nil {
			r.log.Warn("failed to load source sheet",
				zap.String("bron", src.Label),
				zap.String("sheet", sheet),
				zap.Error(err))
		}
		if t == nil {
			t = table.New()
		}
		out = append(out, SourceTable{Label: src.Label, Table: t})
	}
	return out
}

// logMismatches emits one line per mismatched row: the sources missing the
// key and the columns whose values diverge.
func (r *Runner) logMismatches(verdicts []RowVerdict) {
	for _, v := range verdicts {
		if v.Match {
			continue
		}
		key := v.Key.Get()
		if v.Key.IsMissing() {
			key = "<geen sleutel>"
		}
		if len(v.MissingSources) > 0 {
			r.log.Info("key missing in sources",
				zap.String("key", key),
				zap.String("bronnen", strings.Join(v.MissingSources, ", ")))
		}
		if len(v.MismatchedColumns) > 0 {
			r.log.Info("column values mismatch",
				zap.String("key", key),
				zap.String("kolommen", strings.Join(v.MismatchedColumns, ", ")))
		}
	}
}

// writeTestResults writes the results workbook. Individual report sections
// failing to render degrade to warnings; the workbook itself must save.
func (r *Runner) writeTestResults(summaries []models.SummaryRecord,
	duplicates []models.DuplicateRecord, dashboards []models.DashboardRecord) error {

	writer := xlsxio.NewReportWriter(filepath.Join(r.opts.OutputDir, TestOutputFile), r.log)
	if err := writer.WriteDuplicates(duplicates); err != nil {
		r.log.Warn("failed to write duplicates sheet", zap.Error(err))
	}
	if err := writer.WriteSummary(summaries); err != nil {
		r.log.Warn("failed to write summary sheet", zap.Error(err))
	}
	if err := writer.WriteDashboard(dashboards); err != nil {
		r.log.Warn("failed to write dashboard sheet", zap.Error(err))
	}
	if err := writer.WriteLogs(r.capture.Records()); err != nil {
		r.log.Warn("failed to write logs sheet", zap.Error(err))
	}
	return writer.Close()
}

func (r *Runner) logDiscovered(sources []models.Source) {
	labels := make([]string, len(sources))
	for i, s := range sources {
		labels[i] = s.Label + " -> " + filepath.Base(s.Path)
	}
	r.log.Info("discovered input sources",
		zap.Int("count", len(sources)),
		zap.String("bronnen", strings.Join(labels, ", ")))
}
