package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"ChecklistMapper/internal/domain"
	"ChecklistMapper/internal/ports"
)

// PipelineDeps wires all driven adapters into the mapping pipeline.
type PipelineDeps struct {
	Source      ports.ChecklistSource
	Sinks       []ports.ExportSink
	Notifier    ports.Notifier
	Metadata    domain.DatasetMetadata
	Namespace   string
	StrictCodes bool
	Logger      *slog.Logger
}

// Pipeline implements the checklist mapping workflow: aggregate references,
// join, validate, identify, project, export. Every stage is a pure function
// over an immutable snapshot; the pipeline only sequences them and reports.
type Pipeline struct {
	source      ports.ChecklistSource
	sinks       []ports.ExportSink
	notifier    ports.Notifier
	metadata    domain.DatasetMetadata
	namespace   string
	strictCodes bool
	logger      *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:      deps.Source,
		sinks:       deps.Sinks,
		notifier:    deps.Notifier,
		metadata:    deps.Metadata,
		namespace:   deps.Namespace,
		strictCodes: deps.StrictCodes,
		logger:      deps.Logger,
	}
}

// Run executes one full recomputation: fetch the raw tables, map them into
// the three output tables, hand the result to every sink, and publish the
// run report. A join invariant violation aborts the run before any sink is
// touched, so partial output is never written.
func (p *Pipeline) Run(ctx context.Context) (domain.RunReport, error) {
	var report domain.RunReport

	if p.source == nil {
		return report, fmt.Errorf("no checklist source configured")
	}

	raw, err := p.source.Fetch(ctx)
	if err != nil {
		return report, fmt.Errorf("fetch raw tables: %w", err)
	}
	sortDistribution(raw.Distribution)
	report.DistributionRecords = len(raw.Distribution)

	p.debug("raw tables loaded",
		"distribution", len(raw.Distribution),
		"taxa", len(raw.Taxa),
		"regions", len(raw.Regions),
		"references", len(raw.References))

	aggregated := AggregateReferences(raw.References)

	enriched, err := JoinRecords(raw.Distribution, raw.Taxa, raw.Regions, aggregated)
	if err != nil {
		return report, fmt.Errorf("join records: %w", err)
	}

	validated, unmatched := ValidateTaxa(enriched)
	report.MatchedRecords = len(validated)
	report.Unmatched = unmatched
	for _, name := range unmatched {
		p.warn("scientific name not in reference taxonomy",
			"regional_name", name.ScientificNameRegional,
			"region", name.RegionCode,
			"comments", name.Comments)
	}

	identified := IdentifyTaxa(validated, p.namespace)

	taxa := ProjectTaxa(identified, p.metadata)
	distributions, unknown := ProjectDistributions(identified)
	vernaculars := ProjectVernacularNames(identified)
	report.DistinctTaxa = len(taxa)
	report.UnknownStatusCodes = unknown.Status
	report.UnknownRedListCodes = unknown.RedList

	for code, count := range unknown.Status {
		p.warn("status code not in vocabulary", "code", code, "occurrences", count)
	}
	for code, count := range unknown.RedList {
		p.warn("red-list code not in vocabulary", "code", code, "occurrences", count)
	}
	if p.strictCodes && !unknown.Empty() {
		return report, fmt.Errorf("strict mode: %d status and %d red-list codes missing from the translation tables",
			len(unknown.Status), len(unknown.RedList))
	}

	checklist := domain.Checklist{
		Taxa:            taxa,
		Distributions:   distributions,
		VernacularNames: vernaculars,
	}

	for _, sink := range p.sinks {
		if err := sink.Write(ctx, checklist); err != nil {
			return report, fmt.Errorf("export to %s: %w", sink.Name(), err)
		}
		p.debug("checklist exported", "sink", sink.Name(),
			"taxa", len(taxa), "distributions", len(distributions), "vernaculars", len(vernaculars))
	}

	if p.notifier != nil {
		if err := p.notifier.PublishReport(ctx, buildReportMessage(report)); err != nil {
			return report, fmt.Errorf("publish run report: %w", err)
		}
	}

	return report, nil
}

// sortDistribution fixes the output order to (scientific name, region code)
// so repeated runs produce diffable files.
func sortDistribution(records []domain.RawDistributionRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].ScientificName != records[j].ScientificName {
			return records[i].ScientificName < records[j].ScientificName
		}
		return records[i].RegionCode < records[j].RegionCode
	})
}

func buildReportMessage(report domain.RunReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Checklist mapping finished: %d distribution records, %d matched, %d distinct taxa.\n",
		report.DistributionRecords, report.MatchedRecords, report.DistinctTaxa)

	if len(report.Unmatched) > 0 {
		fmt.Fprintf(&b, "%d records dropped (name not in reference taxonomy):\n", len(report.Unmatched))
		for _, name := range report.Unmatched {
			fmt.Fprintf(&b, "- %s (%s)\n", name.ScientificNameRegional, name.RegionCode)
		}
	}
	for _, code := range sortedKeys(report.UnknownStatusCodes) {
		fmt.Fprintf(&b, "Unknown status code %q seen %d times.\n", code, report.UnknownStatusCodes[code])
	}
	for _, code := range sortedKeys(report.UnknownRedListCodes) {
		fmt.Fprintf(&b, "Unknown red-list code %q seen %d times.\n", code, report.UnknownRedListCodes[code])
	}

	return b.String()
}

func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
