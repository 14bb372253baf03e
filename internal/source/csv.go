package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"ChecklistMapper/internal/config"
	"ChecklistMapper/internal/domain"
	"ChecklistMapper/internal/ports"
)

// CSVSource reads the four raw tables from delimited files.
type CSVSource struct {
	cfg    config.CSVSourceConfig
	logger *slog.Logger
}

var _ ports.ChecklistSource = (*CSVSource)(nil)

// NewCSVSource wires the configured file paths.
func NewCSVSource(cfg config.CSVSourceConfig, log *slog.Logger) *CSVSource {
	return &CSVSource{cfg: cfg, logger: log}
}

// Fetch loads and decodes all four tables.
func (s *CSVSource) Fetch(ctx context.Context) (domain.RawTables, error) {
	var tables domain.RawTables

	dist, err := readCSVTable(s.cfg.DistributionPath)
	if err != nil {
		return tables, fmt.Errorf("distribution table: %w", err)
	}
	if tables.Distribution, err = decodeDistribution(dist); err != nil {
		return tables, err
	}

	taxa, err := readCSVTable(s.cfg.TaxonPath)
	if err != nil {
		return tables, fmt.Errorf("taxon table: %w", err)
	}
	if tables.Taxa, err = decodeTaxa(taxa); err != nil {
		return tables, err
	}

	regions, err := readCSVTable(s.cfg.RegionPath)
	if err != nil {
		return tables, fmt.Errorf("region table: %w", err)
	}
	if tables.Regions, err = decodeRegions(regions); err != nil {
		return tables, err
	}

	refs, err := readCSVTable(s.cfg.ReferencePath)
	if err != nil {
		return tables, fmt.Errorf("reference table: %w", err)
	}
	if tables.References, err = decodeReferences(refs); err != nil {
		return tables, err
	}

	if s.logger != nil {
		s.logger.Debug("csv source loaded",
			"distribution", len(tables.Distribution),
			"taxa", len(tables.Taxa),
			"regions", len(tables.Regions),
			"references", len(tables.References))
	}

	return tables, nil
}

func readCSVTable(path string) (rawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return rawTable{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return rawTable{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return rawTable{}, fmt.Errorf("read %s: file has no header row", path)
	}

	return newRawTable(rows[0], rows[1:]), nil
}
