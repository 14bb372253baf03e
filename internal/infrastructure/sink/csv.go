// Package sink holds the export adapters that persist the three final
// tables. Several sinks may be enabled for one run; each receives the same
// immutable checklist snapshot.
package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"ChecklistMapper/internal/domain"
	"ChecklistMapper/internal/ports"
)

// Output column orders are fixed by the exchange schema.
var (
	taxonHeader = []string{
		"language", "license", "rightsHolder", "accessRights", "datasetID",
		"institutionCode", "datasetName", "taxonID", "scientificName",
		"kingdom", "phylum", "class", "order", "family", "genus",
		"specificEpithet", "taxonRank", "scientificNameAuthorship",
		"nomenclaturalCode",
	}
	distributionHeader = []string{
		"taxonID", "locationID", "locality", "countryCode",
		"occurrenceStatus", "threatStatus", "source", "occurrenceRemarks",
	}
	vernacularHeader = []string{"taxonID", "vernacularName", "language"}
)

// CSVSink writes the three tables as delimited files in one directory.
type CSVSink struct {
	dir string
}

var _ ports.ExportSink = (*CSVSink)(nil)

// NewCSVSink targets an output directory, created on first write.
func NewCSVSink(dir string) *CSVSink {
	return &CSVSink{dir: dir}
}

// Name identifies the sink in logs and errors.
func (s *CSVSink) Name() string {
	return "csv"
}

// Write replaces taxon.csv, distribution.csv and vernacularname.csv.
func (s *CSVSink) Write(ctx context.Context, checklist domain.Checklist) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := writeCSVFile(filepath.Join(s.dir, "taxon.csv"), taxonHeader, taxonRecords(checklist.Taxa)); err != nil {
		return err
	}
	if err := writeCSVFile(filepath.Join(s.dir, "distribution.csv"), distributionHeader, distributionRecords(checklist.Distributions)); err != nil {
		return err
	}
	return writeCSVFile(filepath.Join(s.dir, "vernacularname.csv"), vernacularHeader, vernacularRecords(checklist.VernacularNames))
}

func writeCSVFile(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row to %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	return nil
}

func taxonRecords(rows []domain.TaxonRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Language, r.License, r.RightsHolder, r.AccessRights,
			r.DatasetID, r.InstitutionCode, r.DatasetName, r.TaxonID,
			r.ScientificName, r.Kingdom, r.Phylum, r.Class, r.Order,
			r.Family, r.Genus, r.SpecificEpithet, r.TaxonRank,
			r.ScientificNameAuthorship, r.NomenclaturalCode,
		})
	}
	return records
}

func distributionRecords(rows []domain.DistributionRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.TaxonID, r.LocationID, r.Locality, r.CountryCode,
			r.OccurrenceStatus, r.ThreatStatus, r.Source, r.OccurrenceRemarks,
		})
	}
	return records
}

func vernacularRecords(rows []domain.VernacularNameRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.TaxonID, r.VernacularName, r.Language})
	}
	return records
}
