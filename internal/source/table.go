package source

import (
	"fmt"
	"strings"

	"ChecklistMapper/internal/domain"
)

// rawTable is a header-addressed view over tabular cells, shared by the CSV
// and HTML sources so both decode into the same record types.
type rawTable struct {
	index map[string]int
	rows  [][]string
}

func newRawTable(header []string, rows [][]string) rawTable {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	return rawTable{index: index, rows: rows}
}

// require verifies that every named column exists in the header.
func (t rawTable) require(table string, columns ...string) error {
	for _, column := range columns {
		if _, ok := t.index[column]; !ok {
			return fmt.Errorf("table %s is missing column %q", table, column)
		}
	}
	return nil
}

// cell returns the trimmed value of a named column in a row, or "" when the
// row is short or the column unknown.
func (t rawTable) cell(row []string, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func decodeDistribution(t rawTable) ([]domain.RawDistributionRecord, error) {
	if err := t.require("distribution",
		"scientific_name_regional", "scientific_name", "region_code", "status", "rlc", "comments"); err != nil {
		return nil, err
	}

	records := make([]domain.RawDistributionRecord, 0, len(t.rows))
	for _, row := range t.rows {
		records = append(records, domain.RawDistributionRecord{
			ScientificNameRegional: t.cell(row, "scientific_name_regional"),
			ScientificName:         t.cell(row, "scientific_name"),
			RegionCode:             t.cell(row, "region_code"),
			Status:                 t.cell(row, "status"),
			RedListCode:            t.cell(row, "rlc"),
			Comments:               t.cell(row, "comments"),
		})
	}
	return records, nil
}

func decodeTaxa(t rawTable) ([]domain.RawTaxonRecord, error) {
	if err := t.require("taxon",
		"scientific_name", "family", "genus", "specific_epithet", "authorship", "english_name"); err != nil {
		return nil, err
	}

	records := make([]domain.RawTaxonRecord, 0, len(t.rows))
	for _, row := range t.rows {
		records = append(records, domain.RawTaxonRecord{
			ScientificName:  t.cell(row, "scientific_name"),
			Family:          t.cell(row, "family"),
			Genus:           t.cell(row, "genus"),
			SpecificEpithet: t.cell(row, "specific_epithet"),
			Authorship:      t.cell(row, "authorship"),
			EnglishName:     t.cell(row, "english_name"),
		})
	}
	return records, nil
}

func decodeRegions(t rawTable) ([]domain.RawRegionRecord, error) {
	if err := t.require("region",
		"region_code", "region_name", "country_code", "country_name"); err != nil {
		return nil, err
	}

	records := make([]domain.RawRegionRecord, 0, len(t.rows))
	for _, row := range t.rows {
		records = append(records, domain.RawRegionRecord{
			RegionCode:  t.cell(row, "region_code"),
			RegionName:  t.cell(row, "region_name"),
			CountryCode: t.cell(row, "country_code"),
			CountryName: t.cell(row, "country_name"),
		})
	}
	return records, nil
}

func decodeReferences(t rawTable) ([]domain.RawReferenceRecord, error) {
	if err := t.require("reference",
		"region_code", "citation", "citation_type"); err != nil {
		return nil, err
	}

	records := make([]domain.RawReferenceRecord, 0, len(t.rows))
	for _, row := range t.rows {
		records = append(records, domain.RawReferenceRecord{
			RegionCode:   t.cell(row, "region_code"),
			Citation:     t.cell(row, "citation"),
			CitationType: t.cell(row, "citation_type"),
		})
	}
	return records, nil
}
