package sink

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChecklistMapper/internal/domain"
)

func checklistFixture() domain.Checklist {
	return domain.Checklist{
		Taxa: []domain.TaxonRow{
			{
				Language: "en", License: "CC0", RightsHolder: "BCE",
				AccessRights: "open", DatasetID: "doi:x", InstitutionCode: "BCE",
				DatasetName: "Checklist", TaxonID: "ns:taxon:aaa",
				ScientificName: "Pieris brassicae", Kingdom: "Animalia",
				Phylum: "Arthropoda", Class: "Insecta", Order: "Lepidoptera",
				Family: "Pieridae", Genus: "Pieris", SpecificEpithet: "brassicae",
				TaxonRank: "species", ScientificNameAuthorship: "(Linnaeus, 1758)",
				NomenclaturalCode: "ICZN",
			},
		},
		Distributions: []domain.DistributionRow{
			{
				TaxonID: "ns:taxon:aaa", LocationID: "ISO_3166:BE",
				Locality: "Belgium", CountryCode: "BE",
				OccurrenceStatus: "present", ThreatStatus: "LC",
				Source: "Maes 2019", OccurrenceRemarks: "",
			},
		},
		VernacularNames: []domain.VernacularNameRow{
			{TaxonID: "ns:taxon:aaa", VernacularName: "Large White", Language: "en"},
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVSinkWritesThreeTables(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewCSVSink(dir)

	require.NoError(t, s.Write(context.Background(), checklistFixture()))

	taxon := readCSV(t, filepath.Join(dir, "taxon.csv"))
	require.Len(t, taxon, 2)
	assert.Equal(t, []string{
		"language", "license", "rightsHolder", "accessRights", "datasetID",
		"institutionCode", "datasetName", "taxonID", "scientificName",
		"kingdom", "phylum", "class", "order", "family", "genus",
		"specificEpithet", "taxonRank", "scientificNameAuthorship",
		"nomenclaturalCode",
	}, taxon[0])
	assert.Equal(t, "Pieris brassicae", taxon[1][8])

	distribution := readCSV(t, filepath.Join(dir, "distribution.csv"))
	require.Len(t, distribution, 2)
	assert.Equal(t, []string{
		"taxonID", "locationID", "locality", "countryCode",
		"occurrenceStatus", "threatStatus", "source", "occurrenceRemarks",
	}, distribution[0])
	assert.Equal(t, []string{
		"ns:taxon:aaa", "ISO_3166:BE", "Belgium", "BE",
		"present", "LC", "Maes 2019", "",
	}, distribution[1])

	vernacular := readCSV(t, filepath.Join(dir, "vernacularname.csv"))
	require.Len(t, vernacular, 2)
	assert.Equal(t, []string{"taxonID", "vernacularName", "language"}, vernacular[0])
	assert.Equal(t, []string{"ns:taxon:aaa", "Large White", "en"}, vernacular[1])
}

func TestCSVSinkOverwritesPreviousRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewCSVSink(dir)
	checklist := checklistFixture()

	require.NoError(t, s.Write(context.Background(), checklist))
	require.NoError(t, s.Write(context.Background(), checklist))

	distribution := readCSV(t, filepath.Join(dir, "distribution.csv"))
	assert.Len(t, distribution, 2, "header plus one row, not appended")
}

func TestCSVSinkCreatesOutputDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "out")
	s := NewCSVSink(dir)

	require.NoError(t, s.Write(context.Background(), checklistFixture()))

	_, err := os.Stat(filepath.Join(dir, "taxon.csv"))
	assert.NoError(t, err)
}
