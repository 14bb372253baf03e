package sink

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"ChecklistMapper/internal/domain"
	"ChecklistMapper/internal/ports"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS taxon (
    language TEXT, license TEXT, rights_holder TEXT, access_rights TEXT,
    dataset_id TEXT, institution_code TEXT, dataset_name TEXT,
    taxon_id TEXT PRIMARY KEY, scientific_name TEXT,
    kingdom TEXT, phylum TEXT, class TEXT, taxon_order TEXT, family TEXT,
    genus TEXT, specific_epithet TEXT, taxon_rank TEXT,
    scientific_name_authorship TEXT, nomenclatural_code TEXT
);
CREATE TABLE IF NOT EXISTS distribution (
    id SERIAL PRIMARY KEY, taxon_id TEXT, location_id TEXT, locality TEXT,
    country_code TEXT, occurrence_status TEXT, threat_status TEXT,
    source TEXT, occurrence_remarks TEXT
);
CREATE TABLE IF NOT EXISTS vernacular_name (
    taxon_id TEXT PRIMARY KEY, vernacular_name TEXT, language TEXT
);`

// PostgresSink rewrites the three tables in Postgres on every run.
type PostgresSink struct {
	dsn string
}

var _ ports.ExportSink = (*PostgresSink)(nil)

// NewPostgresSink targets a connection string, opened on write.
func NewPostgresSink(dsn string) *PostgresSink {
	return &PostgresSink{dsn: dsn}
}

// Name identifies the sink in logs and errors.
func (s *PostgresSink) Name() string {
	return "postgres"
}

// Write creates the schema if needed, truncates the tables, and inserts the
// snapshot in one transaction.
func (s *PostgresSink) Write(ctx context.Context, checklist domain.Checklist) error {
	db, err := sql.Open("postgres", s.dsn)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `TRUNCATE taxon, distribution, vernacular_name`); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(tx)

	for _, row := range checklist.Taxa {
		_, err := builder.Insert("taxon").
			Columns("language", "license", "rights_holder", "access_rights",
				"dataset_id", "institution_code", "dataset_name", "taxon_id",
				"scientific_name", "kingdom", "phylum", "class", "taxon_order",
				"family", "genus", "specific_epithet", "taxon_rank",
				"scientific_name_authorship", "nomenclatural_code").
			Values(row.Language, row.License, row.RightsHolder, row.AccessRights,
				row.DatasetID, row.InstitutionCode, row.DatasetName, row.TaxonID,
				row.ScientificName, row.Kingdom, row.Phylum, row.Class, row.Order,
				row.Family, row.Genus, row.SpecificEpithet, row.TaxonRank,
				row.ScientificNameAuthorship, row.NomenclaturalCode).
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("insert taxon %s: %w", row.TaxonID, err)
		}
	}

	for _, row := range checklist.Distributions {
		_, err := builder.Insert("distribution").
			Columns("taxon_id", "location_id", "locality", "country_code",
				"occurrence_status", "threat_status", "source", "occurrence_remarks").
			Values(row.TaxonID, row.LocationID, row.Locality, row.CountryCode,
				row.OccurrenceStatus, row.ThreatStatus, row.Source, row.OccurrenceRemarks).
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("insert distribution %s/%s: %w", row.TaxonID, row.Locality, err)
		}
	}

	for _, row := range checklist.VernacularNames {
		_, err := builder.Insert("vernacular_name").
			Columns("taxon_id", "vernacular_name", "language").
			Values(row.TaxonID, row.VernacularName, row.Language).
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("insert vernacular name %s: %w", row.TaxonID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
