package sink

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ChecklistMapper/internal/domain"
	"ChecklistMapper/internal/ports"
)

// taxonModel mirrors domain.TaxonRow with database column names.
type taxonModel struct {
	Language                 string `gorm:"column:language"`
	License                  string `gorm:"column:license"`
	RightsHolder             string `gorm:"column:rights_holder"`
	AccessRights             string `gorm:"column:access_rights"`
	DatasetID                string `gorm:"column:dataset_id"`
	InstitutionCode          string `gorm:"column:institution_code"`
	DatasetName              string `gorm:"column:dataset_name"`
	TaxonID                  string `gorm:"column:taxon_id;primaryKey"`
	ScientificName           string `gorm:"column:scientific_name;index"`
	Kingdom                  string `gorm:"column:kingdom"`
	Phylum                   string `gorm:"column:phylum"`
	Class                    string `gorm:"column:class"`
	Order                    string `gorm:"column:taxon_order"`
	Family                   string `gorm:"column:family"`
	Genus                    string `gorm:"column:genus"`
	SpecificEpithet          string `gorm:"column:specific_epithet"`
	TaxonRank                string `gorm:"column:taxon_rank"`
	ScientificNameAuthorship string `gorm:"column:scientific_name_authorship"`
	NomenclaturalCode        string `gorm:"column:nomenclatural_code"`
}

func (taxonModel) TableName() string { return "taxon" }

type distributionModel struct {
	ID                uint   `gorm:"column:id;primaryKey;autoIncrement"`
	TaxonID           string `gorm:"column:taxon_id;index"`
	LocationID        string `gorm:"column:location_id"`
	Locality          string `gorm:"column:locality"`
	CountryCode       string `gorm:"column:country_code"`
	OccurrenceStatus  string `gorm:"column:occurrence_status"`
	ThreatStatus      string `gorm:"column:threat_status"`
	Source            string `gorm:"column:source"`
	OccurrenceRemarks string `gorm:"column:occurrence_remarks"`
}

func (distributionModel) TableName() string { return "distribution" }

type vernacularModel struct {
	TaxonID        string `gorm:"column:taxon_id;primaryKey"`
	VernacularName string `gorm:"column:vernacular_name"`
	Language       string `gorm:"column:language"`
}

func (vernacularModel) TableName() string { return "vernacular_name" }

// SQLiteSink rewrites the three tables in a SQLite database on every run;
// the pipeline is a full recomputation, so previous rows are dropped first.
type SQLiteSink struct {
	path string
}

var _ ports.ExportSink = (*SQLiteSink)(nil)

// NewSQLiteSink targets a database file, opened on write.
func NewSQLiteSink(path string) *SQLiteSink {
	return &SQLiteSink{path: path}
}

// Name identifies the sink in logs and errors.
func (s *SQLiteSink) Name() string {
	return "sqlite"
}

// Write migrates the schema, truncates the tables, and inserts the snapshot
// in one transaction.
func (s *SQLiteSink) Write(ctx context.Context, checklist domain.Checklist) error {
	db, err := gorm.Open(sqlite.Open(s.path), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&taxonModel{}, &distributionModel{}, &vernacularModel{}); err != nil {
		return fmt.Errorf("migrate sqlite schema: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&taxonModel{}, &distributionModel{}, &vernacularModel{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("truncate table: %w", err)
			}
		}

		if len(checklist.Taxa) > 0 {
			if err := tx.CreateInBatches(taxonModels(checklist.Taxa), 200).Error; err != nil {
				return fmt.Errorf("insert taxa: %w", err)
			}
		}
		if len(checklist.Distributions) > 0 {
			if err := tx.CreateInBatches(distributionModels(checklist.Distributions), 200).Error; err != nil {
				return fmt.Errorf("insert distributions: %w", err)
			}
		}
		if len(checklist.VernacularNames) > 0 {
			if err := tx.CreateInBatches(vernacularModels(checklist.VernacularNames), 200).Error; err != nil {
				return fmt.Errorf("insert vernacular names: %w", err)
			}
		}

		return nil
	})
}

func taxonModels(rows []domain.TaxonRow) []taxonModel {
	models := make([]taxonModel, 0, len(rows))
	for _, r := range rows {
		models = append(models, taxonModel(r))
	}
	return models
}

func distributionModels(rows []domain.DistributionRow) []distributionModel {
	models := make([]distributionModel, 0, len(rows))
	for _, r := range rows {
		models = append(models, distributionModel{
			TaxonID:           r.TaxonID,
			LocationID:        r.LocationID,
			Locality:          r.Locality,
			CountryCode:       r.CountryCode,
			OccurrenceStatus:  r.OccurrenceStatus,
			ThreatStatus:      r.ThreatStatus,
			Source:            r.Source,
			OccurrenceRemarks: r.OccurrenceRemarks,
		})
	}
	return models
}

func vernacularModels(rows []domain.VernacularNameRow) []vernacularModel {
	models := make([]vernacularModel, 0, len(rows))
	for _, r := range rows {
		models = append(models, vernacularModel(r))
	}
	return models
}
