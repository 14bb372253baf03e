package usecase

import (
	"fmt"
	"strings"

	"ChecklistMapper/internal/domain"
	"ChecklistMapper/internal/dwc"
)

// Fixed taxonomy constants: the checklist covers butterfly species only.
const (
	kingdom           = "Animalia"
	phylum            = "Arthropoda"
	class             = "Insecta"
	order             = "Lepidoptera"
	taxonRank         = "species"
	nomenclaturalCode = "ICZN"
)

// Vernacular names flagged as provisional carry this marker in the source.
const suggestionMarker = "suggestion"

// UnknownCodes tallies categorical codes that fell outside the translation
// tables while projecting the Distribution table.
type UnknownCodes struct {
	Status  map[string]int
	RedList map[string]int
}

// Empty reports whether no unknown codes were seen.
func (u UnknownCodes) Empty() bool {
	return len(u.Status) == 0 && len(u.RedList) == 0
}

// ProjectTaxa builds the Taxon table: one row per distinct taxon id, first
// occurrence wins. All occurrences of a name share identical taxon
// attributes by construction, so the choice is immaterial.
func ProjectTaxa(records []domain.IdentifiedRecord, meta domain.DatasetMetadata) []domain.TaxonRow {
	seen := make(map[string]struct{})
	rows := make([]domain.TaxonRow, 0)

	for _, record := range records {
		if _, ok := seen[record.TaxonID]; ok {
			continue
		}
		seen[record.TaxonID] = struct{}{}

		rows = append(rows, domain.TaxonRow{
			Language:                 meta.Language,
			License:                  meta.License,
			RightsHolder:             meta.RightsHolder,
			AccessRights:             meta.AccessRights,
			DatasetID:                meta.DatasetID,
			InstitutionCode:          meta.InstitutionCode,
			DatasetName:              meta.DatasetName,
			TaxonID:                  record.TaxonID,
			ScientificName:           record.Taxon.ScientificName,
			Kingdom:                  kingdom,
			Phylum:                   phylum,
			Class:                    class,
			Order:                    order,
			Family:                   record.Taxon.Family,
			Genus:                    record.Taxon.Genus,
			SpecificEpithet:          record.Taxon.SpecificEpithet,
			TaxonRank:                taxonRank,
			ScientificNameAuthorship: record.Taxon.Authorship,
			NomenclaturalCode:        nomenclaturalCode,
		})
	}

	return rows
}

// ProjectDistributions builds the Distribution table: one row per record, no
// deduplication. Status and red-list codes are translated through the static
// vocabularies; codes outside the tables map to the empty string and are
// tallied so the tables can be extended.
func ProjectDistributions(records []domain.IdentifiedRecord) ([]domain.DistributionRow, UnknownCodes) {
	unknown := UnknownCodes{
		Status:  make(map[string]int),
		RedList: make(map[string]int),
	}

	rows := make([]domain.DistributionRow, 0, len(records))
	for _, record := range records {
		dist := record.Distribution

		status, ok := dwc.OccurrenceStatus(dist.Status)
		if !ok {
			unknown.Status[dist.Status]++
		}
		threat, ok := dwc.ThreatStatus(dist.RedListCode)
		if !ok {
			unknown.RedList[dist.RedListCode]++
		}

		var regionName, countryName, countryCode string
		if record.Region != nil {
			regionName = record.Region.RegionName
			countryName = record.Region.CountryName
			countryCode = record.Region.CountryCode
		}

		var remarks string
		if dist.ScientificNameRegional != dist.ScientificName {
			remarks = fmt.Sprintf("In source as '%s'", dist.ScientificNameRegional)
		}

		rows = append(rows, domain.DistributionRow{
			TaxonID:           record.TaxonID,
			LocationID:        dwc.LocationID(dist.RegionCode),
			Locality:          dwc.Locality(dist.RegionCode, regionName, countryName),
			CountryCode:       countryCode,
			OccurrenceStatus:  status,
			ThreatStatus:      threat,
			Source:            record.Reference,
			OccurrenceRemarks: remarks,
		})
	}

	return rows, unknown
}

// ProjectVernacularNames builds the VernacularName table: one row per
// distinct taxon id, skipping taxa whose english name is empty or flagged as
// a provisional suggestion.
func ProjectVernacularNames(records []domain.IdentifiedRecord) []domain.VernacularNameRow {
	seen := make(map[string]struct{})
	rows := make([]domain.VernacularNameRow, 0)

	for _, record := range records {
		if _, ok := seen[record.TaxonID]; ok {
			continue
		}
		seen[record.TaxonID] = struct{}{}

		name := record.Taxon.EnglishName
		if name == "" || strings.Contains(name, suggestionMarker) {
			continue
		}

		rows = append(rows, domain.VernacularNameRow{
			TaxonID:        record.TaxonID,
			VernacularName: name,
			Language:       "en",
		})
	}

	return rows
}
