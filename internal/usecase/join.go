package usecase

import (
	"fmt"

	"ChecklistMapper/internal/domain"
)

// JoinRecords left-joins distribution records onto the taxon table (by
// scientific name), the region table (by region code) and the aggregated
// references (by region code). Unmatched sides stay nil/empty; no input row
// is dropped. Lookup sides are grouped as multimaps so duplicate keys fan
// out visibly, and the row-count postcondition turns any fan-out into an
// error: the lookup tables are then not a valid 1:1 key space, which is a
// configuration fault, not recoverable data.
func JoinRecords(
	distribution []domain.RawDistributionRecord,
	taxa []domain.RawTaxonRecord,
	regions []domain.RawRegionRecord,
	references []domain.AggregatedReference,
) ([]domain.EnrichedRecord, error) {
	taxaByName := make(map[string][]*domain.RawTaxonRecord, len(taxa))
	for i := range taxa {
		taxaByName[taxa[i].ScientificName] = append(taxaByName[taxa[i].ScientificName], &taxa[i])
	}

	regionsByCode := make(map[string][]*domain.RawRegionRecord, len(regions))
	for i := range regions {
		regionsByCode[regions[i].RegionCode] = append(regionsByCode[regions[i].RegionCode], &regions[i])
	}

	referencesByCode := make(map[string][]string, len(references))
	for _, ref := range references {
		referencesByCode[ref.RegionCode] = append(referencesByCode[ref.RegionCode], ref.Reference)
	}

	enriched := make([]domain.EnrichedRecord, 0, len(distribution))
	for _, dist := range distribution {
		matchedTaxa := taxaByName[dist.ScientificName]
		if len(matchedTaxa) == 0 {
			matchedTaxa = []*domain.RawTaxonRecord{nil}
		}
		matchedRegions := regionsByCode[dist.RegionCode]
		if len(matchedRegions) == 0 {
			matchedRegions = []*domain.RawRegionRecord{nil}
		}
		matchedRefs := referencesByCode[dist.RegionCode]
		if len(matchedRefs) == 0 {
			matchedRefs = []string{""}
		}

		for _, taxon := range matchedTaxa {
			for _, region := range matchedRegions {
				for _, reference := range matchedRefs {
					enriched = append(enriched, domain.EnrichedRecord{
						Distribution: dist,
						Taxon:        taxon,
						Region:       region,
						Reference:    reference,
					})
				}
			}
		}
	}

	if len(enriched) != len(distribution) {
		return nil, fmt.Errorf("join produced %d rows from %d distribution records: duplicate keys in the taxon, region, or reference table",
			len(enriched), len(distribution))
	}

	return enriched, nil
}
