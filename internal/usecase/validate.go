package usecase

import "ChecklistMapper/internal/domain"

// ValidateTaxa keeps records whose scientific name matched an accepted taxon
// and returns the rest as unmatched names for reporting. The checklist is
// restricted to names accepted by the reference taxonomy; everything else is
// out-of-scope data, not an error.
func ValidateTaxa(records []domain.EnrichedRecord) ([]domain.EnrichedRecord, []domain.UnmatchedName) {
	kept := make([]domain.EnrichedRecord, 0, len(records))
	var unmatched []domain.UnmatchedName

	for _, record := range records {
		if record.Taxon == nil {
			unmatched = append(unmatched, domain.UnmatchedName{
				ScientificNameRegional: record.Distribution.ScientificNameRegional,
				ScientificName:         record.Distribution.ScientificName,
				RegionCode:             record.Distribution.RegionCode,
				Comments:               record.Distribution.Comments,
			})
			continue
		}
		kept = append(kept, record)
	}

	return kept, unmatched
}
