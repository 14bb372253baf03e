package usecase

import (
	"sort"
	"strings"

	"ChecklistMapper/internal/domain"
)

const citationSeparator = " | "

// AggregateReferences collapses the reference table into one citation string
// per region: citations are sorted by (citation_type, citation), deduplicated
// by citation text in that order, and joined with " | ". Regions without
// reference rows produce no aggregate. The result is sorted by region code.
func AggregateReferences(refs []domain.RawReferenceRecord) []domain.AggregatedReference {
	byRegion := make(map[string][]domain.RawReferenceRecord)
	for _, ref := range refs {
		byRegion[ref.RegionCode] = append(byRegion[ref.RegionCode], ref)
	}

	aggregated := make([]domain.AggregatedReference, 0, len(byRegion))
	for regionCode, regionRefs := range byRegion {
		sort.SliceStable(regionRefs, func(i, j int) bool {
			if regionRefs[i].CitationType != regionRefs[j].CitationType {
				return regionRefs[i].CitationType < regionRefs[j].CitationType
			}
			return regionRefs[i].Citation < regionRefs[j].Citation
		})

		seen := make(map[string]struct{}, len(regionRefs))
		citations := make([]string, 0, len(regionRefs))
		for _, ref := range regionRefs {
			if _, ok := seen[ref.Citation]; ok {
				continue
			}
			seen[ref.Citation] = struct{}{}
			citations = append(citations, ref.Citation)
		}

		aggregated = append(aggregated, domain.AggregatedReference{
			RegionCode: regionCode,
			Reference:  strings.Join(citations, citationSeparator),
		})
	}

	sort.Slice(aggregated, func(i, j int) bool {
		return aggregated[i].RegionCode < aggregated[j].RegionCode
	})

	return aggregated
}
