package domain

// RawDistributionRecord is one occurrence claim: a scientific name as it
// appears in the regional checklist, for one region.
type RawDistributionRecord struct {
	ScientificNameRegional string
	ScientificName         string
	RegionCode             string
	Status                 string
	RedListCode            string
	Comments               string
}

// RawTaxonRecord is one accepted taxon from the reference taxonomy,
// keyed by scientific name.
type RawTaxonRecord struct {
	ScientificName  string
	Family          string
	Genus           string
	SpecificEpithet string
	Authorship      string
	EnglishName     string
}

// RawRegionRecord describes one region, keyed by region code.
type RawRegionRecord struct {
	RegionCode  string
	RegionName  string
	CountryCode string
	CountryName string
}

// RawReferenceRecord is one bibliographic citation backing a region's
// checklist; CitationType distinguishes species-list from red-list sources.
type RawReferenceRecord struct {
	RegionCode   string
	Citation     string
	CitationType string
}

// RawTables bundles the four input tables delivered by a source.
type RawTables struct {
	Distribution []RawDistributionRecord
	Taxa         []RawTaxonRecord
	Regions      []RawRegionRecord
	References   []RawReferenceRecord
}

// AggregatedReference is the deduplicated, ordered citation string for one
// region, built from all of its reference rows.
type AggregatedReference struct {
	RegionCode string
	Reference  string
}

// EnrichedRecord is a distribution record left-joined with its taxon,
// region and aggregated reference. Unmatched sides stay nil/empty.
type EnrichedRecord struct {
	Distribution RawDistributionRecord
	Taxon        *RawTaxonRecord
	Region       *RawRegionRecord
	Reference    string
}

// IdentifiedRecord is a validated record carrying its derived taxon id.
type IdentifiedRecord struct {
	EnrichedRecord
	TaxonID string
}

// TaxonRow is one row of the Taxon output table, one per distinct taxon id.
type TaxonRow struct {
	Language                 string
	License                  string
	RightsHolder             string
	AccessRights             string
	DatasetID                string
	InstitutionCode          string
	DatasetName              string
	TaxonID                  string
	ScientificName           string
	Kingdom                  string
	Phylum                   string
	Class                    string
	Order                    string
	Family                   string
	Genus                    string
	SpecificEpithet          string
	TaxonRank                string
	ScientificNameAuthorship string
	NomenclaturalCode        string
}

// DistributionRow is one row of the Distribution output table, one per
// (taxon, region) occurrence claim.
type DistributionRow struct {
	TaxonID           string
	LocationID        string
	Locality          string
	CountryCode       string
	OccurrenceStatus  string
	ThreatStatus      string
	Source            string
	OccurrenceRemarks string
}

// VernacularNameRow is one row of the VernacularName output table.
type VernacularNameRow struct {
	TaxonID        string
	VernacularName string
	Language       string
}

// Checklist bundles the three final output tables handed to sinks.
type Checklist struct {
	Taxa            []TaxonRow
	Distributions   []DistributionRow
	VernacularNames []VernacularNameRow
}

// DatasetMetadata holds the constant dataset identity stamped onto every
// Taxon row. Injected from configuration so the identity can change without
// touching mapping logic.
type DatasetMetadata struct {
	Language        string
	License         string
	RightsHolder    string
	AccessRights    string
	DatasetID       string
	InstitutionCode string
	DatasetName     string
}

// UnmatchedName identifies a distribution record whose scientific name is
// not in the reference taxonomy; reported, then excluded from output.
type UnmatchedName struct {
	ScientificNameRegional string
	ScientificName         string
	RegionCode             string
	Comments               string
}

// RunReport accumulates per-run counts and data-quality findings.
type RunReport struct {
	DistributionRecords int
	MatchedRecords      int
	DistinctTaxa        int
	Unmatched           []UnmatchedName
	UnknownStatusCodes  map[string]int
	UnknownRedListCodes map[string]int
}

// HasUnknownCodes reports whether any categorical code fell outside the
// translation tables during this run.
func (r RunReport) HasUnknownCodes() bool {
	return len(r.UnknownStatusCodes) > 0 || len(r.UnknownRedListCodes) > 0
}
