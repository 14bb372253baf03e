package usecase

import (
	"crypto/md5"
	"encoding/hex"

	"ChecklistMapper/internal/domain"
)

// TaxonID derives the stable, content-addressed identifier for a scientific
// name: "<namespace>:taxon:" plus the hex MD5 of the name. MD5 is a stable
// fingerprint of a short string here, not a security control; collisions are
// negligible at a few hundred distinct names. Unlike sequence numbers the id
// does not shift when other taxa are added or removed.
func TaxonID(namespace, scientificName string) string {
	sum := md5.Sum([]byte(scientificName))
	return namespace + ":taxon:" + hex.EncodeToString(sum[:])
}

// IdentifyTaxa attaches a taxon id to every validated record. Records that
// share a scientific name always share an id.
func IdentifyTaxa(records []domain.EnrichedRecord, namespace string) []domain.IdentifiedRecord {
	ids := make(map[string]string)
	identified := make([]domain.IdentifiedRecord, 0, len(records))

	for _, record := range records {
		name := record.Distribution.ScientificName
		id, ok := ids[name]
		if !ok {
			id = TaxonID(namespace, name)
			ids[name] = id
		}
		identified = append(identified, domain.IdentifiedRecord{
			EnrichedRecord: record,
			TaxonID:        id,
		})
	}

	return identified
}
