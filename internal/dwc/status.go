package dwc

// occurrenceStatus maps raw checklist status codes to the Darwin Core
// occurrenceStatus vocabulary. "M" maps to the distinct term "migrant"
// rather than being folded into "irregular": migrant status is too
// significant to conflate.
var occurrenceStatus = map[string]string{
	"A":        "absent",
	"Ex":       "absent",
	"Excluded": "excluded",
	"I":        "irregular",
	"M":        "migrant",
	"P":        "present",
	"P?":       "doubtful",
	"P(I)":     "irregular",
}

// OccurrenceStatus translates a raw status code. The second return value is
// false when the code is absent from the vocabulary, in which case the
// result is the empty string and the caller should record the code.
// An empty input code is a legitimate blank, not an unknown.
func OccurrenceStatus(code string) (string, bool) {
	if code == "" {
		return "", true
	}
	term, ok := occurrenceStatus[code]
	return term, ok
}
