package dwc

// threatStatus normalizes regional red-list codes. Standard IUCN categories
// pass through unchanged; informal codes are normalized or blanked.
var threatStatus = map[string]string{
	"RE":      "RE",
	"CR":      "CR",
	"EN":      "EN",
	"VU":      "VU",
	"NT":      "NT",
	"LC":      "LC",
	"DD":      "DD",
	"NE":      "NE",
	"NtA":     "NA",
	"NRLA":    "",
	"R":       "Rare",
	"Unknown": "unknown",
	"LC/NE":   "NE",
}

// ThreatStatus translates a raw red-list code. The second return value is
// false for codes absent from the table; the result then defaults to the
// empty string and the caller should record the code. An empty input code
// is a legitimate blank, not an unknown.
func ThreatStatus(code string) (string, bool) {
	if code == "" {
		return "", true
	}
	term, ok := threatStatus[code]
	return term, ok
}
