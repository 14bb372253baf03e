// Package dwc holds the static vocabularies that translate raw checklist
// codes into Darwin Core terms and identifiers. Each table is a finite
// mapping with a documented default for unmapped input; callers are expected
// to count unmapped codes so the tables can be extended.
package dwc

// Pseudo-region codes denote continent-level or supranational aggregates
// with no geopolitical identifier of their own.
var pseudoRegions = map[string]struct{}{
	"Europe": {},
	"EU27":   {},
	"EU28":   {},
}

type islandRegion struct {
	Archipelago string
	MRGID       string
}

// Macaronesian island regions are not covered by ISO 3166; they map to
// fixed Marine Regions gazetteer identifiers.
var islandRegions = map[string]islandRegion{
	// Azores
	"MA_AZ_Corvo":       {"Azores", "http://marineregions.org/mrgid/2462"},
	"MA_AZ_Faial":       {"Azores", "http://marineregions.org/mrgid/2463"},
	"MA_AZ_Flores":      {"Azores", "http://marineregions.org/mrgid/2464"},
	"MA_AZ_Graciosa":    {"Azores", "http://marineregions.org/mrgid/2465"},
	"MA_AZ_Pico":        {"Azores", "http://marineregions.org/mrgid/2466"},
	"MA_AZ_Santa_Maria": {"Azores", "http://marineregions.org/mrgid/2467"},
	"MA_AZ_Sao_Jorge":   {"Azores", "http://marineregions.org/mrgid/2468"},
	"MA_AZ_Sao_Miguel":  {"Azores", "http://marineregions.org/mrgid/2469"},
	"MA_AZ_Terceira":    {"Azores", "http://marineregions.org/mrgid/2470"},
	// Madeira
	"MA_MAD_Desertas":    {"Madeira", "http://marineregions.org/mrgid/4955"},
	"MA_MAD_Madeira":     {"Madeira", "http://marineregions.org/mrgid/4956"},
	"MA_MAD_Porto_Santo": {"Madeira", "http://marineregions.org/mrgid/4957"},
	"MA_MAD_Selvagens":   {"Madeira", "http://marineregions.org/mrgid/4958"},
	// Canary Islands
	"MA_CAN_El_Hierro":     {"Canary Islands", "http://marineregions.org/mrgid/3743"},
	"MA_CAN_Fuerteventura": {"Canary Islands", "http://marineregions.org/mrgid/3744"},
	"MA_CAN_Gran_Canaria":  {"Canary Islands", "http://marineregions.org/mrgid/3745"},
	"MA_CAN_La_Gomera":     {"Canary Islands", "http://marineregions.org/mrgid/3746"},
	"MA_CAN_La_Graciosa":   {"Canary Islands", "http://marineregions.org/mrgid/3747"},
	"MA_CAN_La_Palma":      {"Canary Islands", "http://marineregions.org/mrgid/3748"},
	"MA_CAN_Lanzarote":     {"Canary Islands", "http://marineregions.org/mrgid/3749"},
	"MA_CAN_Tenerife":      {"Canary Islands", "http://marineregions.org/mrgid/3750"},
}

// LocationID returns the Darwin Core locationID for a region code.
// Pseudo-regions have none, island regions use Marine Regions identifiers,
// everything else is an ISO 3166 reference built from the code itself.
func LocationID(regionCode string) string {
	if _, ok := pseudoRegions[regionCode]; ok {
		return ""
	}
	if island, ok := islandRegions[regionCode]; ok {
		return island.MRGID
	}
	return "ISO_3166:" + regionCode
}

// Locality returns the human-readable locality for a region. Country-level
// entries carry no region name and use the country name; island regions are
// qualified with their archipelago; all other regions use the region name
// verbatim.
func Locality(regionCode, regionName, countryName string) string {
	if island, ok := islandRegions[regionCode]; ok {
		return island.Archipelago + ", " + regionName
	}
	if regionName == "" {
		return countryName
	}
	return regionName
}
