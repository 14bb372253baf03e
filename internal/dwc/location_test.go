package dwc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationIDCountryCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ISO_3166:BE", LocationID("BE"))
	assert.Equal(t, "ISO_3166:NL", LocationID("NL"))
}

func TestLocationIDPseudoRegionsHaveNoIdentifier(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"Europe", "EU27", "EU28"} {
		assert.Empty(t, LocationID(code), "code %s", code)
	}
}

func TestLocationIDIslandRegions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http://marineregions.org/mrgid/2462", LocationID("MA_AZ_Corvo"))
	assert.Equal(t, "http://marineregions.org/mrgid/3750", LocationID("MA_CAN_Tenerife"))
	assert.Equal(t, "http://marineregions.org/mrgid/4956", LocationID("MA_MAD_Madeira"))
}

func TestLocalityCountryLevelUsesCountryName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Belgium", Locality("BE", "", "Belgium"))
}

func TestLocalityIslandRegionsQualifiedByArchipelago(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Azores, Corvo", Locality("MA_AZ_Corvo", "Corvo", "Portugal"))
	assert.Equal(t, "Canary Islands, Tenerife", Locality("MA_CAN_Tenerife", "Tenerife", "Spain"))
	assert.Equal(t, "Madeira, Porto Santo", Locality("MA_MAD_Porto_Santo", "Porto Santo", "Portugal"))
}

func TestLocalityNamedRegionVerbatim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Europe", Locality("Europe", "Europe", ""))
	assert.Equal(t, "Crete", Locality("GR_Crete", "Crete", "Greece"))
}

func TestEveryIslandHasArchipelagoAndMRGID(t *testing.T) {
	t.Parallel()

	for code, island := range islandRegions {
		assert.NotEmpty(t, island.Archipelago, "archipelago for %s", code)
		assert.Contains(t, island.MRGID, "http://marineregions.org/mrgid/", "mrgid for %s", code)
	}
}
