package dwc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccurrenceStatusVocabulary(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"A":        "absent",
		"Ex":       "absent",
		"Excluded": "excluded",
		"I":        "irregular",
		"M":        "migrant",
		"P":        "present",
		"P?":       "doubtful",
		"P(I)":     "irregular",
	}

	for code, want := range cases {
		got, ok := OccurrenceStatus(code)
		assert.True(t, ok, "code %s", code)
		assert.Equal(t, want, got, "code %s", code)
	}
}

func TestOccurrenceStatusUnknownCode(t *testing.T) {
	t.Parallel()

	got, ok := OccurrenceStatus("Q")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestOccurrenceStatusBlankIsNotUnknown(t *testing.T) {
	t.Parallel()

	got, ok := OccurrenceStatus("")
	assert.True(t, ok)
	assert.Empty(t, got)
}
