package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMergedEntry_CopiesMeanings(t *testing.T) {
	t.Parallel()

	src := []string{"n. chat", "v. aimer"}
	m := NewMergedEntry(NormalizedEntry{Headword: "cafe", Phonetic: "kæˈfeɪ", Meanings: src})

	src[0] = "mutated"
	assert.Equal(t, []string{"n. chat", "v. aimer"}, m.Meanings())
	assert.Equal(t, "kæˈfeɪ", m.Phonetic())
}

func TestNewMergedEntry_DeduplicatesFirstRecord(t *testing.T) {
	t.Parallel()

	m := NewMergedEntry(NormalizedEntry{
		Headword: "run",
		Meanings: []string{"v. 跑", "n. 跑步", "v. 跑"},
	})

	assert.Equal(t, []string{"v. 跑", "n. 跑步"}, m.Meanings())
	assert.Equal(t, 2, m.MeaningCount())
}

func TestMergedEntry_PhoneticFirstNonEmptyWins(t *testing.T) {
	t.Parallel()

	m := NewMergedEntry(NormalizedEntry{Headword: "word"})
	assert.Equal(t, "", m.Phonetic())

	assert.False(t, m.SetPhonetic(""), "empty phonetic must not be assigned")
	assert.True(t, m.SetPhonetic("wɜːd"))
	assert.False(t, m.SetPhonetic("wɝd"), "phonetic must not be overwritten")
	assert.Equal(t, "wɜːd", m.Phonetic())
}

func TestMergedEntry_Merge(t *testing.T) {
	t.Parallel()

	m := NewMergedEntry(NormalizedEntry{Headword: "cafe", Phonetic: "", Meanings: []string{"n. chat"}})
	m.Merge(NormalizedEntry{Headword: "cafe", Phonetic: "us", Meanings: []string{"n. chat", "v. aimer"}})
	m.Merge(NormalizedEntry{Headword: "cafe", Phonetic: "uk", Meanings: []string{"adj. x", "v. aimer"}})

	assert.Equal(t, "us", m.Phonetic())
	assert.Equal(t, []string{"n. chat", "v. aimer", "adj. x"}, m.Meanings())
	assert.True(t, m.HasMeaning("adj. x"))
	assert.False(t, m.HasMeaning("adj."))
}

func TestMergedEntry_MeaningsReturnsCopy(t *testing.T) {
	t.Parallel()

	m := NewMergedEntry(NormalizedEntry{Headword: "a", Meanings: []string{"one"}})
	got := m.Meanings()
	got[0] = "two"

	require.Equal(t, []string{"one"}, m.Meanings())
}

func TestMergedEntry_ZeroValueUsable(t *testing.T) {
	t.Parallel()

	var m MergedEntry
	assert.True(t, m.AddMeaning("x"))
	assert.False(t, m.AddMeaning("x"))
	assert.Equal(t, []string{"x"}, m.Meanings())
}
