package district

import (
	"testing"

	"github.com/agrovision/cropadvisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeExactCaseInsensitive(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want domain.District
	}{
		{"Hyderabad", "Hyderabad"},
		{"hyderabad", "Hyderabad"},
		{"NALGONDA", "Nalgonda"},
		{"medchal-malkajgiri", "Medchal-Malkajgiri"},
	} {
		got, ok := Normalize(tc.in)
		require.True(t, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestNormalizeAliases(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want domain.District
	}{
		{"Warangal Urban", "Hanumakonda"},
		{"Medchal Malkajgiri", "Medchal-Malkajgiri"},
		{"Secunderabad", "Hyderabad"},
		{"Gadwal", "Jogulamba Gadwal"},
	} {
		got, ok := Normalize(tc.in)
		require.True(t, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestNormalizeAlternateCasingAndSpacing(t *testing.T) {
	got, ok := Normalize("ranga reddy")
	require.True(t, ok)
	assert.Equal(t, domain.District("Rangareddy"), got)

	got, ok = Normalize("  Ranga   Reddy ")
	require.True(t, ok)
	assert.Equal(t, domain.District("Rangareddy"), got)
}

func TestNormalizeSubstring(t *testing.T) {
	got, ok := Normalize("Khammam district, Telangana")
	require.True(t, ok)
	assert.Equal(t, domain.District("Khammam"), got)

	got, ok = Normalize("Siddi")
	require.True(t, ok)
	assert.Equal(t, domain.District("Siddipet"), got)
}

func TestNormalizeMiss(t *testing.T) {
	for _, in := range []string{"", "Mumbai", "Bangalore Urban", "   "} {
		_, ok := Normalize(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, d := range Names {
		got, ok := Normalize(string(d))
		require.True(t, ok, "district %q", d)
		assert.Equal(t, d, got)

		again, ok := Normalize(string(got))
		require.True(t, ok)
		assert.Equal(t, got, again)
	}
}

func TestMasterListHas31Entries(t *testing.T) {
	assert.Len(t, Names, 31)

	seen := make(map[domain.District]bool)
	for _, d := range Names {
		assert.False(t, seen[d], "duplicate district %q", d)
		seen[d] = true
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Rangareddy"))
	assert.True(t, IsValid("warangal urban"))
	assert.False(t, IsValid("Atlantis"))
}
