package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLocale(t *testing.T) {
	cases := []struct {
		id, lang, region string
	}{
		{"en", "en", ""},
		{"pt_BR", "pt", "BR"},
		{"fr", "fr", ""},
		{"zh_Hans_CN", "zh", "Hans_CN"},
		{"", "", ""},
	}
	for _, tc := range cases {
		lang, region := SplitLocale(tc.id)
		assert.Equal(t, tc.lang, lang, "language for %q", tc.id)
		assert.Equal(t, tc.region, region, "region for %q", tc.id)
	}
}

func TestCheckLocales(t *testing.T) {
	warnings := CheckLocales([]string{"en", "pt_BR", "fr"})
	assert.Empty(t, warnings)
}

func TestCheckLocalesInvalid(t *testing.T) {
	warnings := CheckLocales([]string{"en", "!!bogus!!"})
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "!!bogus!!")
}
