package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// SplitLocale splits a locale identifier on the first underscore into its
// language code and region-or-script remainder. "pt_BR" yields ("pt", "BR"),
// "en" yields ("en", ""), "zh_Hans_CN" yields ("zh", "Hans_CN").
func SplitLocale(id string) (lang, region string) {
	if i := strings.Index(id, "_"); i >= 0 {
		return id[:i], id[i+1:]
	}
	return id, ""
}

// CheckLocales validates locale identifiers against BCP 47 and returns one
// warning per identifier that does not parse. Advisory only: the catalogue
// is authoritative and generation proceeds regardless.
func CheckLocales(ids []string) []string {
	var warnings []string
	for _, id := range ids {
		tag := strings.ReplaceAll(id, "_", "-")
		if _, err := language.Parse(tag); err != nil {
			warnings = append(warnings, fmt.Sprintf("locale identifier %q is not a recognized BCP 47 tag", id))
		}
	}
	return warnings
}
