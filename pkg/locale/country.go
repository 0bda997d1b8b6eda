package locale

import (
	"strings"
)

const UnknownNationality = "Unknown"

type Country struct {
	Code    string   // ISO 3166-1 alpha-2 country code (e.g., "US", "DE")
	Name    string   // Human-readable country name
	Aliases []string // Other spellings vendors emit for the same country
}

var Countries = map[string]Country{
	"US": {Code: "US", Name: "United States", Aliases: []string{"USA", "United States of America", "American"}},
	"GB": {Code: "GB", Name: "United Kingdom", Aliases: []string{"UK", "Great Britain", "British"}},
	"DE": {Code: "DE", Name: "Germany", Aliases: []string{"Deutschland", "German"}},
	"FR": {Code: "FR", Name: "France", Aliases: []string{"French"}},
	"ES": {Code: "ES", Name: "Spain", Aliases: []string{"Espana", "Spanish"}},
	"IT": {Code: "IT", Name: "Italy", Aliases: []string{"Italia", "Italian"}},
	"PT": {Code: "PT", Name: "Portugal", Aliases: []string{"Portuguese"}},
	"NL": {Code: "NL", Name: "Netherlands", Aliases: []string{"Holland", "Dutch"}},
	"CH": {Code: "CH", Name: "Switzerland", Aliases: []string{"Swiss"}},
	"AT": {Code: "AT", Name: "Austria", Aliases: []string{"Austrian"}},
	"AU": {Code: "AU", Name: "Australia", Aliases: []string{"Australian"}},
	"CA": {Code: "CA", Name: "Canada", Aliases: []string{"Canadian"}},
	"JP": {Code: "JP", Name: "Japan", Aliases: []string{"Japanese"}},
	"CN": {Code: "CN", Name: "China", Aliases: []string{"Chinese", "PRC"}},
	"IN": {Code: "IN", Name: "India", Aliases: []string{"Indian"}},
	"BR": {Code: "BR", Name: "Brazil", Aliases: []string{"Brasil", "Brazilian"}},
	"IL": {Code: "IL", Name: "Israel", Aliases: []string{"Israeli"}},
	"AE": {Code: "AE", Name: "United Arab Emirates", Aliases: []string{"UAE", "Emirati"}},
}

// NormalizeNationality maps the nationality strings PMS vendors emit
// (ISO codes, country names, demonyms) onto an ISO alpha-2 code.
// Unrecognized non-empty values pass through trimmed; empty input maps
// to the Unknown marker so every guest record carries something.
func NormalizeNationality(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, UnknownNationality) {
		return UnknownNationality
	}

	upper := strings.ToUpper(trimmed)
	if _, ok := Countries[upper]; ok && len(upper) == 2 {
		return upper
	}

	for code, country := range Countries {
		if strings.EqualFold(trimmed, country.Name) {
			return code
		}
		for _, alias := range country.Aliases {
			if strings.EqualFold(trimmed, alias) {
				return code
			}
		}
	}

	return trimmed
}
