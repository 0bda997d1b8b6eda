package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var fallbackRegions = []string{
	"US",
	"GB",
}

// NormalizePhone formats a guest phone number as E.164 when it parses.
// Vendor feeds carry arbitrary formats; unparseable values are returned
// trimmed rather than discarded, since the number is display data here,
// not a routing key.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	for _, region := range fallbackRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err != nil {
			continue
		}
		if phonenumbers.IsValidNumber(parsed) {
			return phonenumbers.Format(parsed, phonenumbers.E164)
		}
	}
	return phone
}
