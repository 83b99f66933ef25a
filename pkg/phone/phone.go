package phone

import "strings"

// DefaultCountryCode is used when a number is written in national format.
const DefaultCountryCode = "62"

// Normalize strips formatting characters from a phone number.
func Normalize(phoneNumber string) string {
	r := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
	return r.Replace(strings.TrimSpace(phoneNumber))
}

// ForWhatsApp converts a phone number into the digits-only international
// form wa.me links expect: "0812-3456-789" -> "628123456789".
func ForWhatsApp(phoneNumber, countryCode string) string {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	n := Normalize(phoneNumber)
	switch {
	case strings.HasPrefix(n, "+"):
		n = n[1:]
	case strings.HasPrefix(n, "00"):
		n = n[2:]
	case strings.HasPrefix(n, "0"):
		n = countryCode + n[1:]
	}
	// Country code followed by a trunk zero, e.g. 6208...
	if strings.HasPrefix(n, countryCode+"0") {
		n = countryCode + n[len(countryCode)+1:]
	}
	return n
}
