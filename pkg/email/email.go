// Package email holds address helpers shared by the relay handler and service.
package email

import (
	"net/mail"
	"strings"
	"unicode"
)

// ValidAddress reports whether s is a single bare mailbox address
// ("user@example.com"), without a display name.
func ValidAddress(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == s && strings.Contains(s[strings.IndexByte(s, '@')+1:], ".")
}

// DisplayNameFromAddress derives a human display name from the local part of
// an address: "ana.maria-pop@x.ro" becomes "Ana Maria Pop".
// It returns "" when the local part has no usable segments.
func DisplayNameFromAddress(address string) string {
	localPart := address
	if at := strings.IndexByte(address, '@'); at > 0 {
		localPart = address[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+' || unicode.IsDigit(r)
	})
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
