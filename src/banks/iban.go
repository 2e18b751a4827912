package banks

import "strings"

const (
	CountryCode = "SA"
	IBANLength  = 24

	// SAkkBB...: country code, two check digits, then the bank identifier.
	identifierOffset = 4
	identifierLength = 2

	// trimmed from both ends of an identifier; Unicode spaces are kept.
	identifierCutset = " \t\n\r\x00\x0b"
)

// NormalizeIdentifier trims ASCII whitespace and NUL, then left-pads with '0'
// to two characters. Longer input is returned unchanged.
func NormalizeIdentifier(raw string) string {
	id := strings.Trim(raw, identifierCutset)
	if len(id) < identifierLength {
		id = strings.Repeat("0", identifierLength-len(id)) + id
	}

	return id
}

// NormalizeIBAN removes every space and uppercases ASCII letters. Other bytes,
// including invalid UTF-8, pass through so the byte length only shrinks by the
// spaces removed.
func NormalizeIBAN(raw string) string {
	b := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == ' ':
			continue
		case 'a' <= c && c <= 'z':
			c -= 'a' - 'A'
		}
		b = append(b, c)
	}

	return string(b)
}

// IdentifierFromIBAN validates the IBAN shape and returns the embedded bank identifier.
func IdentifierFromIBAN(raw string) (string, error) {
	iban := NormalizeIBAN(raw)
	if len(iban) != IBANLength || !strings.HasPrefix(iban, CountryCode) {
		return "", &MalformedIBANError{IBAN: iban}
	}

	return iban[identifierOffset : identifierOffset+identifierLength], nil
}
