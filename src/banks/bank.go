// Package banks resolves Saudi banks from the two-digit identifier carried in
// positions 5-6 of an SA IBAN.
package banks

import (
	"encoding/json"

	"golang.org/x/text/language"
)

// Keys lists the mapping keys produced by ToMap and MarshalJSON, in order.
var Keys = []string{"identifier", "english_name", "arabic_name", "short_code", "active", "notes"}

// Bank is a read-only registry entry. The zero value is not a valid bank.
type Bank struct {
	identifier  string
	englishName string
	arabicName  string
	shortCode   string
	active      bool
	notes       *string
}

func NewBank(identifier, englishName, arabicName, shortCode string, active bool, notes *string) Bank {
	b := Bank{
		identifier:  identifier,
		englishName: englishName,
		arabicName:  arabicName,
		shortCode:   shortCode,
		active:      active,
	}
	if notes != nil {
		n := *notes
		b.notes = &n
	}

	return b
}

func (b Bank) Identifier() string {
	return b.identifier
}

func (b Bank) EnglishName() string {
	return b.englishName
}

func (b Bank) ArabicName() string {
	return b.arabicName
}

func (b Bank) ShortCode() string {
	return b.shortCode
}

// Active reports false for identifiers kept only to resolve legacy IBANs.
func (b Bank) Active() bool {
	return b.active
}

func (b Bank) Notes() (string, bool) {
	if b.notes == nil {
		return "", false
	}

	return *b.notes, true
}

var nameMatcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Name returns the Arabic name when tag matches Arabic and the English name otherwise.
func (b Bank) Name(tag language.Tag) string {
	_, idx, conf := nameMatcher.Match(tag)
	if idx == 1 && conf != language.No {
		return b.arabicName
	}

	return b.englishName
}

func (b Bank) Equal(other Bank) bool {
	if b.identifier != other.identifier ||
		b.englishName != other.englishName ||
		b.arabicName != other.arabicName ||
		b.shortCode != other.shortCode ||
		b.active != other.active {
		return false
	}

	n1, ok1 := b.Notes()
	n2, ok2 := other.Notes()
	return ok1 == ok2 && n1 == n2
}

// ToMap returns the entry as a plain map keyed by Keys. Absent notes map to nil.
func (b Bank) ToMap() map[string]any {
	var notes any
	if n, ok := b.Notes(); ok {
		notes = n
	}

	return map[string]any{
		"identifier":   b.identifier,
		"english_name": b.englishName,
		"arabic_name":  b.arabicName,
		"short_code":   b.shortCode,
		"active":       b.active,
		"notes":        notes,
	}
}

type bankJSON struct {
	Identifier  string  `json:"identifier"`
	EnglishName string  `json:"english_name"`
	ArabicName  string  `json:"arabic_name"`
	ShortCode   string  `json:"short_code"`
	Active      bool    `json:"active"`
	Notes       *string `json:"notes"`
}

// MarshalJSON writes the ToMap fields in Keys order.
func (b Bank) MarshalJSON() ([]byte, error) {
	return json.Marshal(bankJSON{
		Identifier:  b.identifier,
		EnglishName: b.englishName,
		ArabicName:  b.arabicName,
		ShortCode:   b.shortCode,
		Active:      b.active,
		Notes:       b.notes,
	})
}
