package models

import (
	"errors"
	"strings"

	"golang.org/x/text/language"

	"github.com/meita/saudi-banks/src/banks"
)

type BankResponse struct {
	Identifier  string  `json:"identifier"`
	Name        string  `json:"name"`
	EnglishName string  `json:"english_name"`
	ArabicName  string  `json:"arabic_name"`
	ShortCode   string  `json:"short_code"`
	Active      bool    `json:"active"`
	Notes       *string `json:"notes"`
}

func NewBankResponse(bank banks.Bank, lang language.Tag) BankResponse {
	resp := BankResponse{
		Identifier:  bank.Identifier(),
		Name:        bank.Name(lang),
		EnglishName: bank.EnglishName(),
		ArabicName:  bank.ArabicName(),
		ShortCode:   bank.ShortCode(),
		Active:      bank.Active(),
	}
	if notes, ok := bank.Notes(); ok {
		resp.Notes = &notes
	}

	return resp
}

type GetBanksRequest struct {
	ActiveOnly bool   `json:"activeOnly"`
	Lang       string `json:"lang"`
}

type GetBankByIdentifierRequest struct {
	Identifier string `json:"identifier"`
	Lang       string `json:"lang"`
}

// Validate only rejects input that cannot be an identifier at all; padding and
// table lookup stay with the registry.
func (r GetBankByIdentifierRequest) Validate() error {
	var errs []string

	identifier := strings.TrimSpace(r.Identifier)
	if identifier == "" {
		errs = append(errs, "identifier is required")
	} else if !isDigits(identifier) {
		errs = append(errs, "identifier must be numeric")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type GetBankByIBANRequest struct {
	IBAN string `json:"iban"`
	Lang string `json:"lang"`
}

func (r GetBankByIBANRequest) Validate() error {
	if strings.TrimSpace(r.IBAN) == "" {
		return errors.New("iban is required")
	}

	return nil
}

// ParseLang accepts a single BCP 47 tag or an Accept-Language list. Anything
// unparsable falls back to language.Und, which resolves to English names.
func ParseLang(raw string) language.Tag {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.Und
	}

	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return language.Und
	}

	return tags[0]
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
