package banks

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("bank not found")
var ErrMalformedIBAN = errors.New("malformed iban")

// NotFoundError carries the normalized identifier that matched no entry.
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no bank found with iban identifier %s", e.Identifier)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MalformedIBANError carries the normalized IBAN that failed the shape check.
type MalformedIBANError struct {
	IBAN string
}

func (e *MalformedIBANError) Error() string {
	return fmt.Sprintf("expected a %d-character iban starting with %q, got %q", IBANLength, CountryCode, e.IBAN)
}

func (e *MalformedIBANError) Is(target error) bool {
	return target == ErrMalformedIBAN
}
