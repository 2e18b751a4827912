package domain

import (
	"errors"

	"github.com/meita/saudi-banks/src/banks"
)

var ErrRecordNotFound = banks.ErrNotFound
var ErrMalformedIBAN = banks.ErrMalformedIBAN
var ErrInvalidRequest = errors.New("Invalid request")
