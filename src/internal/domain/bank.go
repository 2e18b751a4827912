package domain

import (
	"context"

	"github.com/meita/saudi-banks/src/banks"
)

type Bank = banks.Bank

type BankRepository interface {
	GetAll(ctx context.Context) ([]Bank, error)
	GetByIdentifier(ctx context.Context, identifier string) (Bank, error)
	GetByIBAN(ctx context.Context, iban string) (Bank, error)
}
