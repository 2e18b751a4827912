package memory

import (
	"context"

	"github.com/meita/saudi-banks/src/banks"
	"github.com/meita/saudi-banks/src/internal/domain"
)

var _ domain.BankRepository = (*BankRepository)(nil)

// BankRepository serves the registry compiled into the banks package.
type BankRepository struct{}

func NewBankRepository() *BankRepository {
	return &BankRepository{}
}

func (r *BankRepository) GetAll(ctx context.Context) ([]domain.Bank, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return banks.All(), nil
}

func (r *BankRepository) GetByIdentifier(ctx context.Context, identifier string) (domain.Bank, error) {
	if err := ctx.Err(); err != nil {
		return domain.Bank{}, err
	}

	return banks.FindByIdentifier(identifier)
}

func (r *BankRepository) GetByIBAN(ctx context.Context, iban string) (domain.Bank, error) {
	if err := ctx.Err(); err != nil {
		return domain.Bank{}, err
	}

	return banks.FindByIBAN(iban)
}
