package service_interfaces

import (
	"context"

	"github.com/meita/saudi-banks/src/internal/adapter/http/models"
	"github.com/meita/saudi-banks/src/internal/commons"
)

type BankService interface {
	GetBanks(ctx context.Context, req models.GetBanksRequest) (commons.Response[[]models.BankResponse], error)
	GetBankByIdentifier(ctx context.Context, req models.GetBankByIdentifierRequest) (commons.Response[models.BankResponse], error)
	GetBankByIBAN(ctx context.Context, req models.GetBankByIBANRequest) (commons.Response[models.BankResponse], error)
}
