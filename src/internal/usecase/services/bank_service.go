package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/meita/saudi-banks/src/banks"
	"github.com/meita/saudi-banks/src/internal/adapter/http/models"
	"github.com/meita/saudi-banks/src/internal/commons"
	"github.com/meita/saudi-banks/src/internal/domain"
	"github.com/meita/saudi-banks/src/internal/logger"
	"github.com/meita/saudi-banks/src/internal/metrics"
	"github.com/meita/saudi-banks/src/internal/usecase/service_interfaces"
)

// Verify that BankService implements the service_interfaces.BankService interface
var _ service_interfaces.BankService = (*BankService)(nil)

type BankService struct {
	bankRepo domain.BankRepository
	metrics  *metrics.Metrics
}

func NewBankService(bankRepo domain.BankRepository, m *metrics.Metrics) *BankService {
	return &BankService{bankRepo: bankRepo, metrics: m}
}

func (s *BankService) GetBanks(ctx context.Context, req models.GetBanksRequest) (commons.Response[[]models.BankResponse], error) {
	logger.Info("bank service get banks request", logger.Fields{
		"activeOnly": req.ActiveOnly,
		"lang":       req.Lang,
	})
	start := time.Now()
	defer func() { s.metrics.ObserveLookupLatency(metrics.OperationList, time.Since(start)) }()

	all, err := s.bankRepo.GetAll(ctx)
	if err != nil {
		s.metrics.IncrementLookup(metrics.OperationList, metrics.OutcomeError)
		logger.Error("bank service get banks failed", err, nil)
		return commons.ErrorResponse[[]models.BankResponse](commons.CodeInternal, "failed to fetch banks", "Unable to fetch banks right now"), fmt.Errorf("get banks: %w", err)
	}

	lang := models.ParseLang(req.Lang)
	resp := make([]models.BankResponse, 0, len(all))
	for _, bank := range all {
		if req.ActiveOnly && !bank.Active() {
			continue
		}
		resp = append(resp, models.NewBankResponse(bank, lang))
	}

	s.metrics.IncrementLookup(metrics.OperationList, metrics.OutcomeFound)
	logger.Info("bank service get banks success", logger.Fields{
		"count": len(resp),
	})

	return commons.SuccessResponse("banks fetched successfully", resp), nil
}

func (s *BankService) GetBankByIdentifier(ctx context.Context, req models.GetBankByIdentifierRequest) (commons.Response[models.BankResponse], error) {
	logger.Info("bank service get bank by identifier request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})
	start := time.Now()
	defer func() { s.metrics.ObserveLookupLatency(metrics.OperationByIdentifier, time.Since(start)) }()

	if err := req.Validate(); err != nil {
		s.metrics.IncrementLookup(metrics.OperationByIdentifier, metrics.OutcomeInvalidRequest)
		logger.Error("bank service get bank by identifier validation failed", err, nil)
		return commons.ErrorResponse[models.BankResponse](commons.CodeValidationFailed, "validation failed", err.Error()), fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}

	bank, err := s.bankRepo.GetByIdentifier(ctx, req.Identifier)
	if err != nil {
		return s.lookupFailed(metrics.OperationByIdentifier, err)
	}

	return s.lookupSucceeded(metrics.OperationByIdentifier, bank, req.Lang), nil
}

func (s *BankService) GetBankByIBAN(ctx context.Context, req models.GetBankByIBANRequest) (commons.Response[models.BankResponse], error) {
	logger.Info("bank service get bank by iban request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})
	start := time.Now()
	defer func() { s.metrics.ObserveLookupLatency(metrics.OperationByIBAN, time.Since(start)) }()

	if err := req.Validate(); err != nil {
		s.metrics.IncrementLookup(metrics.OperationByIBAN, metrics.OutcomeInvalidRequest)
		logger.Error("bank service get bank by iban validation failed", err, nil)
		return commons.ErrorResponse[models.BankResponse](commons.CodeValidationFailed, "validation failed", err.Error()), fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}

	bank, err := s.bankRepo.GetByIBAN(ctx, req.IBAN)
	if err != nil {
		return s.lookupFailed(metrics.OperationByIBAN, err)
	}

	return s.lookupSucceeded(metrics.OperationByIBAN, bank, req.Lang), nil
}

func (s *BankService) lookupSucceeded(operation string, bank domain.Bank, lang string) commons.Response[models.BankResponse] {
	s.metrics.IncrementLookup(operation, metrics.OutcomeFound)
	logger.Info("bank service lookup success", logger.Fields{
		"operation":  operation,
		"identifier": bank.Identifier(),
		"shortCode":  bank.ShortCode(),
		"active":     bank.Active(),
	})

	return commons.SuccessResponse("bank fetched successfully", models.NewBankResponse(bank, models.ParseLang(lang)))
}

func (s *BankService) lookupFailed(operation string, err error) (commons.Response[models.BankResponse], error) {
	var notFound *banks.NotFoundError
	var malformed *banks.MalformedIBANError

	switch {
	case errors.As(err, &malformed):
		s.metrics.IncrementLookup(operation, metrics.OutcomeMalformedIBAN)
		logger.Info("bank service lookup malformed iban", logger.Fields{
			"operation": operation,
			"iban":      malformed.IBAN,
		})
		return commons.ErrorResponse[models.BankResponse](commons.CodeMalformedIBAN, "malformed iban", err.Error()), err
	case errors.As(err, &notFound):
		s.metrics.IncrementLookup(operation, metrics.OutcomeNotFound)
		logger.Info("bank service lookup not found", logger.Fields{
			"operation":  operation,
			"identifier": notFound.Identifier,
		})
		return commons.ErrorResponse[models.BankResponse](commons.CodeNotFound, "bank not found", err.Error()), err
	default:
		s.metrics.IncrementLookup(operation, metrics.OutcomeError)
		logger.Error("bank service lookup failed", err, logger.Fields{
			"operation": operation,
		})
		return commons.ErrorResponse[models.BankResponse](commons.CodeInternal, "failed to fetch bank", "Unable to fetch bank right now"), fmt.Errorf("%s lookup: %w", operation, err)
	}
}
