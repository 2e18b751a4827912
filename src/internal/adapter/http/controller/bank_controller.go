package controller

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/meita/saudi-banks/src/internal/adapter/http/models"
	"github.com/meita/saudi-banks/src/internal/commons"
	"github.com/meita/saudi-banks/src/internal/logger"
	"github.com/meita/saudi-banks/src/internal/usecase/service_interfaces"
)

type BankController struct {
	service service_interfaces.BankService
}

func NewBankController(service service_interfaces.BankService) *BankController {
	return &BankController{service: service}
}

func (c *BankController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	register := func(pattern string, fn http.HandlerFunc) {
		var handler http.Handler = fn
		if authMiddleware != nil {
			handler = authMiddleware(handler)
		}
		mux.Handle(pattern, handler)
	}

	register("/get-banks", c.getBanks)
	register("/get-bank", c.getBankByIdentifier)
	register("/get-bank-by-iban", c.getBankByIBAN)
}

func (c *BankController) getBanks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := models.GetBanksRequest{Lang: requestLang(r)}
	activeOnly, parseErr := parseActiveOnly(r)
	req.ActiveOnly = activeOnly
	logRequest(r, req)

	if r.Method != http.MethodGet {
		methodNotAllowed[[]models.BankResponse](w, r, start)
		return
	}

	if parseErr != nil {
		logError(r, parseErr, nil)
		response := commons.ErrorResponse[[]models.BankResponse](commons.CodeValidationFailed, "validation failed", "activeOnly must be a boolean")
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.service.GetBanks(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
	}

	status := statusFor(response.Success, response.Code)
	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}

func (c *BankController) getBankByIdentifier(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := models.GetBankByIdentifierRequest{
		Identifier: r.URL.Query().Get("identifier"),
		Lang:       requestLang(r),
	}
	logRequest(r, req)

	if r.Method != http.MethodGet {
		methodNotAllowed[models.BankResponse](w, r, start)
		return
	}

	response, err := c.service.GetBankByIdentifier(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
	}

	status := statusFor(response.Success, response.Code)
	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}

func (c *BankController) getBankByIBAN(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := models.GetBankByIBANRequest{
		IBAN: r.URL.Query().Get("iban"),
		Lang: requestLang(r),
	}
	logRequest(r, req)

	if r.Method != http.MethodGet {
		methodNotAllowed[models.BankResponse](w, r, start)
		return
	}

	response, err := c.service.GetBankByIBAN(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
	}

	status := statusFor(response.Success, response.Code)
	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}

// parseActiveOnly reads the optional ?activeOnly= flag; absent means false.
func parseActiveOnly(r *http.Request) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("activeOnly"))
	if raw == "" {
		return false, nil
	}

	return strconv.ParseBool(raw)
}

// requestLang prefers an explicit ?lang= over the Accept-Language header.
func requestLang(r *http.Request) string {
	if lang := strings.TrimSpace(r.URL.Query().Get("lang")); lang != "" {
		return lang
	}

	return r.Header.Get("Accept-Language")
}

func statusFor(success bool, code string) int {
	if success {
		return http.StatusOK
	}

	switch code {
	case commons.CodeValidationFailed, commons.CodeMalformedIBAN:
		return http.StatusBadRequest
	case commons.CodeNotFound:
		return http.StatusNotFound
	case commons.CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func methodNotAllowed[T any](w http.ResponseWriter, r *http.Request, start time.Time) {
	response := commons.ErrorResponse[T](commons.CodeMethodNotAllowed, "method not allowed")
	w.Header().Set("Allow", http.MethodGet)
	writeJSON(w, http.StatusMethodNotAllowed, response)
	logResponse(r, http.StatusMethodNotAllowed, response, start)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
