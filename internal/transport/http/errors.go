package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nikolayk812/ordering/internal/domain"
)

const (
	codeInvalidRequestBody   = "invalid_request_body"
	codeInvalidID            = "invalid_id"
	codeUnauthenticated      = "unauthenticated"
	codeNotFound             = "not_found"
	codeAlreadyClosed        = "reservation_already_closed"
	codeInvalidOperation     = "invalid_operation"
	codeInvalidState         = "invalid_state"
	codeCurrencyMismatch     = "currency_mismatch"
	codeOfferChanged         = "offer_changed"
	codeInsufficientFunds    = "insufficient_funds"
	codeTransactionConflict  = "transaction_conflict"
	codeInternalError        = "internal_error"
	codeMissingRequiredField = "missing_required_field"
)

type errorResponse struct {
	Error string        `json:"error"`
	Code  string        `json:"code"`
	Offer *domain.Offer `json:"offer,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{
		Error: msg,
		Code:  code,
	})
}

// writeDomainError maps service errors to statuses. Order matters:
// ErrAlreadyClosed and ErrInvalidQuantity also match ErrInvalidOperation.
func writeDomainError(w http.ResponseWriter, err error) {
	var offerChanged *domain.OfferChangedError

	switch {
	case errors.As(err, &offerChanged):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error: domain.ErrOfferChanged.Error(),
			Code:  codeOfferChanged,
			Offer: &offerChanged.Current,
		})
	case errors.Is(err, domain.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, codeUnauthenticated, domain.ErrUnauthenticated.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, domain.ErrTransactionConflict):
		writeError(w, http.StatusConflict, codeTransactionConflict, "concurrent update, retry the request")
	case errors.Is(err, domain.ErrAlreadyClosed):
		writeError(w, http.StatusConflict, codeAlreadyClosed, domain.ErrAlreadyClosed.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		writeError(w, http.StatusUnprocessableEntity, codeInsufficientFunds, domain.ErrInsufficientFunds.Error())
	case errors.Is(err, domain.ErrCurrencyMismatch):
		writeError(w, http.StatusUnprocessableEntity, codeCurrencyMismatch, domain.ErrCurrencyMismatch.Error())
	case errors.Is(err, domain.ErrInvalidOperation), errors.Is(err, domain.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, codeInvalidOperation, err.Error())
	case errors.Is(err, domain.ErrInvalidState):
		writeError(w, http.StatusConflict, codeInvalidState, domain.ErrInvalidState.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
