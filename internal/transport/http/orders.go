package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/nikolayk812/ordering/internal/domain"
	"github.com/nikolayk812/ordering/internal/service"
)

// Ordering is the use case surface served over HTTP.
type Ordering interface {
	CreateOrder(ctx context.Context) (uuid.UUID, error)
	AddProduct(ctx context.Context, orderID, productID uuid.UUID, quantity int) error
	CalculateOffer(ctx context.Context, orderID uuid.UUID) (domain.Offer, error)
	Confirm(ctx context.Context, orderID uuid.UUID, details service.OrderDetails, seenOffer domain.Offer) error
}

type createOrderResponse struct {
	OrderID uuid.UUID `json:"order_id"`
}

type addProductRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type confirmRequest struct {
	Note  string        `json:"note"`
	Offer *domain.Offer `json:"offer"`
}

func HandleCreateOrder(svc Ordering) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := svc.CreateOrder(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, createOrderResponse{OrderID: orderID})
	}
}

func HandleAddProduct(svc Ordering) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, ok := parseOrderID(w, r)
		if !ok {
			return
		}

		var req addProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.ProductID == uuid.Nil {
			writeError(w, http.StatusBadRequest, codeMissingRequiredField, "product_id is required")
			return
		}

		if err := svc.AddProduct(r.Context(), orderID, req.ProductID, req.Quantity); err != nil {
			writeDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func HandleCalculateOffer(svc Ordering) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, ok := parseOrderID(w, r)
		if !ok {
			return
		}

		offer, err := svc.CalculateOffer(r.Context(), orderID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, offer)
	}
}

func HandleConfirm(svc Ordering) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, ok := parseOrderID(w, r)
		if !ok {
			return
		}

		var req confirmRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.Offer == nil {
			writeError(w, http.StatusBadRequest, codeMissingRequiredField, "offer is required")
			return
		}

		if err := svc.Confirm(r.Context(), orderID, service.OrderDetails{Note: req.Note}, *req.Offer); err != nil {
			writeDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func parseOrderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	orderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidID, "invalid order id")
		return uuid.Nil, false
	}
	return orderID, true
}
