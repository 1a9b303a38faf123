package transactionhandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/suvidhapay/wallet/internal/domain"
	"github.com/suvidhapay/wallet/pkg/dto"
	"github.com/suvidhapay/wallet/pkg/logger"
	"github.com/suvidhapay/wallet/pkg/rest"
	"github.com/theplant/luhn"
)

type TransactionService interface {
	Save(userID int64, recipientNumber string, amount decimal.Decimal, transactionType string) (*domain.Transaction, error)
	Transactions(userID int64) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	srv TransactionService
}

func New(srv TransactionService) *TransactionHandler {
	return &TransactionHandler{
		srv: srv,
	}
}

func (h *TransactionHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.Transaction

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding a transaction request")
		rest.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	defer closeBody(r.Body)

	if err := req.IsValid(); err != nil {
		logger.Log.Warn("invalid transaction fields", logger.Error(err))
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, err := strconv.ParseInt(req.UserID, 10, 64)
	if err != nil {
		logger.Log.Warn("invalid user ID", logger.String("user_id", req.UserID))
		rest.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		logger.Log.Warn("invalid amount", logger.String("amount", req.Amount))
		rest.WriteError(w, http.StatusBadRequest, "invalid amount format")
		return
	}

	switch req.Type {
	case "", domain.TransactionTypeQRPayment:
	case domain.TransactionTypeCardPayment:
		// Card payments carry a card number as the recipient; check its
		// Luhn digit before touching the ledger. QR recipients are phone
		// numbers and have no checksum.
		cardNumber, err := strconv.ParseInt(req.RecipientNumber, 10, 64)
		if err != nil || !luhn.Valid(int(cardNumber)) {
			logger.Log.Warn("invalid recipient card number, Luhn check failed", logger.String("recipient", req.RecipientNumber))
			rest.WriteError(w, http.StatusUnprocessableEntity, "invalid recipient card number")
			return
		}
	default:
		logger.Log.Warn("invalid transaction type", logger.String("type", req.Type))
		rest.WriteError(w, http.StatusBadRequest, "invalid transaction type")
		return
	}

	transaction, err := h.srv.Save(userID, req.RecipientNumber, amount, req.Type)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Log.Warn("user not found for transaction", logger.Int64("user_id", userID))
			rest.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			rest.WriteError(w, http.StatusBadRequest, "amount must be positive")
			return
		}

		logger.Log.Error("error while saving transaction", logger.Int64("user_id", userID), logger.Error(err))
		rest.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	rest.WriteJSON(w, http.StatusOK, transactionResponse(transaction))
}

func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	transactions, err := h.srv.Transactions(userID)
	if err != nil {
		logger.Log.Error("error while fetching transactions", logger.Int64("user_id", userID), logger.Error(err))
		rest.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if len(transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	dtos := make([]dto.TransactionResponse, len(transactions))
	for i := range transactions {
		dtos[i] = transactionResponse(&transactions[i])
	}

	rest.WriteJSON(w, http.StatusOK, dtos)
}

func transactionResponse(transaction *domain.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		Reference:       transaction.Reference,
		RecipientNumber: transaction.RecipientNumber,
		Amount:          transaction.Amount.StringFixed(2),
		Type:            transaction.Type,
		Status:          transaction.Status,
		TransactionDate: transaction.TransactionDate.Format(time.RFC3339),
	}
}

func closeBody(body io.ReadCloser) {
	err := body.Close()
	if err != nil {
		logger.Log.Error("error while closing request body", logger.Error(err))
	}
}
