package loanhandler

import (
	"encoding/json"
	"errors"
	"fmt"
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
)

type LoanService interface {
	Submit(userID int64, amount decimal.Decimal, purpose, email string) (*domain.LoanRequest, error)
	ByUser(userID int64) (*domain.LoanRequest, error)
	Cancel(id int64) error
	Statement(id int64) (string, error)
}

type LoanHandler struct {
	srv LoanService
}

func New(srv LoanService) *LoanHandler {
	return &LoanHandler{
		srv: srv,
	}
}

func (h *LoanHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.LoanRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding a loan request")
		rest.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	defer closeBody(r.Body)

	if err := req.IsValid(); err != nil {
		logger.Log.Warn("invalid loan request fields", logger.Error(err))
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

	loan, err := h.srv.Submit(userID, amount, req.Purpose, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrLoanExists) {
			logger.Log.Warn("loan request already exists", logger.Int64("user_id", userID))
			rest.WriteError(w, http.StatusBadRequest, "You already have an active loan request")
			return
		}

		logger.Log.Error("error while submitting loan request", logger.Int64("user_id", userID), logger.Error(err))
		rest.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	rest.WriteJSON(w, http.StatusOK, loanResponse(loan))
}

func (h *LoanHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	loan, err := h.srv.ByUser(userID)
	if err != nil {
		if errors.Is(err, domain.ErrLoanNotFound) {
			rest.WriteError(w, http.StatusNotFound, "loan request not found")
			return
		}

		logger.Log.Error("error while fetching loan request", logger.Int64("user_id", userID), logger.Error(err))
		rest.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	rest.WriteJSON(w, http.StatusOK, loanResponse(loan))
}

func (h *LoanHandler) Statement(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.ParseInt(chi.URLParam(r, "requestId"), 10, 64)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	statement, err := h.srv.Statement(requestID)
	if err != nil {
		if errors.Is(err, domain.ErrLoanNotFound) {
			rest.WriteError(w, http.StatusNotFound, "loan request not found")
			return
		}

		logger.Log.Error("error while generating statement", logger.Int64("request_id", requestID), logger.Error(err))
		rest.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=loan-statement-%d.txt", requestID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(statement)); err != nil {
		logger.Log.Error("error while writing statement", logger.Int64("request_id", requestID), logger.Error(err))
	}
}

func (h *LoanHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	loanID, err := strconv.ParseInt(chi.URLParam(r, "loanId"), 10, 64)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid loan id")
		return
	}

	if err := h.srv.Cancel(loanID); err != nil {
		if errors.Is(err, domain.ErrLoanNotFound) {
			rest.WriteError(w, http.StatusNotFound, "loan request not found")
			return
		}
		if errors.Is(err, domain.ErrLoanNotPending) {
			logger.Log.Warn("loan request is not pending", logger.Int64("loan_id", loanID))
			rest.WriteError(w, http.StatusBadRequest, "Only pending loans can be cancelled")
			return
		}

		logger.Log.Error("error while cancelling loan request", logger.Int64("loan_id", loanID), logger.Error(err))
		rest.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	rest.WriteJSON(w, http.StatusOK, map[string]string{"message": "Loan request cancelled successfully"})
}

func loanResponse(loan *domain.LoanRequest) dto.LoanResponse {
	return dto.LoanResponse{
		ID:          loan.ID,
		UserID:      loan.UserID,
		Amount:      loan.Amount.StringFixed(2),
		Purpose:     loan.Purpose,
		Email:       loan.Email,
		Status:      loan.Status,
		RequestDate: loan.RequestDate.Format(time.RFC3339),
	}
}

func closeBody(body io.ReadCloser) {
	err := body.Close()
	if err != nil {
		logger.Log.Error("error while closing request body", logger.Error(err))
	}
}
