package userhandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/suvidhapay/wallet/internal/domain"
	"github.com/suvidhapay/wallet/pkg/dto"
	"github.com/suvidhapay/wallet/pkg/logger"
	"github.com/suvidhapay/wallet/pkg/rest"
)

const dateLayout = "2006-01-02"

const errInvalidDateMessage = "Invalid date format. Please use YYYY-MM-DD"

type UserService interface {
	Register(user *domain.User, password string) (string, error)
	Login(email, password string) (*domain.User, string, error)
	Profile(id int64) (*domain.User, error)
	UpdateProfile(id int64, update domain.ProfileUpdate) (*domain.User, error)
}

type UserHandler struct {
	srv UserService
}

func New(srv UserService) *UserHandler {
	return &UserHandler{
		srv: srv,
	}
}

func (uh *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.Register

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding a register request")
		rest.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	defer closeBody(r.Body)

	if err := req.IsValid(); err != nil {
		logger.Log.Warn("invalid register fields", logger.Error(err))
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user := &domain.User{
		Username:     req.Username,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		AadharNumber: req.AadharNumber,
		PanNumber:    req.PanNumber,
		Email:        req.Email,
		BankName:     req.BankName,
	}

	if req.Dob != "" {
		dob, err := time.Parse(dateLayout, req.Dob)
		if err != nil {
			logger.Log.Warn("invalid date of birth", logger.String("dob", req.Dob))
			rest.WriteError(w, http.StatusBadRequest, errInvalidDateMessage)
			return
		}
		user.Dob = &dob
	}

	token, err := uh.srv.Register(user, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			rest.WriteError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		if errors.Is(err, domain.ErrUsernameExists) {
			rest.WriteError(w, http.StatusBadRequest, "Username already taken")
			return
		}

		logger.Log.Error("error while registering user", logger.Error(err))
		rest.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	rest.WriteJSON(w, http.StatusOK, dto.RegisterResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

func (uh *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.Login

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding a login request")
		rest.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	defer closeBody(r.Body)

	if err := req.IsValid(); err != nil {
		logger.Log.Warn("invalid login fields", logger.Error(err))
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := uh.srv.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrIncorrectCredentials) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}

		logger.Log.Error("error while logging in", logger.Error(err))
		rest.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	rest.WriteJSON(w, http.StatusOK, dto.LoginResponse{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	})
}

func (uh *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := uh.srv.Profile(id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Log.Warn("profile not found", logger.Int64("user_id", id))
			rest.WriteError(w, http.StatusNotFound, "user not found")
			return
		}

		logger.Log.Error("error while fetching profile", logger.Int64("user_id", id), logger.Error(err))
		rest.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	rest.WriteJSON(w, http.StatusOK, profileResponse(user))
}

func (uh *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req dto.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding a profile update request")
		rest.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	defer closeBody(r.Body)

	if err := req.IsValid(); err != nil {
		logger.Log.Warn("invalid profile update fields", logger.Int64("user_id", id), logger.Error(err))
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	update := domain.ProfileUpdate{
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		AadharNumber: req.AadharNumber,
		PanNumber:    req.PanNumber,
	}

	if req.Dob != nil {
		dob, err := time.Parse(dateLayout, strings.TrimSpace(*req.Dob))
		if err != nil {
			logger.Log.Warn("invalid date of birth", logger.String("dob", *req.Dob))
			rest.WriteError(w, http.StatusBadRequest, errInvalidDateMessage)
			return
		}
		update.Dob = &dob
	}

	user, err := uh.srv.UpdateProfile(id, update)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Log.Warn("user not found for profile update", logger.Int64("user_id", id))
			rest.WriteError(w, http.StatusNotFound, "user not found")
			return
		}

		logger.Log.Error("error while updating profile", logger.Int64("user_id", id), logger.Error(err))
		rest.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	rest.WriteJSON(w, http.StatusOK, profileResponse(user))
}

func profileResponse(user *domain.User) dto.Profile {
	profile := dto.Profile{
		UserID:       user.ID,
		Username:     user.Username,
		FullName:     user.FullName,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		Address:      user.Address,
		AadharNumber: user.AadharNumber,
		PanNumber:    user.PanNumber,
		BankName:     user.BankName,
		Balance:      user.Balance.StringFixed(2),
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
	}

	if user.Dob != nil {
		profile.Dob = user.Dob.Format(dateLayout)
	}

	return profile
}

func parseID(r *http.Request, param string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, param), 10, 64)
}

func closeBody(body io.ReadCloser) {
	err := body.Close()
	if err != nil {
		logger.Log.Error("error while closing request body", logger.Error(err))
	}
}
