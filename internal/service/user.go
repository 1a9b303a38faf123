package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/suvidhapay/wallet/internal/config"
	"github.com/suvidhapay/wallet/internal/domain"
	"github.com/suvidhapay/wallet/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	CreateUser(user *domain.User) (int64, error)
	UserByEmail(email string) (*domain.User, error)
	UserByID(id int64) (*domain.User, error)
	UpdateUserProfile(user *domain.User) error
}

type UserService struct {
	config *config.Config
	repo   UserRepository
}

func NewUserService(repo UserRepository, config *config.Config) *UserService {
	return &UserService{
		repo:   repo,
		config: config,
	}
}

// Register stores a new user with a zero balance and a bcrypt password hash.
// The plaintext password is never persisted or echoed back.
func (s *UserService) Register(user *domain.User, password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		logger.Log.Warn("error while hashing password")
		return "", fmt.Errorf("error while hashing password: %w", err)
	}

	user.Password = string(hashedPassword)

	userID, err := s.repo.CreateUser(user)
	if err != nil {
		return "", err
	}

	user.ID = userID

	return generateJWTToken(userID, s.config.PrivateKey)
}

func (s *UserService) Login(email, password string) (*domain.User, string, error) {
	user, err := s.repo.UserByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrIncorrectCredentials) {
			logger.Log.Warn("incorrect email", logger.String("emailid", email))
		}
		return nil, "", err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		logger.Log.Warn("incorrect password", logger.String("emailid", email))
		return nil, "", domain.ErrIncorrectCredentials
	}

	token, err := generateJWTToken(user.ID, s.config.PrivateKey)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *UserService) Profile(id int64) (*domain.User, error) {
	return s.repo.UserByID(id)
}

// UpdateProfile applies only the fields present in the update and leaves the
// rest of the stored row untouched. Supplied values are trimmed.
func (s *UserService) UpdateProfile(id int64, update domain.ProfileUpdate) (*domain.User, error) {
	user, err := s.repo.UserByID(id)
	if err != nil {
		return nil, err
	}

	if update.PhoneNumber != nil {
		user.PhoneNumber = strings.TrimSpace(*update.PhoneNumber)
	}
	if update.Address != nil {
		user.Address = strings.TrimSpace(*update.Address)
	}
	if update.Dob != nil {
		user.Dob = update.Dob
	}
	if update.AadharNumber != nil {
		user.AadharNumber = strings.TrimSpace(*update.AadharNumber)
	}
	if update.PanNumber != nil {
		user.PanNumber = strings.TrimSpace(*update.PanNumber)
	}

	if err := s.repo.UpdateUserProfile(user); err != nil {
		return nil, err
	}

	return user, nil
}

func generateJWTToken(userID int64, privateKey string) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(privateKey))
	if err != nil {
		return "", fmt.Errorf("error while signing token: %w", err)
	}

	return signedToken, nil
}
