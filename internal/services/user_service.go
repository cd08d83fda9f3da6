package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dave9314/online-market/internal/models"
	"github.com/dave9314/online-market/utils"
)

const (
	accessTokenTTL = 120 * time.Minute
	sessionTTL     = 24 * 30 * 2 * time.Hour
)

// UserStore is the slice of the persistence layer the user service
// needs. *repositories.UserRepository satisfies it.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
	UpdatePassword(ctx context.Context, userID int, hashedPassword string) error
	UpdateRole(ctx context.Context, userID int, role string) (models.User, error)
	DeleteUser(ctx context.Context, id int) error
	GetAllUsers(ctx context.Context) ([]models.User, error)
	SetSession(ctx context.Context, userID int, session models.Session) error
	ClearSession(ctx context.Context, userID int) error
}

type UserService struct {
	UserRepo     UserStore
	TokenManager *utils.Manager
	SigningKey   string
}

func validateSignUp(req models.SignUpRequest) error {
	switch {
	case len(req.Username) < 3:
		return models.NewValidationError("username", "username must be at least 3 characters")
	case len(req.Password) < 6:
		return models.NewValidationError("password", "password must be at least 6 characters")
	case len(strings.TrimSpace(req.FullName)) < 2:
		return models.NewValidationError("full_name", "full name is required")
	case len(strings.TrimSpace(req.Address)) < 5:
		return models.NewValidationError("address", "address is required")
	case len(strings.TrimSpace(req.Phone)) < 10:
		return models.NewValidationError("phone", "valid phone number is required")
	}
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		return models.NewValidationError("email", "valid email is required")
	}
	return nil
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	if err := validateSignUp(req); err != nil {
		return models.User{}, err
	}

	existing, err := s.UserRepo.GetUserByUsername(ctx, req.Username)
	if err != nil && err != models.ErrUserNotFound {
		return models.User{}, err
	}
	if existing.Username != "" {
		return models.User{}, models.ErrDuplicateUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username: req.Username,
		Password: string(hashedPassword),
		FullName: req.FullName,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		Role:     models.RoleUser,
	}
	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	created.Password = ""
	return created, nil
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.Tokens, error) {
	if req.Username == "" || req.Password == "" {
		return models.Tokens{}, models.NewValidationError("username", "username and password are required")
	}

	user, err := s.UserRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return models.Tokens{}, models.ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.Tokens{}, models.ErrInvalidPassword
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: user.ID,
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(accessTokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})
	accessToken, err := token.SignedString([]byte(s.SigningKey))
	if err != nil {
		return models.Tokens{}, err
	}

	return s.createSession(ctx, user, accessToken)
}

func (s *UserService) createSession(ctx context.Context, user models.User, accessToken string) (models.Tokens, error) {
	res := models.Tokens{AccessToken: accessToken}

	var err error
	res.RefreshToken = uuid.New().String()
	if s.TokenManager != nil {
		res.RefreshToken, err = s.TokenManager.NewRefreshToken()
		if err != nil {
			return models.Tokens{}, err
		}
	}

	session := models.Session{
		RefreshToken: res.RefreshToken,
		ExpiresAt:    time.Now().Add(sessionTTL),
	}
	if err := s.UserRepo.SetSession(ctx, user.ID, session); err != nil {
		return models.Tokens{}, err
	}
	return res, nil
}

func (s *UserService) GetProfile(ctx context.Context, caller *models.Caller) (models.User, error) {
	if !IsAuthenticated(caller) {
		return models.User{}, models.ErrUnauthorized
	}
	user, err := s.UserRepo.GetUserByID(ctx, caller.ID)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, caller *models.Caller, req models.ProfileUpdateRequest) (models.User, error) {
	if !IsAuthenticated(caller) {
		return models.User{}, models.ErrUnauthorized
	}
	switch {
	case strings.TrimSpace(req.FullName) == "":
		return models.User{}, models.NewValidationError("full_name", "full name is required")
	case strings.TrimSpace(req.Phone) == "":
		return models.User{}, models.NewValidationError("phone", "phone is required")
	case strings.TrimSpace(req.Address) == "":
		return models.User{}, models.NewValidationError("address", "address is required")
	}
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		return models.User{}, models.NewValidationError("email", "valid email is required")
	}

	user, err := s.UserRepo.GetUserByID(ctx, caller.ID)
	if err != nil {
		return models.User{}, err
	}

	if req.NewPassword != "" {
		if len(req.NewPassword) < 6 {
			return models.User{}, models.NewValidationError("new_password", "password must be at least 6 characters")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			return models.User{}, models.ErrInvalidPassword
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		if err := s.UserRepo.UpdatePassword(ctx, caller.ID, string(hashedPassword)); err != nil {
			return models.User{}, err
		}
	}

	user.FullName = req.FullName
	user.Address = req.Address
	user.Phone = req.Phone
	user.Email = req.Email
	updated, err := s.UserRepo.UpdateProfile(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	updated.Password = ""
	return updated, nil
}

func (s *UserService) LogOut(ctx context.Context, caller *models.Caller) error {
	if !IsAuthenticated(caller) {
		return models.ErrUnauthorized
	}
	return s.UserRepo.ClearSession(ctx, caller.ID)
}

func (s *UserService) GetAllUsers(ctx context.Context, caller *models.Caller) ([]models.User, error) {
	if !IsAuthenticated(caller) {
		return nil, models.ErrUnauthorized
	}
	if caller.Role != models.RoleAdmin {
		return nil, models.ErrForbidden
	}
	return s.UserRepo.GetAllUsers(ctx)
}

func (s *UserService) DeleteUser(ctx context.Context, caller *models.Caller, userID int) error {
	if !IsAuthenticated(caller) {
		return models.ErrUnauthorized
	}
	target, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !CanMutateUser(caller, target) {
		return models.ErrForbidden
	}
	return s.UserRepo.DeleteUser(ctx, target.ID)
}

func (s *UserService) ChangeRole(ctx context.Context, caller *models.Caller, userID int, role string) (models.User, error) {
	if !IsAuthenticated(caller) {
		return models.User{}, models.ErrUnauthorized
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return models.User{}, models.NewValidationError("role", "role must be USER or ADMIN")
	}
	target, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if !CanMutateUser(caller, target) {
		return models.User{}, models.ErrForbidden
	}
	updated, err := s.UserRepo.UpdateRole(ctx, target.ID, role)
	if err != nil {
		return models.User{}, err
	}
	updated.Password = ""
	return updated, nil
}
