package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"parkpost/internal/api/models"
	"parkpost/internal/api/repository"
	"parkpost/internal/auth"
	appvalidator "parkpost/internal/validator"
)

// User-facing messages for the entry view. Login failures collapse into
// one generic message so the response never reveals whether the username
// exists. Registration does name a taken username; the asymmetry is
// deliberate and documented.
const (
	MsgInvalidCredentials = "Invalid username or password"
	MsgUsernameTaken      = "That username is already taken."
)

var registerMessages = map[string]string{
	"Username.required": "You must provide a username.",
	"Username.min":      "Username must be at least 3 characters.",
	"Username.max":      "Username cannot exceed 10 characters.",
	"Username.alphanum": "Username can only contain numbers and letters.",
	"Password.required": "You must provide a password.",
	"Password.min":      "Password must be at least 12 characters.",
	"Password.max":      "Password cannot exceed 70 characters.",
}

// UserService implements the registration and login flows.
type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (string, []string, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, []string, error)
}

type userService struct {
	userRepo repository.UserRepository
	codec    *auth.TokenCodec
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, codec *auth.TokenCodec) UserService {
	return &userService{userRepo: userRepo, codec: codec}
}

// Register validates the request, creates the account and mints a session
// token: registration implies login. Violated rules come back together as
// user-facing messages with a nil error; err is reserved for
// infrastructure failures.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (string, []string, error) {
	req.Username = strings.TrimSpace(req.Username)

	var errs []string
	if err := appvalidator.GetValidator().Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return "", nil, fmt.Errorf("failed to validate registration: %w", err)
		}
		for _, fe := range fieldErrs {
			if msg, ok := registerMessages[fe.StructField()+"."+fe.Tag()]; ok {
				errs = append(errs, msg)
			} else {
				errs = append(errs, "Invalid "+strings.ToLower(fe.StructField())+".")
			}
		}
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		errs = append(errs, MsgUsernameTaken)
	}

	if len(errs) > 0 {
		return "", errs, nil
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, req.Username, hash)
	if err != nil {
		// Two registrations can race past the existence check; the
		// unique constraint settles it.
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return "", []string{MsgUsernameTaken}, nil
		}
		return "", nil, err
	}

	token, err := s.codec.Sign(user.ID, user.Username)
	if err != nil {
		return "", nil, err
	}
	return token, nil, nil
}

// Login authenticates the credentials and mints a session token. A
// missing user and a wrong password produce the identical message.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (string, []string, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return "", []string{MsgInvalidCredentials}, nil
	}

	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		return "", []string{MsgInvalidCredentials}, nil
	}

	token, err := s.codec.Sign(user.ID, user.Username)
	if err != nil {
		return "", nil, err
	}
	return token, nil, nil
}
