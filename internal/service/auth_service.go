package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/internal/repository"
	"github.com/pratheepg2026-commits/crm-v2/pkg/jwtutil"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveAccount    = errors.New("user account is inactive")
)

// maxPasswordBytes is the most bcrypt will hash.
const maxPasswordBytes = 72

func checkPassword(field, password string) error {
	if len(password) > maxPasswordBytes {
		return &repository.ValidationError{Field: field, Message: "must be at most 72 bytes"}
	}
	return nil
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	Phone    string
	FarmName string
}

// AuthService is the credential store plus token issuance.
type AuthService struct {
	users     *repository.UserRepository
	tokens    *jwtutil.JWTUtil
	cost      int
	dummyHash []byte
}

func NewAuthService(users *repository.UserRepository, tokens *jwtutil.JWTUtil, cost int) (*AuthService, error) {
	// compared against when the email is unknown so both failures cost the same
	dummy, err := bcrypt.GenerateFromPassword([]byte("unknown-account"), cost)
	if err != nil {
		return nil, fmt.Errorf("prepare password hasher: %w", err)
	}
	return &AuthService{users: users, tokens: tokens, cost: cost, dummyHash: dummy}, nil
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if err := checkPassword("password", in.Password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = model.DefaultRole
	}

	u := &model.User{
		Email:    in.Email,
		Password: string(hash),
		Name:     in.Name,
		Role:     role,
		Phone:    in.Phone,
		FarmName: in.FarmName,
		IsActive: true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return u, nil
}

// Authenticate returns the account when the password matches. Unknown email and
// wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrInactiveAccount
	}
	return u, nil
}

// Login authenticates and issues a token for the account.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	token, err := s.tokens.GenerateToken(u.ID, u.Email)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, u, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	if err := checkPassword("new_password", next); err != nil {
		return err
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}
