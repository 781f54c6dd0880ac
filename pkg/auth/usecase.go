package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

// UseCase is the application surface for accounts.
type UseCase interface {
	Register(ctx context.Context, email, password string) (Result, error)
	Login(ctx context.Context, email, password string) (Result, error)
}

// Result is a signed-in user: the account plus a fresh bearer token.
type Result struct {
	User  User
	Token string
}

type service struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewService returns the default UseCase implementation.
func NewService(users UserRepository, tokens TokenGenerator) UseCase {
	return &service{users: users, tokens: tokens}
}

// Register creates an account for the email. There is no pre-check lookup:
// the insert itself is the uniqueness arbiter, so two concurrent
// registrations of one address end with exactly one account and one
// ErrUserAlreadyExists.
func (s *service) Register(ctx context.Context, email, password string) (Result, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Result{}, ErrInvalidCredentials
	}
	if len(password) < minPasswordLen {
		return Result{}, ErrPasswordTooShort
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, err
	}

	user := User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return Result{}, err
	}
	return s.signIn(ctx, user)
}

func (s *service) Login(ctx context.Context, email, password string) (Result, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		// A missing account and a bad password answer identically.
		return Result{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Result{}, ErrInvalidCredentials
	}
	return s.signIn(ctx, user)
}

func (s *service) signIn(ctx context.Context, user User) (Result, error) {
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return Result{}, err
	}
	return Result{User: user, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
