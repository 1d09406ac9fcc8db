package service

import (
	"context"
	"errors"
	"fmt"

	"vocab-service/internal/models"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password or user")
)

type AuthService struct {
	Users      UserStore
	BcryptCost int
}

func NewAuthService(users UserStore, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{Users: users, BcryptCost: bcryptCost}
}

// Signup rejects duplicate emails, then stores the user with a bcrypt
// password hash.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) error {
	existing, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("error checking existing user: %w", err)
	}
	if existing != nil {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// Login verifies the password against the stored hash and returns the full
// user record for the session snapshot.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}
	return user, nil
}
