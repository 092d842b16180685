package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"eventboard/internal/database"
	"eventboard/internal/models"
	"eventboard/internal/notifier"
)

var (
	ErrMissingFields      = errors.New("Please fill all fields.")
	ErrInvalidAge         = errors.New("Age must be a valid positive number.")
	ErrEmailExists        = errors.New("Email already exists.")
	ErrInvalidCredentials = errors.New("Invalid input data")
	ErrNotAdmin           = errors.New("You are not an admin")
)

type UserDBLayer interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetByNameAndEmail(ctx context.Context, name, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// Service carries the account flows. There is no password anywhere in this
// system: authentication is a (name, email) match, the contract every
// existing client depends on.
type Service struct {
	DB       UserDBLayer
	Notifier *notifier.Notifier
}

func NewService(db UserDBLayer, n *notifier.Notifier) *Service {
	return &Service{DB: db, Notifier: n}
}

// Register validates and persists a new account. Age arrives as form text
// and must parse to a positive number.
func (s *Service) Register(ctx context.Context, name, surname, email, ageValue string) (*models.User, error) {
	if name == "" || surname == "" || email == "" || ageValue == "" {
		return nil, ErrMissingFields
	}

	age, err := strconv.Atoi(ageValue)
	if err != nil || age <= 0 {
		return nil, ErrInvalidAge
	}

	user := models.User{
		Name:    name,
		Surname: surname,
		Email:   email,
		Age:     age,
		Role:    "user",
	}
	if err := s.DB.CreateUser(ctx, &user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if s.Notifier != nil {
		s.Notifier.UserRegistered(ctx, user)
	}
	return &user, nil
}

// Login authenticates by exact (name, email) match.
func (s *Service) Login(ctx context.Context, name, email string) (*models.User, error) {
	user, err := s.DB.GetByNameAndEmail(ctx, name, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login lookup: %w", err)
	}
	return user, nil
}

// AdminLogin is the same lookup plus a role check.
func (s *Service) AdminLogin(ctx context.Context, name, email string) (*models.User, error) {
	user, err := s.DB.GetByNameAndEmail(ctx, name, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("admin login lookup: %w", err)
	}
	if !user.IsAdmin() {
		return nil, ErrNotAdmin
	}
	return user, nil
}

// ListUsers returns every account, unpaginated, for the admin panel.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.DB.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if err := s.DB.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
