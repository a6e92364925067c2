package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/workasana/workasana-be/internal/apperrors"
	"github.com/workasana/workasana-be/internal/auth"
	"github.com/workasana/workasana-be/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(name, email, password string) (models.User, error)
	AuthenticateUser(email, password string) (models.User, error)
	ListUsers() ([]models.UserSummary, error)
}

// UserService provides business logic for user accounts.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser registers a new user, hashing their password. A duplicate
// email surfaces as a conflict.
func (s *UserService) CreateUser(name, email, password string) (models.User, error) {
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	_, err = s.db.Exec(
		"INSERT INTO users(id, name, email, password_hash, created_at) VALUES(?, ?, ?, ?, ?)",
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, fmt.Errorf("email %s already registered: %w", email, apperrors.ErrConflict)
		}
		return models.User{}, err
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// AuthenticateUser verifies a user's credentials.
func (s *UserService) AuthenticateUser(email, password string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("unknown email: %w", apperrors.ErrAuthentication)
		}
		return models.User{}, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return models.User{}, fmt.Errorf("password mismatch: %w", apperrors.ErrAuthentication)
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

// ListUsers returns every user as an id/name pair, never credentials.
func (s *UserService) ListUsers() ([]models.UserSummary, error) {
	rows, err := s.db.Query("SELECT id, name FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.UserSummary{}
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
