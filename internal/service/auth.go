package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/checkin_system/internal/auth"
	"github.com/shenikar/checkin_system/internal/config"
	"github.com/shenikar/checkin_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeRepository defines the persistence contract for employees.
type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	GetEmployeeByEmail(ctx context.Context, email string) (*models.Employee, error)
}

// AuthService defines registration and login.
type AuthService interface {
	Register(ctx context.Context, employee *models.Employee, password string) error
	Login(ctx context.Context, email, password string) (token string, grade string, err error)
}

type authService struct {
	repo   EmployeeRepository
	tokens *auth.TokenManager
	logger *logrus.Logger
	cfg    *config.Config
}

func NewAuthService(repo EmployeeRepository, tokens *auth.TokenManager, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
		cfg:    cfg,
	}
}

// Register stores a new employee with an irreversibly hashed password. Every
// persistence failure collapses to ErrRegistrationFailed.
func (s *authService) Register(ctx context.Context, employee *models.Employee, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"email":   employee.Email,
	})
	log.Info("Registering employee")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return fmt.Errorf("service: could not hash password: %w", ErrRegistrationFailed)
	}
	employee.PasswordHash = string(hash)

	if err := s.repo.CreateEmployee(ctx, employee); err != nil {
		log.WithError(err).Error("Failed to create employee in repository")
		return fmt.Errorf("service: could not create employee: %w", ErrRegistrationFailed)
	}

	log.WithField("employee_id", employee.ID).Info("Employee registered successfully")
	return nil
}

// Login verifies credentials and issues a bearer token. An unknown email and
// a wrong password produce the same ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})
	log.Info("Employee login attempt")

	employee, err := s.repo.GetEmployeeByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			log.Warn("Login with unknown email")
			return "", "", ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to get employee from repository")
		return "", "", fmt.Errorf("service: could not get employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login with wrong password")
		return "", "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(employee.ID, employee.Grade)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return "", "", fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("employee_id", employee.ID).Info("Employee logged in successfully")
	return token, employee.Grade, nil
}
