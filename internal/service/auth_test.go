package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/checkin_system/internal/auth"
	"github.com/shenikar/checkin_system/internal/config"
	"github.com/shenikar/checkin_system/internal/models"
	"github.com/shenikar/checkin_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newTestAuthService builds an auth service with a mocked repository and a
// real token manager.
func newTestAuthService(t *testing.T) (*authService, *mocks.MockEmployeeRepository, *auth.TokenManager) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockEmployeeRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		BcryptCost: bcrypt.MinCost,
		TokenTTL:   time.Hour,
	}
	tokens := auth.NewTokenManager("test-secret", cfg.TokenTTL)

	service := NewAuthService(repoMock, tokens, logger, cfg)
	return service.(*authService), repoMock, tokens
}

func TestRegister_Success(t *testing.T) {
	service, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()
	employee := &models.Employee{
		Name:   "Alice",
		Email:  "alice@example.com",
		Mobile: "+70000000001",
		Grade:  "A",
	}

	repoMock.EXPECT().
		CreateEmployee(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, emp *models.Employee) error {
			emp.ID = uuid.New()
			return nil
		}).Times(1)

	err := service.Register(ctx, employee, "s3cret-password")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, employee.ID)
	// The stored credential is a hash, never the plaintext.
	assert.NotEqual(t, "s3cret-password", employee.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte("s3cret-password")))
}

func TestRegister_PersistenceFailure(t *testing.T) {
	service, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()
	employee := &models.Employee{Email: "dup@example.com", Grade: "A"}
	repoError := fmt.Errorf("employee with email dup@example.com already exists")

	repoMock.EXPECT().CreateEmployee(ctx, gomock.Any()).Return(repoError).Times(1)

	err := service.Register(ctx, employee, "whatever")

	// Duplicate email and every other persistence failure collapse into the
	// same outcome.
	assert.ErrorIs(t, err, ErrRegistrationFailed)
}

func TestLogin_Success(t *testing.T) {
	service, repoMock, tokens := newTestAuthService(t)
	ctx := context.Background()
	employeeID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repoMock.EXPECT().
		GetEmployeeByEmail(ctx, "bob@example.com").
		Return(&models.Employee{
			ID:           employeeID,
			Email:        "bob@example.com",
			Grade:        "B",
			PasswordHash: string(hash),
		}, nil).Times(1)

	token, grade, err := service.Login(ctx, "bob@example.com", "correct-password")

	require.NoError(t, err)
	assert.Equal(t, "B", grade)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, employeeID, claims.EmployeeID)
	assert.Equal(t, "B", claims.Grade)
}

func TestLogin_WrongPassword(t *testing.T) {
	service, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repoMock.EXPECT().
		GetEmployeeByEmail(ctx, "bob@example.com").
		Return(&models.Employee{Email: "bob@example.com", PasswordHash: string(hash)}, nil).
		Times(1)

	token, grade, err := service.Login(ctx, "bob@example.com", "wrong-password")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Empty(t, grade)
}

func TestLogin_UnknownEmail(t *testing.T) {
	service, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		GetEmployeeByEmail(ctx, "nobody@example.com").
		Return(nil, fmt.Errorf("employee with email nobody@example.com: %w", ErrEmployeeNotFound)).
		Times(1)

	token, _, err := service.Login(ctx, "nobody@example.com", "whatever")

	// Indistinguishable from the wrong-password case.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLogin_RepositoryError(t *testing.T) {
	service, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()
	repoError := fmt.Errorf("connection refused")

	repoMock.EXPECT().
		GetEmployeeByEmail(ctx, "bob@example.com").
		Return(nil, repoError).
		Times(1)

	_, _, err := service.Login(ctx, "bob@example.com", "whatever")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
