package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/checkin_system/internal/config"
	"github.com/shenikar/checkin_system/internal/models"
	"github.com/shenikar/checkin_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestCheckinService builds a check-in service with a mocked repository
// and the default check-in policy.
func newTestCheckinService(t *testing.T) (*checkinService, *mocks.MockCheckinRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCheckinRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		GeofenceRadiusMeters: 20,
		CheckinLimit:         6,
		CheckinWindowMinutes: 8,
		HistoryLimit:         10,
	}

	service := NewCheckinService(repoMock, logger, cfg)
	return service.(*checkinService), repoMock
}

func TestRequestCheckin_NoPermissionRow(t *testing.T) {
	service, repoMock := newTestCheckinService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetAllowedGrades(ctx, int64(7)).Return("", false, nil).Times(1)

	// A location without a permission row is closed to every grade.
	err := service.RequestCheckin(ctx, 7, "A")
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestRequestCheckin_GradeAllowed(t *testing.T) {
	service, repoMock := newTestCheckinService(t)
	ctx := context.Background()

	for _, grade := range []string{"A", "B"} {
		repoMock.EXPECT().GetAllowedGrades(ctx, int64(7)).Return("A,B", true, nil).Times(1)
		assert.NoError(t, service.RequestCheckin(ctx, 7, grade))
	}
}

func TestRequestCheckin_GradeNotAllowed(t *testing.T) {
	service, repoMock := newTestCheckinService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetAllowedGrades(ctx, int64(7)).Return("A,B", true, nil).Times(1)

	err := service.RequestCheckin(ctx, 7, "C")
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestRequestCheckin_RepositoryError(t *testing.T) {
	service, repoMock := newTestCheckinService(t)
	ctx := context.Background()
	repoError := fmt.Errorf("connection refused")

	repoMock.EXPECT().GetAllowedGrades(ctx, int64(7)).Return("", false, repoError).Times(1)

	err := service.RequestCheckin(ctx, 7, "A")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotAuthorized)
}

func TestCheckin_LocationNotFound(t *testing.T) {
	service, repoMock := newTestCheckinService(t)
	ctx := context.Background()
	employeeID := uuid.New()

	repoMock.EXPECT().GetLocationFromCache(ctx, int64(99)).Return(nil, nil).Times(1)
	repoMock.EXPECT().
		GetLocationByID(ctx, int64(99)).
		Return(nil, fmt.Errorf("location with id 99: %w", ErrLocationNotFound)).
		Times(1)
	repoMock.EXPECT().RecordCheckin(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := service.Checkin(ctx, employeeID, 99, 55.75, 37.61)
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestCheckin_OutOfRange(t *testing.T) {
	service, repoMock := newTestCheckinService(t)
	ctx := context.Background()
	employeeID := uuid.New()
	location := &models.Location{ID: 5, Name: "HQ", Latitude: 10.0, Longitude: 20.0}

	repoMock.EXPECT().GetLocationFromCache(ctx, int64(5)).Return(location, nil).Times(1)
	// No event may be written on a geofence rejection.
	repoMock.EXPECT().RecordCheckin(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// 0.001 degrees of longitude is roughly 110 m, well outside 20 m.
	err := service.Checkin(ctx, employeeID, 5, 10.0, 20.001)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCheckin_InsideGeofenceBoundary(t *testing.T) {
	service, repoMock := newTestCheckinService(t)
	ctx := context.Background()
	employeeID := uuid.New()
	location := &models.Location{ID: 5, Name: "HQ", Latitude: 0.0, Longitude: 10.0}

	repoMock.EXPECT().GetLocationFromCache(ctx, int64(5)).Return(location, nil).Times(1)
	repoMock.EXPECT().
		RecordCheckin(ctx, employeeID, int64(5), 6, 8).
		Return(true, nil).
		Times(1)

	// About 19 m from the registered point, just inside the 20 m radius.
	err := service.Checkin(ctx, employeeID, 5, 0.0, 10.00017)
	require.NoError(t, err)
}

func TestCheckin_LimitExceeded(t *testing.T) {
	service, repoMock := newTestCheckinService(t)
	ctx := context.Background()
	employeeID := uuid.New()
	location := &models.Location{ID: 5, Name: "HQ", Latitude: 10.0, Longitude: 20.0}

	repoMock.EXPECT().GetLocationFromCache(ctx, int64(5)).Return(location, nil).Times(1)
	repoMock.EXPECT().
		RecordCheckin(ctx, employeeID, int64(5), 6, 8).
		Return(false, nil).
		Times(1)

	err := service.Checkin(ctx, employeeID, 5, 10.0, 20.0)
	assert.ErrorIs(t, err, ErrCheckinLimitExceeded)
}

func TestCheckin_CacheMissPopulatesCache(t *testing.T) {
	service, repoMock := newTestCheckinService(t)
	ctx := context.Background()
	employeeID := uuid.New()
	location := &models.Location{ID: 5, Name: "HQ", Latitude: 10.0, Longitude: 20.0}

	repoMock.EXPECT().GetLocationFromCache(ctx, int64(5)).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetLocationByID(ctx, int64(5)).Return(location, nil).Times(1)
	repoMock.EXPECT().SetLocationCache(ctx, location).Return(nil).Times(1)
	repoMock.EXPECT().
		RecordCheckin(ctx, employeeID, int64(5), 6, 8).
		Return(true, nil).
		Times(1)

	err := service.Checkin(ctx, employeeID, 5, 10.0, 20.0)
	require.NoError(t, err)
}

func TestCheckin_CacheErrorDegradesToDatabase(t *testing.T) {
	service, repoMock := newTestCheckinService(t)
	ctx := context.Background()
	employeeID := uuid.New()
	location := &models.Location{ID: 5, Name: "HQ", Latitude: 10.0, Longitude: 20.0}

	repoMock.EXPECT().GetLocationFromCache(ctx, int64(5)).Return(nil, fmt.Errorf("redis down")).Times(1)
	repoMock.EXPECT().GetLocationByID(ctx, int64(5)).Return(location, nil).Times(1)
	repoMock.EXPECT().SetLocationCache(ctx, location).Return(nil).Times(1)
	repoMock.EXPECT().
		RecordCheckin(ctx, employeeID, int64(5), 6, 8).
		Return(true, nil).
		Times(1)

	err := service.Checkin(ctx, employeeID, 5, 10.0, 20.0)
	require.NoError(t, err)
}

func TestHistory_Success(t *testing.T) {
	service, repoMock := newTestCheckinService(t)
	ctx := context.Background()
	employeeID := uuid.New()
	expected := []*models.CheckinRecord{
		{LocationName: "HQ"},
		{LocationName: "Warehouse"},
	}

	repoMock.EXPECT().ListHistory(ctx, employeeID, 10).Return(expected, nil).Times(1)

	records, err := service.History(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, expected, records)
}

func TestHistory_RepositoryError(t *testing.T) {
	service, repoMock := newTestCheckinService(t)
	ctx := context.Background()
	employeeID := uuid.New()

	repoMock.EXPECT().ListHistory(ctx, employeeID, 10).Return(nil, fmt.Errorf("boom")).Times(1)

	records, err := service.History(ctx, employeeID)
	require.Error(t, err)
	assert.Nil(t, records)
}

func TestListLocations_Success(t *testing.T) {
	service, repoMock := newTestCheckinService(t)
	ctx := context.Background()
	expected := []*models.Location{
		{ID: 1, Name: "HQ"},
		{ID: 2, Name: "Warehouse"},
	}

	repoMock.EXPECT().ListLocations(ctx).Return(expected, nil).Times(1)

	locations, err := service.ListLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, locations)
}
