package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/checkin_system/internal/config"
	"github.com/shenikar/checkin_system/internal/models"
	"github.com/shenikar/checkin_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

// CheckinRepository defines the persistence contract for locations,
// permissions and check-in events.
type CheckinRepository interface {
	GetLocationByID(ctx context.Context, id int64) (*models.Location, error)
	ListLocations(ctx context.Context) ([]*models.Location, error)
	// GetAllowedGrades returns the comma-separated allowed grades for a
	// location; found is false when the location has no permission row.
	GetAllowedGrades(ctx context.Context, locationID int64) (grades string, found bool, err error)
	// RecordCheckin atomically counts the employee's check-ins inside the
	// trailing window and inserts a new one only if the count is below limit.
	// Returns false without inserting when the limit is already reached.
	RecordCheckin(ctx context.Context, employeeID uuid.UUID, locationID int64, limit, windowMinutes int) (bool, error)
	ListHistory(ctx context.Context, employeeID uuid.UUID, limit int) ([]*models.CheckinRecord, error)
	GetLocationFromCache(ctx context.Context, id int64) (*models.Location, error)
	SetLocationCache(ctx context.Context, location *models.Location) error
}

// CheckinService defines the check-in business logic.
type CheckinService interface {
	// RequestCheckin is the advisory pre-flight grade check. It is not
	// re-invoked by Checkin: the check-in path trusts proximity and the rate
	// limit alone.
	RequestCheckin(ctx context.Context, locationID int64, grade string) error
	Checkin(ctx context.Context, employeeID uuid.UUID, locationID int64, latitude, longitude float64) error
	History(ctx context.Context, employeeID uuid.UUID) ([]*models.CheckinRecord, error)
	ListLocations(ctx context.Context) ([]*models.Location, error)
}

type checkinService struct {
	repo   CheckinRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewCheckinService(repo CheckinRepository, logger *logrus.Logger, cfg *config.Config) CheckinService {
	return &checkinService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// RequestCheckin checks whether the employee's grade is allowed at the
// location. A location without a permission row is closed to every grade.
func (s *checkinService) RequestCheckin(ctx context.Context, locationID int64, grade string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "checkin",
		"method":      "RequestCheckin",
		"location_id": locationID,
		"grade":       grade,
	})
	log.Info("Checking location permission")

	grades, found, err := s.repo.GetAllowedGrades(ctx, locationID)
	if err != nil {
		log.WithError(err).Error("Failed to get location permissions from repository")
		return fmt.Errorf("service: could not get location permissions: %w", err)
	}
	if !found {
		log.Warn("No permission row for location")
		return ErrNotAuthorized
	}

	for _, allowed := range strings.Split(grades, ",") {
		if strings.TrimSpace(allowed) == grade {
			log.Info("Check-in request approved")
			return nil
		}
	}

	log.Warn("Grade not allowed at location")
	return ErrNotAuthorized
}

// Checkin runs the geofence and rate-limit pipeline and records the event on
// success. No event is written on any failure path.
func (s *checkinService) Checkin(ctx context.Context, employeeID uuid.UUID, locationID int64, latitude, longitude float64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "checkin",
		"method":      "Checkin",
		"employee_id": employeeID,
		"location_id": locationID,
	})
	log.Info("Processing check-in attempt")

	location, err := s.getLocation(ctx, locationID)
	if err != nil {
		return err
	}

	distance := geo.Distance(latitude, longitude, location.Latitude, location.Longitude)
	if distance > s.cfg.GeofenceRadiusMeters {
		log.WithField("distance_meters", distance).Warn("Check-in rejected: out of range")
		return ErrOutOfRange
	}

	recorded, err := s.repo.RecordCheckin(ctx, employeeID, locationID, s.cfg.CheckinLimit, s.cfg.CheckinWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to record check-in in repository")
		return fmt.Errorf("service: could not record check-in: %w", err)
	}
	if !recorded {
		log.Warn("Check-in rejected: limit exceeded")
		return ErrCheckinLimitExceeded
	}

	log.Info("Check-in recorded successfully")
	return nil
}

// History returns the employee's most recent check-ins, newest first.
func (s *checkinService) History(ctx context.Context, employeeID uuid.UUID) ([]*models.CheckinRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "checkin",
		"method":      "History",
		"employee_id": employeeID,
	})
	log.Info("Fetching check-in history")

	records, err := s.repo.ListHistory(ctx, employeeID, s.cfg.HistoryLimit)
	if err != nil {
		log.WithError(err).Error("Failed to list history from repository")
		return nil, fmt.Errorf("service: could not list check-in history: %w", err)
	}

	log.WithField("count", len(records)).Info("Check-in history fetched successfully")
	return records, nil
}

// ListLocations returns all registered locations.
func (s *checkinService) ListLocations(ctx context.Context) ([]*models.Location, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "checkin",
		"method":  "ListLocations",
	})
	log.Info("Listing locations")

	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list locations from repository")
		return nil, fmt.Errorf("service: could not list locations: %w", err)
	}

	log.WithField("count", len(locations)).Info("Locations listed successfully")
	return locations, nil
}

// getLocation resolves a location through the cache, falling back to the
// database and repopulating the cache on a miss. Cache errors only degrade to
// a database read.
func (s *checkinService) getLocation(ctx context.Context, id int64) (*models.Location, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "checkin",
		"method":      "getLocation",
		"location_id": id,
	})

	cached, err := s.repo.GetLocationFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read location from cache")
	}
	if cached != nil {
		return cached, nil
	}

	location, err := s.repo.GetLocationByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get location from repository")
		return nil, err
	}

	if err := s.repo.SetLocationCache(ctx, location); err != nil {
		log.WithError(err).Warn("Failed to cache location")
	}
	return location, nil
}
