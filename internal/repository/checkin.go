package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/checkin_system/internal/models"
	"github.com/shenikar/checkin_system/internal/service"
)

const locationCacheKey = "location:%d"

type CheckinRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewCheckinRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.CheckinRepository {
	return &CheckinRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// GetLocationByID returns the location, or service.ErrLocationNotFound.
func (r *CheckinRepository) GetLocationByID(ctx context.Context, id int64) (*models.Location, error) {
	location := &models.Location{}
	query := `
		SELECT id, name, latitude, longitude
		FROM locations
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&location.ID,
		&location.Name,
		&location.Latitude,
		&location.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("location with id %d: %w", id, service.ErrLocationNotFound)
		}
		return nil, fmt.Errorf("failed to get location by id: %w", err)
	}
	return location, nil
}

// ListLocations returns all registered locations.
func (r *CheckinRepository) ListLocations(ctx context.Context) ([]*models.Location, error) {
	query := `
		SELECT id, name, latitude, longitude
		FROM locations
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	locations := make([]*models.Location, 0)
	for rows.Next() {
		location := &models.Location{}
		if err := rows.Scan(&location.ID, &location.Name, &location.Latitude, &location.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locations: %w", err)
	}
	return locations, nil
}

// GetAllowedGrades returns the allowed_grades field for a location. found is
// false when the location has no permission row, which means no grade is
// authorized there.
func (r *CheckinRepository) GetAllowedGrades(ctx context.Context, locationID int64) (string, bool, error) {
	var grades string
	query := `
		SELECT allowed_grades
		FROM location_permissions
		WHERE location_id = $1;
	`
	err := r.db.QueryRow(ctx, query, locationID).Scan(&grades)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get location permissions: %w", err)
	}
	return grades, true, nil
}

// RecordCheckin counts the employee's check-ins inside the trailing window and
// inserts a new event only when the count is below limit. The count and the
// insert run in one transaction under a per-employee advisory lock, so two
// concurrent attempts from the same employee cannot both slip under the limit.
func (r *CheckinRepository) RecordCheckin(ctx context.Context, employeeID uuid.UUID, locationID int64, limit, windowMinutes int) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin check-in transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// The lock is transaction-scoped and keyed on the employee identity.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0));`, employeeID); err != nil {
		return false, fmt.Errorf("failed to take per-employee lock: %w", err)
	}

	var count int
	countQuery := `
		SELECT COUNT(*)
		FROM checkins
		WHERE employee_id = $1
		  AND checkin_time > NOW() - ($2 * INTERVAL '1 minute');
	`
	if err := tx.QueryRow(ctx, countQuery, employeeID, windowMinutes).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count recent check-ins: %w", err)
	}

	if count >= limit {
		return false, nil
	}

	insertQuery := `
		INSERT INTO checkins (employee_id, location_id, checkin_time)
		VALUES ($1, $2, NOW());
	`
	if _, err := tx.Exec(ctx, insertQuery, employeeID, locationID); err != nil {
		return false, fmt.Errorf("failed to insert check-in: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit check-in transaction: %w", err)
	}
	return true, nil
}

// ListHistory returns the employee's most recent check-ins joined with the
// location name, newest first, capped at limit.
func (r *CheckinRepository) ListHistory(ctx context.Context, employeeID uuid.UUID, limit int) ([]*models.CheckinRecord, error) {
	query := `
		SELECT c.checkin_time, l.name AS location_name
		FROM checkins c
		JOIN locations l ON c.location_id = l.id
		WHERE c.employee_id = $1
		ORDER BY c.checkin_time DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-in history: %w", err)
	}
	defer rows.Close()

	records := make([]*models.CheckinRecord, 0)
	for rows.Next() {
		record := &models.CheckinRecord{}
		if err := rows.Scan(&record.CheckinTime, &record.LocationName); err != nil {
			return nil, fmt.Errorf("failed to scan check-in row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating check-in history: %w", err)
	}
	return records, nil
}

// GetLocationFromCache tries Redis first; a miss returns (nil, nil).
func (r *CheckinRepository) GetLocationFromCache(ctx context.Context, id int64) (*models.Location, error) {
	key := fmt.Sprintf(locationCacheKey, id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get location from cache: %w", err)
	}

	location := &models.Location{}
	if err := json.Unmarshal(val, location); err != nil {
		return nil, fmt.Errorf("failed to unmarshal location from cache: %w", err)
	}
	return location, nil
}

// SetLocationCache stores a location in Redis. Locations are static reference
// data, so a short TTL is enough to absorb repeated check-in reads.
func (r *CheckinRepository) SetLocationCache(ctx context.Context, location *models.Location) error {
	key := fmt.Sprintf(locationCacheKey, location.ID)
	val, err := json.Marshal(location)
	if err != nil {
		return fmt.Errorf("failed to marshal location for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set location in cache: %w", err)
	}
	return nil
}
