package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/field-checkin/internal/models"
)

// ListTeam returns the manager's direct reports ordered by id.
func (s *Store) ListTeam(ctx context.Context, managerID int64, employeeID *int64) ([]models.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE manager_id = $1 AND ($2::BIGINT IS NULL OR id = $2)
		ORDER BY id`
	rows, err := s.pool.Query(ctx, query, managerID, employeeID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.User, error) {
		return scanUser(row)
	})
}

// ListTeamCheckins returns the team's check-ins that started in [from, to).
func (s *Store) ListTeamCheckins(ctx context.Context, managerID int64, employeeID *int64, from, to time.Time) ([]models.Checkin, error) {
	const query = `
		SELECT ` + checkinColumns + `
		FROM checkins ch
		JOIN users u ON u.id = ch.employee_id
		WHERE u.manager_id = $1
			AND ($2::BIGINT IS NULL OR u.id = $2)
			AND ch.checkin_time >= $3 AND ch.checkin_time < $4
		ORDER BY ch.id`
	rows, err := s.pool.Query(ctx, query, managerID, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Checkin, error) {
		return scanCheckin(row)
	})
}
