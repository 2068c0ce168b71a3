package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/field-checkin/internal/models"
	"github.com/hongminglow/field-checkin/internal/storage"
)

const checkinColumns = `ch.id, ch.employee_id, ch.client_id, ch.checkin_time, ch.checkout_time, ch.status,
	ch.notes, ch.latitude, ch.longitude, ch.distance_from_client`

// ActiveCheckin returns the employee's open session joined with its client.
func (s *Store) ActiveCheckin(ctx context.Context, employeeID int64) (models.CheckinView, error) {
	const query = `
		SELECT ` + checkinColumns + `, c.name, c.address
		FROM checkins ch
		JOIN clients c ON c.id = ch.client_id
		WHERE ch.employee_id = $1 AND ch.status = 'checked_in'
		ORDER BY ch.checkin_time DESC
		LIMIT 1`
	return scanCheckinView(s.pool.QueryRow(ctx, query, employeeID))
}

// CreateCheckin opens a session. The employee row is locked for the duration
// of the transaction so concurrent starts for the same employee serialize, and
// the partial unique index on active sessions rejects anything that slips by.
func (s *Store) CreateCheckin(ctx context.Context, checkin models.Checkin) (models.Checkin, error) {
	var created models.Checkin
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var locked int64
		if err := tx.QueryRow(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, checkin.EmployeeID).Scan(&locked); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return storage.ErrNotFound
			}
			return fmt.Errorf("lock employee: %w", err)
		}

		var active bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM checkins WHERE employee_id = $1 AND status = 'checked_in')`,
			checkin.EmployeeID,
		).Scan(&active); err != nil {
			return fmt.Errorf("check active session: %w", err)
		}
		if active {
			return storage.ErrActiveCheckin
		}

		const insert = `
			INSERT INTO checkins AS ch (employee_id, client_id, checkin_time, status, notes, latitude, longitude, distance_from_client)
			VALUES ($1, $2, $3, 'checked_in', $4, $5, $6, $7)
			RETURNING ` + checkinColumns
		row := tx.QueryRow(ctx, insert,
			checkin.EmployeeID, checkin.ClientID, checkin.CheckinTime,
			checkin.Notes, checkin.Latitude, checkin.Longitude, checkin.DistanceFromClient,
		)
		var err error
		created, err = scanCheckin(row)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return models.Checkin{}, storage.ErrActiveCheckin
		}
		return models.Checkin{}, err
	}
	return created, nil
}

// CloseActiveCheckin closes the open session. A row that is already checked
// out is never selected.
func (s *Store) CloseActiveCheckin(ctx context.Context, employeeID int64, at time.Time) (models.Checkin, error) {
	const query = `
		UPDATE checkins AS ch
		SET checkout_time = $2, status = 'checked_out'
		WHERE ch.employee_id = $1 AND ch.status = 'checked_in'
		RETURNING ` + checkinColumns
	return scanCheckin(s.pool.QueryRow(ctx, query, employeeID, at))
}

// ListCheckins returns the employee's check-ins joined with client details,
// newest first.
func (s *Store) ListCheckins(ctx context.Context, employeeID int64, filter storage.HistoryFilter) ([]models.CheckinView, error) {
	var b strings.Builder
	b.WriteString(`
		SELECT ` + checkinColumns + `, c.name, c.address
		FROM checkins ch
		JOIN clients c ON c.id = ch.client_id
		WHERE ch.employee_id = $1`)
	args := []any{employeeID}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		fmt.Fprintf(&b, " AND ch.checkin_time >= $%d", len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		fmt.Fprintf(&b, " AND ch.checkin_time < $%d", len(args))
	}
	b.WriteString(" ORDER BY ch.checkin_time DESC")

	rows, err := s.pool.Query(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CheckinView, error) {
		return scanCheckinView(row)
	})
}

func scanCheckin(row pgx.Row) (models.Checkin, error) {
	var c models.Checkin
	if err := row.Scan(checkinDest(&c)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Checkin{}, storage.ErrNotFound
		}
		return models.Checkin{}, err
	}
	return c, nil
}

func scanCheckinView(row pgx.Row) (models.CheckinView, error) {
	var v models.CheckinView
	dest := append(checkinDest(&v.Checkin), &v.ClientName, &v.ClientAddress)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.CheckinView{}, storage.ErrNotFound
		}
		return models.CheckinView{}, err
	}
	return v, nil
}

func checkinDest(c *models.Checkin) []any {
	return []any{
		&c.ID, &c.EmployeeID, &c.ClientID, &c.CheckinTime, &c.CheckoutTime, &c.Status,
		&c.Notes, &c.Latitude, &c.Longitude, &c.DistanceFromClient,
	}
}
