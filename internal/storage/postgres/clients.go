package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/field-checkin/internal/models"
	"github.com/hongminglow/field-checkin/internal/storage"
)

const clientColumns = `c.id, c.name, c.address, c.latitude, c.longitude, c.created_at`

// CreateClient inserts a client site.
func (s *Store) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	const query = `
		INSERT INTO clients AS c (name, address, latitude, longitude)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + clientColumns
	return scanClient(s.pool.QueryRow(ctx, query, client.Name, client.Address, client.Latitude, client.Longitude))
}

// AssignClient authorises an employee to check in at a client. Repeated
// assignments are no-ops.
func (s *Store) AssignClient(ctx context.Context, employeeID, clientID int64) error {
	const query = `
		INSERT INTO employee_clients (employee_id, client_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
	if _, err := s.pool.Exec(ctx, query, employeeID, clientID); err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("assign client: %w", err)
	}
	return nil
}

// AssignedClient returns the client only when it is assigned to the employee.
func (s *Store) AssignedClient(ctx context.Context, employeeID, clientID int64) (models.Client, error) {
	const query = `
		SELECT ` + clientColumns + `
		FROM clients c
		JOIN employee_clients ec ON ec.client_id = c.id
		WHERE ec.employee_id = $1 AND c.id = $2`
	return scanClient(s.pool.QueryRow(ctx, query, employeeID, clientID))
}

// ListAssignedClients returns the employee's clients ordered by name.
func (s *Store) ListAssignedClients(ctx context.Context, employeeID int64) ([]models.Client, error) {
	const query = `
		SELECT ` + clientColumns + `
		FROM clients c
		JOIN employee_clients ec ON ec.client_id = c.id
		WHERE ec.employee_id = $1
		ORDER BY c.name, c.id`
	rows, err := s.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Client, error) {
		return scanClient(row)
	})
}

func scanClient(row pgx.Row) (models.Client, error) {
	var c models.Client
	if err := row.Scan(&c.ID, &c.Name, &c.Address, &c.Latitude, &c.Longitude, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Client{}, storage.ErrNotFound
		}
		return models.Client{}, err
	}
	return c, nil
}
