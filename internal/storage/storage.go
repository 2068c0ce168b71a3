package storage

import (
	"context"
	"errors"
	"time"

	"github.com/hongminglow/field-checkin/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// ErrActiveCheckin indicates the employee already has an open check-in.
var ErrActiveCheckin = errors.New("active check-in already exists")

// UserStore captures account persistence needed by auth handlers and seeding.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// ClientStore manages client sites and employee assignments.
type ClientStore interface {
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	AssignClient(ctx context.Context, employeeID, clientID int64) error
	AssignedClient(ctx context.Context, employeeID, clientID int64) (models.Client, error)
	ListAssignedClients(ctx context.Context, employeeID int64) ([]models.Client, error)
}

// HistoryFilter bounds a history listing. Zero times mean unbounded.
type HistoryFilter struct {
	From time.Time
	To   time.Time
}

// CheckinStore persists check-in sessions.
type CheckinStore interface {
	ClientStore
	// ActiveCheckin returns the employee's open session or ErrNotFound.
	ActiveCheckin(ctx context.Context, employeeID int64) (models.CheckinView, error)
	// CreateCheckin inserts an open session atomically with the one-active-session
	// check and returns ErrActiveCheckin when another session is open.
	CreateCheckin(ctx context.Context, checkin models.Checkin) (models.Checkin, error)
	// CloseActiveCheckin closes the employee's open session or returns ErrNotFound.
	CloseActiveCheckin(ctx context.Context, employeeID int64, at time.Time) (models.Checkin, error)
	ListCheckins(ctx context.Context, employeeID int64, filter HistoryFilter) ([]models.CheckinView, error)
}

// ReportStore reads the data behind team reports.
type ReportStore interface {
	// ListTeam returns the manager's direct reports ordered by id, optionally
	// restricted to a single employee.
	ListTeam(ctx context.Context, managerID int64, employeeID *int64) ([]models.User, error)
	// ListTeamCheckins returns every check-in of those employees that started in [from, to).
	ListTeamCheckins(ctx context.Context, managerID int64, employeeID *int64, from, to time.Time) ([]models.Checkin, error)
}
