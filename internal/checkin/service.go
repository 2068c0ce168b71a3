// Package checkin implements the per-employee check-in session lifecycle.
package checkin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hongminglow/field-checkin/internal/businessday"
	"github.com/hongminglow/field-checkin/internal/geo"
	"github.com/hongminglow/field-checkin/internal/models"
	"github.com/hongminglow/field-checkin/internal/storage"
)

var (
	// ErrClientRequired indicates the request named no client.
	ErrClientRequired = errors.New("client ID is required")
	// ErrNotAssigned indicates the employee may not check in at the client.
	ErrNotAssigned = errors.New("you are not assigned to this client")
	// ErrAlreadyCheckedIn indicates the employee already has an open session.
	ErrAlreadyCheckedIn = errors.New("you already have an active check-in, please checkout first")
	// ErrNoActiveCheckin indicates there is no open session to close.
	ErrNoActiveCheckin = errors.New("no active check-in found")
	// ErrInvalidDate indicates a history date that is not YYYY-MM-DD.
	ErrInvalidDate = businessday.ErrInvalidDate
)

// StartRequest carries the employee-supplied part of a check-in.
type StartRequest struct {
	ClientID  int64
	Latitude  *float64
	Longitude *float64
	Notes     string
}

// StartResult is the persisted check-in plus the non-blocking distance advisory.
type StartResult struct {
	Checkin models.Checkin
	Warning string
}

// Service runs check-in transitions for an authenticated employee.
type Service struct {
	store storage.CheckinStore
	now   func() time.Time
}

// NewService creates a service backed by store using the wall clock.
func NewService(store storage.CheckinStore) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Start opens a new session for employeeID at the requested client.
func (s *Service) Start(ctx context.Context, employeeID int64, req StartRequest) (StartResult, error) {
	if req.ClientID <= 0 {
		return StartResult{}, ErrClientRequired
	}

	if _, err := s.store.ActiveCheckin(ctx, employeeID); err == nil {
		return StartResult{}, ErrAlreadyCheckedIn
	} else if !errors.Is(err, storage.ErrNotFound) {
		return StartResult{}, fmt.Errorf("lookup active check-in: %w", err)
	}

	client, err := s.store.AssignedClient(ctx, employeeID, req.ClientID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return StartResult{}, ErrNotAssigned
		}
		return StartResult{}, fmt.Errorf("lookup assignment: %w", err)
	}

	distance := geo.DistanceToSite(req.Latitude, req.Longitude, client)
	row := models.Checkin{
		EmployeeID:         employeeID,
		ClientID:           client.ID,
		CheckinTime:        s.now().UTC(),
		Status:             models.StatusCheckedIn,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		DistanceFromClient: distance,
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		row.Notes = &notes
	}

	created, err := s.store.CreateCheckin(ctx, row)
	if err != nil {
		if errors.Is(err, storage.ErrActiveCheckin) {
			return StartResult{}, ErrAlreadyCheckedIn
		}
		return StartResult{}, fmt.Errorf("create check-in: %w", err)
	}
	return StartResult{Checkin: created, Warning: geo.Warning(created.DistanceFromClient)}, nil
}

// Stop closes the employee's open session. Only a row that is still checked in
// is ever touched.
func (s *Service) Stop(ctx context.Context, employeeID int64) (models.Checkin, error) {
	closed, err := s.store.CloseActiveCheckin(ctx, employeeID, s.now().UTC())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Checkin{}, ErrNoActiveCheckin
		}
		return models.Checkin{}, fmt.Errorf("close check-in: %w", err)
	}
	return closed, nil
}

// Active returns the open session, or nil when the employee is not checked in.
func (s *Service) Active(ctx context.Context, employeeID int64) (*models.CheckinView, error) {
	active, err := s.store.ActiveCheckin(ctx, employeeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup active check-in: %w", err)
	}
	return &active, nil
}

// History lists the employee's check-ins between two optional business dates,
// both inclusive. Dates are validated before the store is queried.
func (s *Service) History(ctx context.Context, employeeID int64, startDate, endDate string) ([]models.CheckinView, error) {
	var filter storage.HistoryFilter
	if startDate != "" {
		day, err := businessday.Parse(startDate)
		if err != nil {
			return nil, err
		}
		filter.From = day.Start()
	}
	if endDate != "" {
		day, err := businessday.Parse(endDate)
		if err != nil {
			return nil, err
		}
		filter.To = day.End()
	}

	rows, err := s.store.ListCheckins(ctx, employeeID, filter)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	if rows == nil {
		rows = []models.CheckinView{}
	}
	return rows, nil
}

// Clients lists the sites the employee may check in at.
func (s *Service) Clients(ctx context.Context, employeeID int64) ([]models.Client, error) {
	clients, err := s.store.ListAssignedClients(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	if clients == nil {
		clients = []models.Client{}
	}
	return clients, nil
}
