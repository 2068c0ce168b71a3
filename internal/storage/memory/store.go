// Package memory is an in-process implementation of the storage interfaces
// for unit tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hongminglow/field-checkin/internal/models"
	"github.com/hongminglow/field-checkin/internal/storage"
)

var (
	_ storage.UserStore    = (*Store)(nil)
	_ storage.CheckinStore = (*Store)(nil)
	_ storage.ReportStore  = (*Store)(nil)
)

type assignment struct {
	employeeID int64
	clientID   int64
}

// Store keeps every table in maps guarded by a single mutex.
type Store struct {
	mu          sync.Mutex
	nextID      int64
	users       map[int64]models.User
	clients     map[int64]models.Client
	assignments map[assignment]struct{}
	checkins    map[int64]models.Checkin

	// Calls counts store invocations, letting tests assert that validation
	// happens before storage is touched.
	Calls int
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:       make(map[int64]models.User),
		clients:     make(map[int64]models.Client),
		assignments: make(map[assignment]struct{}),
		checkins:    make(map[int64]models.Checkin),
	}
}

func (s *Store) lock() func() {
	s.mu.Lock()
	s.Calls++
	return s.mu.Unlock
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// CreateUser inserts a user, enforcing unique e-mail addresses.
func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	defer s.lock()()
	user.Email = models.NormalizeEmail(user.Email)
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	user.ID = s.id()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	s.users[user.ID] = user
	return user, nil
}

// FindByID fetches a user by primary key.
func (s *Store) FindByID(_ context.Context, id int64) (models.User, error) {
	defer s.lock()()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

// FindByEmail fetches a user by case-insensitive e-mail.
func (s *Store) FindByEmail(_ context.Context, email string) (models.User, error) {
	defer s.lock()()
	email = models.NormalizeEmail(email)
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// CreateClient inserts a client site.
func (s *Store) CreateClient(_ context.Context, client models.Client) (models.Client, error) {
	defer s.lock()()
	client.ID = s.id()
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now().UTC()
	}
	s.clients[client.ID] = client
	return client, nil
}

// AssignClient authorises employeeID to check in at clientID.
func (s *Store) AssignClient(_ context.Context, employeeID, clientID int64) error {
	defer s.lock()()
	if _, ok := s.users[employeeID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := s.clients[clientID]; !ok {
		return storage.ErrNotFound
	}
	s.assignments[assignment{employeeID, clientID}] = struct{}{}
	return nil
}

// AssignedClient returns the client only when it is assigned to the employee.
func (s *Store) AssignedClient(_ context.Context, employeeID, clientID int64) (models.Client, error) {
	defer s.lock()()
	if _, ok := s.assignments[assignment{employeeID, clientID}]; !ok {
		return models.Client{}, storage.ErrNotFound
	}
	client, ok := s.clients[clientID]
	if !ok {
		return models.Client{}, storage.ErrNotFound
	}
	return client, nil
}

// ListAssignedClients returns the employee's clients ordered by name.
func (s *Store) ListAssignedClients(_ context.Context, employeeID int64) ([]models.Client, error) {
	defer s.lock()()
	var out []models.Client
	for a := range s.assignments {
		if a.employeeID == employeeID {
			out = append(out, s.clients[a.clientID])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// ActiveCheckin returns the employee's open session.
func (s *Store) ActiveCheckin(_ context.Context, employeeID int64) (models.CheckinView, error) {
	defer s.lock()()
	if c, ok := s.activeLocked(employeeID); ok {
		return s.viewLocked(c), nil
	}
	return models.CheckinView{}, storage.ErrNotFound
}

// CreateCheckin inserts an open session unless one already exists.
func (s *Store) CreateCheckin(_ context.Context, checkin models.Checkin) (models.Checkin, error) {
	defer s.lock()()
	if _, ok := s.activeLocked(checkin.EmployeeID); ok {
		return models.Checkin{}, storage.ErrActiveCheckin
	}
	checkin.ID = s.id()
	checkin.Status = models.StatusCheckedIn
	checkin.CheckoutTime = nil
	s.checkins[checkin.ID] = checkin
	return checkin, nil
}

// CloseActiveCheckin closes the employee's open session.
func (s *Store) CloseActiveCheckin(_ context.Context, employeeID int64, at time.Time) (models.Checkin, error) {
	defer s.lock()()
	c, ok := s.activeLocked(employeeID)
	if !ok {
		return models.Checkin{}, storage.ErrNotFound
	}
	c.CheckoutTime = &at
	c.Status = models.StatusCheckedOut
	s.checkins[c.ID] = c
	return c, nil
}

// ListCheckins returns the employee's check-ins newest first.
func (s *Store) ListCheckins(_ context.Context, employeeID int64, filter storage.HistoryFilter) ([]models.CheckinView, error) {
	defer s.lock()()
	var out []models.CheckinView
	for _, c := range s.checkins {
		if c.EmployeeID != employeeID {
			continue
		}
		if !filter.From.IsZero() && c.CheckinTime.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && !c.CheckinTime.Before(filter.To) {
			continue
		}
		out = append(out, s.viewLocked(c))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CheckinTime.After(out[j].CheckinTime)
	})
	return out, nil
}

// ListTeam returns the manager's direct reports ordered by id.
func (s *Store) ListTeam(_ context.Context, managerID int64, employeeID *int64) ([]models.User, error) {
	defer s.lock()()
	return s.teamLocked(managerID, employeeID), nil
}

// ListTeamCheckins returns the team's check-ins started in [from, to).
func (s *Store) ListTeamCheckins(_ context.Context, managerID int64, employeeID *int64, from, to time.Time) ([]models.Checkin, error) {
	defer s.lock()()
	team := make(map[int64]bool)
	for _, u := range s.teamLocked(managerID, employeeID) {
		team[u.ID] = true
	}
	var out []models.Checkin
	for _, c := range s.checkins {
		if team[c.EmployeeID] && !c.CheckinTime.Before(from) && c.CheckinTime.Before(to) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// PutCheckin stores a check-in row verbatim, for seeding historical data.
func (s *Store) PutCheckin(checkin models.Checkin) models.Checkin {
	defer s.lock()()
	checkin.ID = s.id()
	s.checkins[checkin.ID] = checkin
	return checkin
}

func (s *Store) teamLocked(managerID int64, employeeID *int64) []models.User {
	var out []models.User
	for _, u := range s.users {
		if u.ManagerID == nil || *u.ManagerID != managerID {
			continue
		}
		if employeeID != nil && u.ID != *employeeID {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) activeLocked(employeeID int64) (models.Checkin, bool) {
	for _, c := range s.checkins {
		if c.EmployeeID == employeeID && c.Status == models.StatusCheckedIn {
			return c, true
		}
	}
	return models.Checkin{}, false
}

func (s *Store) viewLocked(c models.Checkin) models.CheckinView {
	client := s.clients[c.ClientID]
	return models.CheckinView{Checkin: c, ClientName: client.Name, ClientAddress: client.Address}
}
