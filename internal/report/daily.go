// Package report builds the manager-facing daily activity summary.
package report

import (
	"context"
	"fmt"
	"math"

	"github.com/hongminglow/field-checkin/internal/businessday"
	"github.com/hongminglow/field-checkin/internal/models"
	"github.com/hongminglow/field-checkin/internal/storage"
)

// ErrInvalidDate indicates a missing or malformed report date.
var ErrInvalidDate = businessday.ErrInvalidDate

// Service computes team reports for managers.
type Service struct {
	store storage.ReportStore
}

// NewService creates a report service backed by store.
func NewService(store storage.ReportStore) *Service {
	return &Service{store: store}
}

// DailySummary aggregates the manager's team activity on date (YYYY-MM-DD,
// business day at UTC+5:30). A non-nil employeeID restricts the report to that
// employee; one who does not report to the manager yields an empty report.
func (s *Service) DailySummary(ctx context.Context, managerID int64, date string, employeeID *int64) (models.DailySummary, error) {
	day, err := businessday.Parse(date)
	if err != nil {
		return models.DailySummary{}, err
	}

	team, err := s.store.ListTeam(ctx, managerID, employeeID)
	if err != nil {
		return models.DailySummary{}, fmt.Errorf("list team: %w", err)
	}
	checkins, err := s.store.ListTeamCheckins(ctx, managerID, employeeID, day.Start(), day.End())
	if err != nil {
		return models.DailySummary{}, fmt.Errorf("list team check-ins: %w", err)
	}

	return Aggregate(day, team, checkins), nil
}

// Aggregate folds the day's check-ins into per-employee and team statistics.
// Rows outside the day or belonging to someone outside team are ignored.
func Aggregate(day businessday.Day, team []models.User, checkins []models.Checkin) models.DailySummary {
	type acc struct {
		count   int
		clients map[int64]struct{}
		hours   float64
	}

	byEmployee := make(map[int64]*acc, len(team))
	for _, u := range team {
		byEmployee[u.ID] = &acc{clients: make(map[int64]struct{})}
	}

	teamClients := make(map[int64]struct{})
	for _, c := range checkins {
		a, ok := byEmployee[c.EmployeeID]
		if !ok || !day.Contains(c.CheckinTime) {
			continue
		}
		a.count++
		a.clients[c.ClientID] = struct{}{}
		teamClients[c.ClientID] = struct{}{}
		if c.CheckoutTime != nil {
			a.hours += c.Duration().Hours()
		}
	}

	summary := models.DailySummary{
		Date:              day.String(),
		EmployeeBreakdown: make([]models.EmployeeStats, 0, len(team)),
	}
	var teamHours float64
	for _, u := range team {
		a := byEmployee[u.ID]
		summary.EmployeeBreakdown = append(summary.EmployeeBreakdown, models.EmployeeStats{
			EmployeeID:          u.ID,
			EmployeeName:        u.Name,
			TotalCheckins:       a.count,
			ClientsVisitedCount: len(a.clients),
			TotalHours:          round2(a.hours),
		})
		summary.TeamSummary.TotalCheckins += a.count
		teamHours += a.hours
		if a.count > 0 {
			summary.TeamSummary.ActiveEmployees++
		}
	}
	summary.TeamSummary.TotalHours = round2(teamHours)
	summary.TeamSummary.TotalUniqueClients = len(teamClients)
	return summary
}

// round2 rounds hours to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
