package models

// DailySummary is the team activity report for one business day.
type DailySummary struct {
	Date              string          `json:"date"`
	TeamSummary       TeamSummary     `json:"team_summary"`
	EmployeeBreakdown []EmployeeStats `json:"employee_breakdown"`
}

// TeamSummary aggregates the whole team for the day.
type TeamSummary struct {
	TotalCheckins      int     `json:"total_checkins"`
	TotalHours         float64 `json:"total_hours"`
	ActiveEmployees    int     `json:"active_employees"`
	TotalUniqueClients int     `json:"total_unique_clients"`
}

// EmployeeStats is one row of the per-employee breakdown.
type EmployeeStats struct {
	EmployeeID          int64   `json:"employee_id"`
	EmployeeName        string  `json:"employee_name"`
	TotalCheckins       int     `json:"total_checkins"`
	ClientsVisitedCount int     `json:"clients_visited_count"`
	TotalHours          float64 `json:"total_hours"`
}
