package models

import "time"

const (
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
)

// Checkin is a single tracked visit of an employee at a client site.
type Checkin struct {
	ID                 int64      `json:"id"`
	EmployeeID         int64      `json:"employee_id"`
	ClientID           int64      `json:"client_id"`
	CheckinTime        time.Time  `json:"checkin_time"`
	CheckoutTime       *time.Time `json:"checkout_time"`
	Status             string     `json:"status"`
	Notes              *string    `json:"notes"`
	Latitude           *float64   `json:"latitude"`
	Longitude          *float64   `json:"longitude"`
	DistanceFromClient *float64   `json:"distance_from_client"`
}

// Active reports whether the visit has not been closed yet.
func (c Checkin) Active() bool {
	return c.Status == StatusCheckedIn && c.CheckoutTime == nil
}

// Duration returns the closed visit length, or zero while still in progress.
func (c Checkin) Duration() time.Duration {
	if c.CheckoutTime == nil {
		return 0
	}
	return c.CheckoutTime.Sub(c.CheckinTime)
}

// CheckinView is a check-in joined with its client for listings.
type CheckinView struct {
	Checkin
	ClientName    string `json:"client_name"`
	ClientAddress string `json:"client_address"`
}
