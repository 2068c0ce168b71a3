package models

import "time"

// Client is a customer site employees visit.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// HasLocation reports whether both site coordinates are known.
func (c Client) HasLocation() bool {
	return c.Latitude != nil && c.Longitude != nil
}
