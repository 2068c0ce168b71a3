package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is a numeric identifier that also accepts its decimal string form, as
// sent by HTML select values. null and "" decode to zero.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	raw := string(bytes.TrimSpace(data))
	if raw == "null" {
		*id = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*id = 0
			return nil
		}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", data)
	}
	*id = ID(v)
	return nil
}

type CheckinRequest struct {
	ClientID  ID       `json:"client_id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     string   `json:"notes"`
}

type CheckinResponse struct {
	ID                 int64    `json:"id"`
	DistanceFromClient *float64 `json:"distance_from_client"`
	Warning            string   `json:"warning,omitempty"`
	Message            string   `json:"message"`
}
