package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckinRequestClientID(t *testing.T) {
	cases := map[string]ID{
		`{"client_id":7}`:      7,
		`{"client_id":"7"}`:    7,
		`{"client_id":" 12 "}`: 12,
		`{"client_id":""}`:     0,
		`{"client_id":null}`:   0,
		`{}`:                   0,
	}
	for body, want := range cases {
		var req CheckinRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		assert.Equal(t, want, req.ClientID, body)
	}

	for _, body := range []string{`{"client_id":"abc"}`, `{"client_id":1.5}`, `{"client_id":true}`} {
		var req CheckinRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}
