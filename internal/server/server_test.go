package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/field-checkin/internal/auth"
	"github.com/hongminglow/field-checkin/internal/config"
	"github.com/hongminglow/field-checkin/internal/models"
	"github.com/hongminglow/field-checkin/internal/storage/memory"
)

func TestServerEndToEnd(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	hash, err := auth.HashPassword("field-pass-1")
	require.NoError(t, err)

	manager, err := store.CreateUser(ctx, models.User{Name: "M", Email: "m@example.com", Role: models.RoleManager, PasswordHash: hash})
	require.NoError(t, err)
	employee, err := store.CreateUser(ctx, models.User{Name: "E", Email: "e@example.com", Role: models.RoleEmployee, ManagerID: &manager.ID, PasswordHash: hash})
	require.NoError(t, err)
	lat, lon := 12.97, 77.59
	site, err := store.CreateClient(ctx, models.Client{Name: "Site", Latitude: &lat, Longitude: &lon})
	require.NoError(t, err)
	require.NoError(t, store.AssignClient(ctx, employee.ID, site.ID))

	cfg := config.Config{
		Port:        "0",
		JWTSecret:   "secret",
		JWTIssuer:   "field-checkin",
		JWTTTL:      time.Hour,
		CORSOrigins: []string{"*"},
	}
	ts := httptest.NewServer(New(cfg, store).Handler())
	defer ts.Close()

	login := func(email string) string {
		body, _ := json.Marshal(map[string]string{"email": email, "password": "field-pass-1"})
		resp, err := http.Post(ts.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
		var out struct {
			Data struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out.Data.Token
	}

	call := func(method, path, token string, body any) int {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req, err := http.NewRequest(method, ts.URL+path, &buf)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	employeeToken := login("E@example.com")
	managerToken := login("m@example.com")

	assert.Equal(t, http.StatusCreated, call(http.MethodPost, "/api/checkin", employeeToken, map[string]any{"client_id": site.ID, "latitude": lat, "longitude": lon}))
	assert.Equal(t, http.StatusOK, call(http.MethodPut, "/api/checkin/checkout", employeeToken, nil))
	assert.Equal(t, http.StatusForbidden, call(http.MethodGet, "/api/reports/daily-summary?date=2024-01-15", employeeToken, nil))
	assert.Equal(t, http.StatusOK, call(http.MethodGet, "/api/reports/daily-summary?date=2024-01-15", managerToken, nil))
	assert.Equal(t, http.StatusUnauthorized, call(http.MethodGet, "/api/checkin/history", "bogus", nil))
}
