// Command seed loads a demo manager, team and client sites.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hongminglow/field-checkin/internal/auth"
	"github.com/hongminglow/field-checkin/internal/models"
	"github.com/hongminglow/field-checkin/internal/storage"
	"github.com/hongminglow/field-checkin/internal/storage/postgres"
)

type site struct {
	name, address string
	lat, lon      float64
}

var sites = []site{
	{"ABC Corp", "Cyber City, Gurugram", 28.4949, 77.0887},
	{"XYZ Ltd", "Connaught Place, New Delhi", 28.6315, 77.2167},
	{"Tech Solutions", "Sector 62, Noida", 28.6270, 77.3725},
	{"Global Services", "Bandra Kurla Complex, Mumbai", 19.0596, 72.8656},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	password := strings.TrimSpace(os.Getenv("SEED_PASSWORD"))
	if password == "" {
		password = "password123"
	}

	ctx := context.Background()
	store, err := postgres.NewStore(ctx, databaseURL)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	defer store.Close()

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	manager, fresh := ensureUser(ctx, store, models.User{
		Name: "Amit Sharma", Email: "manager@unolo.com", Role: models.RoleManager, PasswordHash: hash,
	})
	if !fresh {
		log.Printf("manager %s already exists; nothing to seed", manager.Email)
		return
	}
	employees := []models.User{
		mustUser(ctx, store, models.User{
			Name: "Rahul Kumar", Email: "rahul@unolo.com", Role: models.RoleEmployee, ManagerID: &manager.ID, PasswordHash: hash,
		}),
		mustUser(ctx, store, models.User{
			Name: "Priya Singh", Email: "priya@unolo.com", Role: models.RoleEmployee, ManagerID: &manager.ID, PasswordHash: hash,
		}),
		mustUser(ctx, store, models.User{
			Name: "Vikram Patel", Email: "vikram@unolo.com", Role: models.RoleEmployee, ManagerID: &manager.ID, PasswordHash: hash,
		}),
	}

	clients := make([]models.Client, 0, len(sites))
	for _, s := range sites {
		lat, lon := s.lat, s.lon
		client, err := store.CreateClient(ctx, models.Client{Name: s.name, Address: s.address, Latitude: &lat, Longitude: &lon})
		if err != nil {
			log.Fatalf("create client %s: %v", s.name, err)
		}
		clients = append(clients, client)
	}

	// Every employee gets two consecutive sites, wrapping around.
	for i, employee := range employees {
		for j := 0; j < 2; j++ {
			client := clients[(i+j)%len(clients)]
			if err := store.AssignClient(ctx, employee.ID, client.ID); err != nil {
				log.Fatalf("assign %s to %s: %v", client.Name, employee.Email, err)
			}
		}
	}

	log.Printf("seeded manager %s, %d employees, %d clients", manager.Email, len(employees), len(clients))
}

// ensureUser creates user or loads the existing account with the same email.
// fresh is false when the account was already there.
func ensureUser(ctx context.Context, store *postgres.Store, user models.User) (models.User, bool) {
	created, err := store.CreateUser(ctx, user)
	if err == nil {
		return created, true
	}
	if !errors.Is(err, storage.ErrAlreadyExists) {
		log.Fatalf("create user %s: %v", user.Email, err)
	}
	existing, err := store.FindByEmail(ctx, user.Email)
	if err != nil {
		log.Fatalf("load user %s: %v", user.Email, err)
	}
	return existing, false
}

func mustUser(ctx context.Context, store *postgres.Store, user models.User) models.User {
	u, _ := ensureUser(ctx, store, user)
	return u
}
