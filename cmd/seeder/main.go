package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/HugoFdezTbres/fairplay/internal/auth"
	"github.com/HugoFdezTbres/fairplay/internal/court"
)

// Simplified config loading for the script. The seeder talks to the primary
// database directly, never through a replica.
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	seedSports(db)
	facilityIDs := seedCourts(db)
	userIDs := seedUsers(db)
	seedReservations(db, facilityIDs, userIDs)
}

func seedSports(db *sql.DB) {
	sports := [][2]string{
		{"Padel", "Doubles racket sport played on an enclosed court"},
		{"Tennis", "Classic racket sport, singles or doubles"},
		{"Football", "Five-a-side on artificial turf"},
		{"Basketball", "Indoor full or half court"},
	}
	for _, s := range sports {
		_, err := db.Exec("INSERT OR IGNORE INTO sports (id, name, description) VALUES (?, ?, ?)",
			strings.ToLower(s[0]), s[0], s[1])
		if err != nil {
			log.Fatalf("Failed to insert sport %s: %s", s[0], err)
		}
	}
	log.Info("Ensured sports catalog exists.")
}

func seedCourts(db *sql.DB) []string {
	facilities := []struct {
		name string
		city string
	}{
		{"Centro Deportivo Norte", "Madrid"},
		{"Club de Padel Sur", "Sevilla"},
		{"Polideportivo Mar", "Valencia"},
	}

	ids := make([]string, 0, len(facilities))
	for _, f := range facilities {
		id := uuid.NewString()
		address, _ := json.Marshal(court.Address{Street: "Calle Mayor", Number: "1", City: f.city, Country: "Spain"})
		sports, _ := json.Marshal([]court.SportInfo{{Name: "Padel"}, {Name: "Tennis"}})
		units, _ := json.Marshal([]court.Unit{{ID: id + "-1", Name: "Court 1"}, {ID: id + "-2", Name: "Court 2"}})

		_, err := db.Exec(`INSERT OR IGNORE INTO courts (id, name, address_json, sports_json, opening_hour, closing_hour, units_json, price)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, f.name, string(address), string(sports), "08:00", "22:00", string(units), 1500)
		if err != nil {
			log.Fatalf("Failed to insert facility %s: %s", f.name, err)
		}
		ids = append(ids, id)
	}
	log.Info("Ensured facilities exist.", "count", len(ids))
	return ids
}

func seedUsers(db *sql.DB) []string {
	hash, err := auth.HashPassword("seeder-password")
	if err != nil {
		log.Fatalf("Failed to hash seeder password: %s", err)
	}

	ids := make([]string, 0, 4)
	for i := 1; i <= 4; i++ {
		id := fmt.Sprintf("seed-user-%d", i)
		_, err := db.Exec("INSERT OR IGNORE INTO users (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
			id, fmt.Sprintf("Seeder Player %d", i), fmt.Sprintf("seed-%d@example.com", i), hash, time.Now().Unix())
		if err != nil {
			log.Fatalf("Failed to insert seed user %s: %s", id, err)
		}
		ids = append(ids, id)
	}
	log.Info("Ensured seed users exist.")
	return ids
}

func seedReservations(db *sql.DB, facilityIDs, userIDs []string) {
	const batchSize = 100
	const numReservations = 10000

	log.Info("Preparing to insert dummy reservations...", "total", numReservations, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*14) // 14 columns per reservation

	for i := 0; i < numReservations; i++ {
		// Spread windows over the past year. Each reservation takes its own
		// synthetic court slot so no two seeded rows overlap.
		slotStart := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour).Truncate(time.Hour)
		courtID := fmt.Sprintf("%s-slot-%d", facilityIDs[i%len(facilityIDs)], i)

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			uuid.NewString(),
			courtID,
			userIDs[i%len(userIDs)],
			slotStart.Format("2006-01-02"),
			slotStart.Unix(),
			slotStart.Add(90*time.Minute).Unix(),
			"Padel",
			"Seeded Facility",
			"Calle Mayor 1, Madrid",
			1,    // can_modify
			"Completed",
			1500, // price, cents
			"Paid",
			slotStart.Add(-24*time.Hour).Unix(),
		)

		if (i+1)%batchSize == 0 || (i+1) == numReservations {
			stmt := fmt.Sprintf(`
				INSERT INTO reservations (id, court_id, user_id, date, start_time, end_time, sport,
					facility_name, facility_address, can_modify, status, price, payment_status, created_at)
				VALUES %s;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*14)
			log.Info("Inserted batch", "completed", i+1, "total", numReservations)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy reservations.", "duration", duration)
}
