package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/rakapradana/goaltrack/config"
	"github.com/rakapradana/goaltrack/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@goaltrack.local"
	password := "password123"
	username := "demoUser"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, username, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s username=%s password=%s\n", id, email, username, password)

	for _, text := range []string{"run 5k", "read one book a month", "learn Go"} {
		if _, err := db.Exec(`
			INSERT INTO goals (text, user_id)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM goals WHERE text = $1 AND user_id = $2)
		`, text, id); err != nil {
			log.Fatalf("failed to seed goal %q: %v", text, err)
		}
	}
	fmt.Println("seeded sample goals for demo user")
}
