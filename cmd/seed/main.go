package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/longchau/pharmacy-web/config"
	"github.com/longchau/pharmacy-web/pkg/helpers"
)

// seed inserts a demo account for local development:
//
//	email:    demo@longchau.test
//	password: Passw0rd123
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	hash, err := helpers.HashPassword("Passw0rd123")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	const q = `
		INSERT INTO users (email, password_hash, first_name, last_name, phone, newsletter, agreed_terms)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (lower(email)) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			updated_at    = now()
		RETURNING id`

	var id string
	err = pool.QueryRow(ctx, q,
		"demo@longchau.test", hash, "Demo", "User", "0901234567", true, true,
	).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed demo user: %v", err)
	}
	log.Printf("seeded demo user %s (demo@longchau.test / Passw0rd123)", id)
}
