package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/photocards-api/config"
	"github.com/oksasatya/photocards-api/internal/domain/entity"
	"github.com/oksasatya/photocards-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, about, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, "Demo User", entity.DefaultAbout, entity.DefaultAvatarURL).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	cards := []struct{ name, link string }{
		{"Байкал", "https://pictures.s3.yandex.net/frontend-developer/cards-compressed/baikal.jpg"},
		{"Карачаевск", "https://pictures.s3.yandex.net/frontend-developer/cards-compressed/kirigin.jpg"},
	}
	for _, c := range cards {
		var cardID string
		err = db.QueryRow(`
			INSERT INTO cards (name, link, owner_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`, c.name, c.link, userID).Scan(&cardID)
		if err != nil {
			log.Fatalf("failed to seed card %q: %v", c.name, err)
		}
		fmt.Printf("seeded card: id=%s name=%s\n", cardID, c.name)
	}
}
