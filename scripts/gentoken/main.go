package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"catalog/internal/auth"
	"catalog/internal/model"

	"github.com/google/uuid"
)

// Mints a development bearer token so the API can be exercised without a
// running identity provider.
func main() {
	var (
		name  = flag.String("name", "dev", "username claim")
		id    = flag.String("id", "", "subject UUID (random when empty)")
		admin = flag.Bool("admin", false, "admin claim")
		ttl   = flag.Duration("ttl", 24*time.Hour, "token lifetime")
	)
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	subject := uuid.New()
	if *id != "" {
		parsed, err := uuid.Parse(*id)
		if err != nil {
			log.Fatalf("invalid subject UUID: %v", err)
		}
		subject = parsed
	}

	token, err := auth.NewToken(&model.Identity{
		ID:       subject,
		Username: *name,
		Admin:    *admin,
	}, secret, *ttl)
	if err != nil {
		log.Fatalf("failed to mint token: %v", err)
	}

	fmt.Printf("subject: %s\n", subject)
	fmt.Printf("token:   %s\n", token)
}
