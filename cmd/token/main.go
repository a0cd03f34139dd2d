// Command token issues an access token for an actor. It is used to
// bootstrap staff access and for local testing; production tokens come from
// the identity provider sharing AUTH_JWT_SECRET.
//
// Usage:
//
//	token --id=<uuid> [--email=user@example.com] [--staff]
//
// Reads AUTH_* settings the same way the server does.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/changetrail/internal/auth"
	"github.com/heartmarshall/changetrail/internal/config"
	"github.com/heartmarshall/changetrail/internal/domain"
)

func main() {
	id := flag.String("id", "", "actor UUID (generated when empty)")
	email := flag.String("email", "", "actor email")
	staff := flag.Bool("staff", false, "grant staff access")
	flag.Parse()

	var cfg config.AuthConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("read auth config: %v", err)
	}

	actorID := uuid.New()
	if *id != "" {
		parsed, err := uuid.Parse(*id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Usage: token --id=<uuid> [--email=...] [--staff]")
			os.Exit(1)
		}
		actorID = parsed
	}

	manager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)
	token, err := manager.GenerateAccessToken(domain.Actor{ID: actorID, Email: *email, IsStaff: *staff})
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
