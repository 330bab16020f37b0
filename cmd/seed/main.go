// Command seed populates the users table with the site's account set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"homepage/internal/config"
	"homepage/internal/database"
	"homepage/internal/seed"
)

func main() {
	var users stringList
	flag.Var(&users, "user", "username:password pair to seed (repeatable); defaults to the built-in development set")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	creds := seed.DefaultUsers
	if len(users) > 0 {
		creds, err = parseCredentials(users)
		if err != nil {
			log.Fatalf("Invalid -user flag: %v", err)
		}
	}

	if err := seed.Users(db, creds); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	os.Exit(0)
}

type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func parseCredentials(pairs []string) ([]seed.Credential, error) {
	creds := make([]seed.Credential, 0, len(pairs))
	for _, pair := range pairs {
		username, password, ok := strings.Cut(pair, ":")
		if !ok || username == "" || password == "" {
			return nil, fmt.Errorf("expected username:password, got %q", pair)
		}
		creds = append(creds, seed.Credential{Username: username, Password: password})
	}
	return creds, nil
}
