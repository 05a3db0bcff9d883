// cmd/seeduser/main.go — creates or resets a login user.
// Usage: go run ./cmd/seeduser [name] [password]
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/JhonatanMorais-py/meupdv/internal/infra"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "database/db.sqlite3"
	}
	name := "admin"
	password := "1234"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	db, err := infra.NewDatabase(path)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("migrate error: %v", err)
	}

	result := db.Exec(`
		INSERT INTO users (name, password) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET password = excluded.password
	`, name, string(hash))
	if result.Error != nil {
		log.Fatalf("insert error: %v", result.Error)
	}
	fmt.Printf("user %q created/updated\n", name)
}
