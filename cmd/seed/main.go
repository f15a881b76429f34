// Seeds the database with the admin account, the default project categories
// and the fixed experience levels. Safe to run once against a fresh database.
package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/crypto/bcrypt"

	"github.com/fahmiks/portfolio-api/internal/server/config"
	"github.com/fahmiks/portfolio-api/internal/server/models"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/repomanager"
)

var defaultCategories = []string{"Web Development", "Machine Learning"}

var defaultLevels = []struct {
	name  string
	level int
}{
	{"Novice", 10},
	{"Beginner", 30},
	{"Skillful", 55},
	{"Experienced", 75},
	{"Expert", 90},
}

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminName := os.Getenv("ADMIN_NAME")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	if adminName == "" {
		adminName = "Admin"
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	user, err := rm.Users(db).Create(ctx, &models.User{
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Fatalf("seeding admin user: %v", err)
	}
	log.Printf("admin user created: %s", user.Email)

	for _, name := range defaultCategories {
		if _, err := rm.Categories(db).Create(ctx, name); err != nil {
			log.Fatalf("seeding category %q: %v", name, err)
		}
	}
	log.Printf("%d categories created", len(defaultCategories))

	for _, l := range defaultLevels {
		if _, err := rm.Levels(db).Create(ctx, l.name, l.level); err != nil {
			log.Fatalf("seeding level %q: %v", l.name, err)
		}
	}
	log.Printf("%d levels created", len(defaultLevels))
}
