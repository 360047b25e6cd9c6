package main

import (
	"flag"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var (
		dsn     = flag.String("database-url", os.Getenv("DATABASE_URL"), "Postgres connection string")
		source  = flag.String("source", "file://migrations", "Migration source")
		command = flag.String("command", "up", "Migration command (up, down)")
	)
	flag.Parse()

	if *dsn == "" {
		log.Fatal("no database URL: pass -database-url or set DATABASE_URL")
	}

	cfg, err := pgx.ParseConfig(*dsn)
	if err != nil {
		log.Fatalf("failed to parse database URL: %v", err)
	}
	db := stdlib.OpenDB(*cfg)
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatalf("failed to create migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance(*source, "postgres", driver)
	if err != nil {
		log.Fatalf("failed to create migrator: %v", err)
	}

	switch *command {
	case "up":
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("failed to apply migrations: %v", err)
		}
		log.Println("migrations applied")
	case "down":
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("failed to revert migrations: %v", err)
		}
		log.Println("migrations reverted")
	default:
		log.Fatalf("unknown command: %s", *command)
	}
}
