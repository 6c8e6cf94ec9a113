package main

import (
	"context"
	"delivery-plan-solver/internal/adapters/repositories"
	"delivery-plan-solver/internal/config"
	"delivery-plan-solver/internal/platform/db"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// dbtool prepares the stores out of band: it creates the SQLite schema,
// seeds case documents, and when DATABASE_URL is set creates the Postgres
// plan archive schema.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")

	sqliteDB, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	log.Println("Initializing sqlite schema...")
	if err := repositories.InitSchema(sqliteDB); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	repo := repositories.NewSqliteCaseRepository(sqliteDB)
	ctx := context.Background()

	if path := strings.TrimSpace(os.Getenv("CASE_PATH")); path != "" {
		log.Printf("Seeding case from %s...", path)
		caseID, err := repositories.SeedCaseFile(ctx, repo, path)
		if err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Printf("Seeded case id=%d.", caseID)
	}

	if dir := strings.TrimSpace(os.Getenv("CASE_SEED_DIR")); dir != "" {
		log.Printf("Seeding cases from %s...", dir)
		n, err := repositories.SeedCaseDir(ctx, repo, dir)
		if err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Printf("Seeded %d cases.", n)
	}

	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pg, err := db.OpenPostgres(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		log.Println("Initializing postgres archive schema...")
		if err := repositories.InitArchiveSchema(pg); err != nil {
			log.Fatalf("archive schema initialization failed: %v", err)
		}
		log.Println("Archive schema ready.")
	}
}
