package main

import (
	"context"
	"database/sql"
	"delivery-plan-solver/internal/adapters/cache"
	"delivery-plan-solver/internal/adapters/repositories"
	"delivery-plan-solver/internal/api"
	"delivery-plan-solver/internal/config"
	"delivery-plan-solver/internal/platform/db"
	"delivery-plan-solver/internal/ports"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, Postgres) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	port := config.Get("PORT", "8080")

	sqliteDB, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	if err := repositories.InitSchema(sqliteDB); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteCaseRepository(sqliteDB)

	// Seed demo cases on startup for local runs.
	if seedDir := strings.TrimSpace(os.Getenv("CASE_SEED_DIR")); seedDir != "" {
		n, err := repositories.SeedCaseDir(context.Background(), repo, seedDir)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Seeded %d cases from %s", n, seedDir)
	}

	router := api.NewRouter(repo, newMatrixCache(sqliteDB), newPlanArchive(sqliteDB))

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// newMatrixCache prefers Redis when REDIS_ADDR is set, so several replicas
// can share computed matrices. The SQLite fallback keeps single-node runs
// free of extra infrastructure.
func newMatrixCache(sqliteDB *sql.DB) ports.MatrixCache {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return cache.NewSqliteMatrixCache(sqliteDB)
	}

	ttl := 24 * time.Hour
	if v := config.Get("MATRIX_CACHE_TTL", ""); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("warning: invalid MATRIX_CACHE_TTL %q, using %s", v, ttl)
		} else {
			ttl = parsed
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	log.Printf("Using redis matrix cache addr=%s ttl=%s", addr, ttl)
	return cache.NewRedisMatrixCache(client, ttl)
}

// newPlanArchive archives solved plans to Postgres when DATABASE_URL is set,
// otherwise to the local SQLite plans table. The Postgres pool stays open for
// the life of the process.
func newPlanArchive(sqliteDB *sql.DB) ports.PlanRepository {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return repositories.NewSqlitePlanRepository(sqliteDB)
	}

	pg, err := db.OpenPostgres(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repositories.InitArchiveSchema(pg); err != nil {
		log.Fatal(err)
	}

	log.Println("Archiving plans to postgres")
	return repositories.NewPgPlanArchive(pg)
}
