package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/labarberia/pos-backend/internal/modules/catalog"
	"github.com/labarberia/pos-backend/internal/modules/ledger"
	"github.com/labarberia/pos-backend/internal/modules/pos"
	"github.com/labarberia/pos-backend/internal/modules/staff"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	if err := catalogService.SeedIfEmpty(context.Background()); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	// ── Ledger ──────────────────────────────────────────────
	ledgerRepo := ledger.NewPostgresRepository(db)
	ledgerService := ledger.NewService(ledgerRepo)
	ledger.NewHandler(ledgerService).RegisterRoutes(router)

	// ── POS ─────────────────────────────────────────────────
	posService := pos.NewService(catalogRepo, ledgerRepo)
	pos.NewHandler(posService).RegisterRoutes(router)

	// ── Staff roster ────────────────────────────────────────
	staffRepo := staff.NewPostgresRepository(db)
	staffService := staff.NewService(staffRepo)
	staff.NewHandler(staffService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("La Barbería POS API starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
