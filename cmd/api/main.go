package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/elmenyr/resturant-alokda/internal/auth"
	"github.com/elmenyr/resturant-alokda/internal/db"
	"github.com/elmenyr/resturant-alokda/internal/menu"
	"github.com/elmenyr/resturant-alokda/internal/offers"
	"github.com/elmenyr/resturant-alokda/internal/router"
	"github.com/elmenyr/resturant-alokda/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
		"ADMIN_EMAIL",
		"ADMIN_PASSWORD",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	menuBucket := envOr("R2_MENU_BUCKET", "menu-pdf")
	offersBucket := envOr("R2_OFFERS_BUCKET", "offers-images")

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)

	if err := authService.EnsureAdmin(
		envOr("ADMIN_NAME", "Admin"),
		os.Getenv("ADMIN_EMAIL"),
		os.Getenv("ADMIN_PASSWORD"),
	); err != nil {
		log.Fatal("Admin account setup failed:", err)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	offerRepo := offers.NewPostgresRepository(pgDB)
	offerService := offers.NewService(offerRepo, r2Client, offersBucket)
	menuService := menu.NewService(r2Client, menuBucket)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Deps{
		Auth:         auth.NewHandler(authService),
		Offers:       offers.NewHandler(offerService),
		Menu:         menu.NewHandler(menuService),
		AllowOrigins: allowedOrigins(),
	})

	// ───────────────────────── START ─────────────────────────
	addr := ":" + envOr("PORT", "8000")
	log.Println("API listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func allowedOrigins() []string {
	raw := envOr("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
