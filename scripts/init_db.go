package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"fitness-tracker-api/internal/services/database"
)

func main() {
	fmt.Println("=== Fitness Tracker Database Initialization ===")
	fmt.Println()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Printf("⚠️  Warning: Could not load .env file: %v\n", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Println("❌ DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Println("📡 Connecting to database...")
	db, err := database.Connect(ctx, databaseURL)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	defer db.Close(ctx)
	fmt.Println("✅ Connected to database successfully!")
	fmt.Println()

	fmt.Println("🚀 Applying schema...")
	if err := db.Migrate(ctx); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ Schema applied!")
	fmt.Println()

	fmt.Println("📦 Seeding exercise and food catalogue...")
	inserted, err := db.SeedCatalogue(ctx)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if inserted == 0 {
		fmt.Println("✅ Catalogue already populated, nothing to seed")
	} else {
		fmt.Printf("✅ Inserted %d catalogue rows\n", inserted)
	}

	exercises, err := db.ListExercises(ctx)
	if err != nil {
		fmt.Printf("⚠️  Warning: Could not list exercises: %v\n", err)
	} else {
		fmt.Println()
		fmt.Println("   📋 Exercises:")
		for _, e := range exercises {
			fmt.Printf("   %d. %s (%s)\n", e.ID, textOrDash(e.Name), textOrDash(e.Category))
		}
	}

	fmt.Println()
	fmt.Println("🎉 Database initialization completed successfully!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Run the local server: go run ./cmd/server")
	fmt.Println("  2. Try: curl 'http://localhost:8080/api?action=exercises'")
}

func textOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
