package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"planova/database"
	"planova/internal/config"
	"planova/internal/repository"
	"planova/internal/services"
	"time"
)

func main() {
	adminCmd := flag.NewFlagSet("admin", flag.ExitOnError)

	demoCmd := flag.NewFlagSet("demo", flag.ExitOnError)
	numUsers := demoCmd.Int("users", services.DefaultDemoUsers, "Number of demo users to create")
	seed := demoCmd.Int64("seed", time.Now().UnixNano(), "Random seed for demo profiles")

	cleanupCmd := flag.NewFlagSet("cleanup", flag.ExitOnError)

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cfg, err := config.Load(".env", "../../.env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.MigrateDatabase(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "admin":
		adminCmd.Parse(os.Args[2:])

		if cfg.AdminEmail == "" {
			log.Fatal("ADMIN_EMAIL is not set")
		}
		if _, err := services.EnsureAdminUser(repository.NewUserRepository(db), cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("Error seeding admin user: %v", err)
		}

	case "demo":
		demoCmd.Parse(os.Args[2:])

		if *numUsers <= 0 {
			log.Fatalf("--users must be positive, got %d", *numUsers)
		}
		log.Printf("Seeding %d demo users (seed %d)", *numUsers, *seed)
		if _, err := services.SeedDemoUsers(db, *numUsers, *seed, time.Now().UTC()); err != nil {
			log.Fatalf("Error seeding demo users: %v", err)
		}
		log.Printf("Demo users log in with password %q", services.DemoPassword)

	case "cleanup":
		cleanupCmd.Parse(os.Args[2:])

		if _, err := services.CleanupDemoUsers(db); err != nil {
			log.Fatalf("Error cleaning up demo users: %v", err)
		}

	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage: seed <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  admin              Create or promote the ADMIN_EMAIL account")
	fmt.Println("  demo [--users N]   Create demo users with profiles, meal plans and workouts")
	fmt.Println("       [--seed S]    Random seed for reproducible demo data")
	fmt.Println("  cleanup            Delete every demo user and the data they own")
}
