// Package main provides a CLI tool to create a backoffice admin user.
// Usage: go run cmd/seed-admin/main.go -email "admin@example.com" -password "secret"
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
)

func main() {
	// Define command line flags
	email := flag.String("email", "", "Admin user email (required)")
	password := flag.String("password", "", "Admin user password (required, min 8 characters)")
	name := flag.String("name", "", "Admin user display name (optional)")
	role := flag.String("role", string(models.RoleAdmin), "User role (ADMIN or EDITOR)")
	envFile := flag.String("env", "", "Path to .env file (defaults to .env in current dir)")
	dryRun := flag.Bool("dry-run", false, "Print what would be created without writing to database")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Creates a backoffice user in the Diagnóstico database.\n\n")
		fmt.Fprintf(os.Stderr, "Configuration is loaded from .env file and/or environment variables.\n")
		fmt.Fprintf(os.Stderr, "Environment variables take precedence over .env file values.\n\n")
		fmt.Fprintf(os.Stderr, "Required config (via .env or environment):\n")
		fmt.Fprintf(os.Stderr, "  DIAG_DATABASE_URI   MongoDB connection URI\n")
		fmt.Fprintf(os.Stderr, "  DIAG_DATABASE_NAME  Database name (default: diagnostico)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -email \"admin@example.com\" -password \"s3cret-pass\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -email \"editor@example.com\" -password \"s3cret-pass\" -role EDITOR\n", os.Args[0])
	}

	flag.Parse()

	// Load .env file
	loadEnvFile(*envFile)

	// Validate required flags
	if *email == "" {
		log.Fatal("Error: -email is required")
	}
	if *password == "" {
		log.Fatal("Error: -password is required")
	}
	if len(*password) < 8 {
		log.Fatal("Error: password must be at least 8 characters")
	}
	if !isValidEmail(*email) {
		log.Fatalf("Error: invalid email format: %s", *email)
	}

	userRole := models.UserRole(*role)
	if !userRole.IsValid() {
		log.Fatalf("Error: invalid role %q (must be ADMIN or EDITOR)", *role)
	}

	// Load database configuration from environment
	dbURI := os.Getenv("DIAG_DATABASE_URI")
	if dbURI == "" {
		log.Fatal("Error: DIAG_DATABASE_URI environment variable is required")
	}
	dbName := os.Getenv("DIAG_DATABASE_NAME")
	if dbName == "" {
		dbName = "diagnostico"
	}

	// Hash the password
	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        *email,
		Name:         *name,
		PasswordHash: string(hash),
		Role:         userRole,
	}
	user.BeforeCreate()

	// Print what will be created
	fmt.Println("=== Backoffice User ===")
	fmt.Printf("  ID:    %s\n", user.ID.Hex())
	fmt.Printf("  Email: %s\n", user.Email)
	fmt.Printf("  Name:  %s\n", user.Name)
	fmt.Printf("  Role:  %s\n", user.Role)
	fmt.Println()

	if *dryRun {
		fmt.Println("[DRY RUN] No changes made to database")
		return
	}

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(dbURI)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if disconnectErr := client.Disconnect(ctx); disconnectErr != nil {
			log.Printf("Error disconnecting from MongoDB: %v", disconnectErr)
		}
	}()

	// Ping database
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	db := client.Database(dbName)

	// Check if user with same email already exists
	userCollection := db.Collection(models.User{}.CollectionName())
	var existingUser models.User
	err = userCollection.FindOne(ctx, bson.M{"email": user.Email}).Decode(&existingUser)
	if err == nil {
		log.Fatalf("Error: user with email '%s' already exists (ID: %s)", user.Email, existingUser.ID.Hex())
	} else if err != mongo.ErrNoDocuments {
		log.Fatalf("Error checking existing user: %v", err)
	}

	// Insert user
	if _, err := userCollection.InsertOne(ctx, user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	fmt.Printf("✓ Created user: %s (%s)\n", user.Email, user.ID.Hex())

	fmt.Println()
	fmt.Printf("The user can now log in at your frontend using: %s\n", user.Email)
}

// isValidEmail performs basic email validation
func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

// loadEnvFile loads environment variables from a .env file
func loadEnvFile(path string) {
	if path == "" {
		cwd, _ := os.Getwd()
		if _, err := os.Stat(filepath.Join(cwd, ".env")); err == nil {
			path = ".env"
		}
	}

	if path != "" {
		if err := godotenv.Load(path); err != nil {
			log.Printf("Error loading .env file: %v", err)
		}
	}
}
