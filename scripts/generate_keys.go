//go:build ignore

// This script generates the secrets export-go reads from the environment.
// Run with: go run scripts/generate_keys.go [admin-password]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func main() {
	fmt.Println("=== export-go Key Generator ===")
	fmt.Println()

	// 32 bytes = 256 bits, the minimum the service accepts for HS256
	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating JWT secret: %v\n", err)
		os.Exit(1)
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
		os.Exit(1)
	}

	password := ""
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		password, err = generateSecureKey(12)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating admin password: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated admin password: %s\n\n", password)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing admin password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# Admin login")
	fmt.Println("ADMIN_EMAIL=admin@export-go.com")
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", hash)
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# API Key (optional, used when AUTH_ENABLED=true)")
	fmt.Printf("API_KEYS=%s\n", apiKey)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
}
