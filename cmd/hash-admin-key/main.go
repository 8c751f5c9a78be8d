package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/hash-admin-key/main.go <api-key>")
		fmt.Println("Prints the bcrypt hash to use as ADMIN_API_KEY_HASH.")
		os.Exit(1)
	}

	apiKey := os.Args[1]

	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash API key: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ADMIN_API_KEY_HASH=%s\n", string(hash))
	fmt.Println("\nUse the API key in the Authorization header:")
	fmt.Printf("Authorization: Bearer %s\n", apiKey)
}
