// scripts/session-token/main.go
//
// Run this ONCE locally to authorize Google Calendar access and mint a
// session token for the auto-fill endpoints.
//
// Usage:
//   SESSION_JWT_SECRET=... go run scripts/session-token/main.go [credentials.json]
//
// It prints a browser URL, you log in with your Google account, paste the
// authorization code, and the signed session token is printed to stdout.
// Pass it as "Authorization: Bearer <token>" to /api/v1/autofill/*.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"meetpoll/internal/session"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	secret := os.Getenv("SESSION_JWT_SECRET")
	if secret == "" {
		log.Fatal("SESSION_JWT_SECRET is required")
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarReadonlyScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("Step 1: Open the following URL in a browser and log in:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("Step 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := config.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	manager, err := session.NewManager(secret, 24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to create session manager: %v", err)
	}

	sessionToken, err := manager.Issue(session.Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	})
	if err != nil {
		log.Fatalf("Failed to issue session token: %v", err)
	}

	fmt.Println()
	fmt.Println("Session token (valid 24h):")
	fmt.Println()
	fmt.Println(sessionToken)
}
