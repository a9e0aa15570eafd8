// One-time authorization helper for OAuth installed-app Google Calendar
// credentials. It walks the browser consent flow and stores the resulting
// token.json next to the credentials file, where the calendar client looks
// for it. Service account keys do not need this step.
//
// Usage:
//
//	go run ./scripts/gcal-auth [credentials.json]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"life-assistant/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("parse credentials: %v (expected an OAuth desktop-app credentials file)", err)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("Open this URL in a browser and sign in:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("exchange authorization code: %v", err)
	}

	tokenPath := filepath.Join(filepath.Dir(credsPath), gcalendar.TokenFileName)
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("write %s: %v", tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s. Restart the server to enable the calendar mirror.\n", tokenPath)
}
