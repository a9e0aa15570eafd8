package gcalendar_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"life-assistant/pkg/gcalendar"
)

const oauthCredsJSON = `{
	"installed": {
		"client_id": "client-1.apps.googleusercontent.com",
		"client_secret": "secret",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"redirect_uris": ["http://localhost"]
	}
}`

const tokenJSON = `{
	"access_token": "token-1",
	"token_type": "Bearer",
	"refresh_token": "refresh-1",
	"expiry": "2099-01-01T00:00:00Z"
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestNewClientFromCredentialsFile_OAuthWithToken(t *testing.T) {
	dir := t.TempDir()
	credsPath := writeFile(t, dir, "google-credentials.json", oauthCredsJSON)
	writeFile(t, dir, gcalendar.TokenFileName, tokenJSON)

	client, err := gcalendar.NewClientFromCredentialsFile(context.Background(), credsPath)
	if err != nil {
		t.Fatalf("expected client from oauth credentials + token, got %v", err)
	}
	if client == nil {
		t.Fatal("expected non-nil client")
	}
}

func TestNewClientFromCredentialsFile_OAuthWithoutToken(t *testing.T) {
	dir := t.TempDir()
	credsPath := writeFile(t, dir, "google-credentials.json", oauthCredsJSON)

	_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), credsPath)
	if err == nil {
		t.Fatal("expected error when token file is missing")
	}
	if !strings.Contains(err.Error(), gcalendar.TokenFileName) {
		t.Errorf("error should point at the missing token file, got: %v", err)
	}
}

func TestNewClientFromCredentialsFile_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	credsPath := writeFile(t, dir, "google-credentials.json", `{"kind": "something else"}`)

	_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), credsPath)
	if err == nil {
		t.Fatal("expected error for unsupported credentials format")
	}
}
