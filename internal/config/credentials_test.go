package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearCredentialEnv removes the credential variables for the duration of a
// test so results don't depend on the developer's shell.
func clearCredentialEnv(t *testing.T) {
	t.Helper()
	// t.Setenv registers cleanup restoring the original values.
	t.Setenv(TokenEnvVar, "")
	t.Setenv(ChatIDEnvVar, "")
	os.Unsetenv(TokenEnvVar)
	os.Unsetenv(ChatIDEnvVar)
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".jewelrybox_env")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	return path
}

func TestLoadCredentials_FromEnvironment(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv(TokenEnvVar, "tok-123")
	t.Setenv(ChatIDEnvVar, "987654321")

	creds, err := LoadCredentials(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("LoadCredentials failed: %v", err)
	}
	if creds.Token != "tok-123" {
		t.Errorf("Expected token tok-123, got %q", creds.Token)
	}
	if creds.ChatID != 987654321 {
		t.Errorf("Expected chat ID 987654321, got %d", creds.ChatID)
	}
}

func TestLoadCredentials_FromFileFallback(t *testing.T) {
	clearCredentialEnv(t)
	path := writeEnvFile(t, strings.Join([]string{
		"# bot credentials",
		"",
		"JEWELRYBOX_BOT_TOKEN='tok-from-file'",
		`JEWELRYBOX_CHAT_ID="123456"`,
	}, "\n"))

	creds, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("LoadCredentials failed: %v", err)
	}
	if creds.Token != "tok-from-file" {
		t.Errorf("Expected quotes stripped from token, got %q", creds.Token)
	}
	if creds.ChatID != 123456 {
		t.Errorf("Expected chat ID 123456, got %d", creds.ChatID)
	}
}

func TestLoadCredentials_EnvironmentWinsOverFile(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv(TokenEnvVar, "tok-env")
	path := writeEnvFile(t, "JEWELRYBOX_BOT_TOKEN=tok-file\nJEWELRYBOX_CHAT_ID=42\n")

	creds, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("LoadCredentials failed: %v", err)
	}
	if creds.Token != "tok-env" {
		t.Errorf("Expected environment token to win, got %q", creds.Token)
	}
	if creds.ChatID != 42 {
		t.Errorf("Expected file chat ID to fill the gap, got %d", creds.ChatID)
	}
}

func TestLoadCredentials_MissingToken(t *testing.T) {
	clearCredentialEnv(t)
	path := writeEnvFile(t, "JEWELRYBOX_CHAT_ID=42\n")

	if _, err := LoadCredentials(path); err == nil {
		t.Fatal("Expected error for missing token, got nil")
	} else if !strings.Contains(err.Error(), TokenEnvVar) {
		t.Errorf("Expected error to name %s, got: %v", TokenEnvVar, err)
	}
}

func TestLoadCredentials_MissingChatID(t *testing.T) {
	clearCredentialEnv(t)
	path := writeEnvFile(t, "JEWELRYBOX_BOT_TOKEN=tok\n")

	if _, err := LoadCredentials(path); err == nil {
		t.Fatal("Expected error for missing chat ID, got nil")
	}
}

func TestLoadCredentials_NonIntegerChatID(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv(TokenEnvVar, "tok")
	t.Setenv(ChatIDEnvVar, "not-a-number")

	if _, err := LoadCredentials(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("Expected error for non-integer chat ID, got nil")
	} else if !strings.Contains(err.Error(), "not-a-number") {
		t.Errorf("Expected error to include the bad value, got: %v", err)
	}
}

func TestLoadCredentials_MissingFileIsNotAnError(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv(TokenEnvVar, "tok")
	t.Setenv(ChatIDEnvVar, "7")

	creds, err := LoadCredentials(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Expected env-only load to succeed, got: %v", err)
	}
	if creds.ChatID != 7 {
		t.Errorf("Expected chat ID 7, got %d", creds.ChatID)
	}
}
