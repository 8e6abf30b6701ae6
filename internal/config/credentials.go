package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables holding the bot credentials. Values found in the
// environment always win over the dotenv fallback file.
const (
	TokenEnvVar  = "JEWELRYBOX_BOT_TOKEN"
	ChatIDEnvVar = "JEWELRYBOX_CHAT_ID"
)

// defaultEnvFileName is the dotenv fallback file, resolved against the
// user's home directory.
const defaultEnvFileName = ".jewelrybox_env"

// Credentials holds the bot token and the single chat ID authorized to use
// the display. It is loaded once at startup and passed explicitly to the
// serving loop; nothing reads these from ambient process state afterwards.
type Credentials struct {
	// Token is the Telegram bot API bearer token.
	Token string
	// ChatID is the only sender identity allowed to issue commands or
	// messages.
	ChatID int64
}

// DefaultEnvFile returns the default dotenv fallback path
// ($HOME/.jewelrybox_env).
func DefaultEnvFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, defaultEnvFileName), nil
}

// LoadCredentials reads the bot token and chat ID from the environment,
// falling back to the dotenv file at envFile for any value the environment
// does not provide. When envFile is empty the default path is used. The
// fallback file uses KEY=VALUE lines; surrounding quotes are stripped and
// '#'-prefixed lines are ignored (standard dotenv format).
//
// Both values are required and the chat ID must parse as an integer;
// anything else is an error the caller treats as fatal.
func LoadCredentials(envFile string) (*Credentials, error) {
	token := strings.TrimSpace(os.Getenv(TokenEnvVar))
	chatID := strings.TrimSpace(os.Getenv(ChatIDEnvVar))

	if token == "" || chatID == "" {
		path := envFile
		if path == "" {
			var err error
			if path, err = DefaultEnvFile(); err != nil {
				return nil, err
			}
		}
		if vars, err := readEnvFile(path); err != nil {
			return nil, err
		} else if vars != nil {
			if token == "" {
				token = strings.TrimSpace(vars[TokenEnvVar])
			}
			if chatID == "" {
				chatID = strings.TrimSpace(vars[ChatIDEnvVar])
			}
		}
	}

	if token == "" {
		return nil, fmt.Errorf("bot token not found: set %s or add it to %s", TokenEnvVar, fallbackHint(envFile))
	}
	if chatID == "" {
		return nil, fmt.Errorf("chat ID not found: set %s or add it to %s", ChatIDEnvVar, fallbackHint(envFile))
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer, got %q", ChatIDEnvVar, chatID)
	}

	return &Credentials{Token: token, ChatID: id}, nil
}

// readEnvFile parses the dotenv file at path. A missing file is not an
// error; the environment alone may carry the credentials.
func readEnvFile(path string) (map[string]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file %s: %w", path, err)
	}
	return vars, nil
}

func fallbackHint(envFile string) string {
	if envFile != "" {
		return envFile
	}
	return "~/" + defaultEnvFileName
}
