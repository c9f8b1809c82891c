package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Commands
const (
	CommandServe      = "serve"
	CommandInitDB     = "init-db"
	CommandResetAdmin = "reset-admin"
)

// DefaultSecretKey is used when no secret is configured. Insecure.
const DefaultSecretKey = "default-key"

type Config struct {
	Command      string
	Port         int
	DatabaseURL  string
	DatabaseType string
	SecretKey    string
	SetupToken   string
	SessionTTL   time.Duration
	LogFormat    string
}

// UsingDefaultSecret reports whether sessions are signed with the built-in key
func (c Config) UsingDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

// ParseFlags parses flags, falls back to environment variables and
// applies defaults. The first positional argument selects the command.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quickly-ask", flag.ContinueOnError)

	// Network and storage (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Session lifetime")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SecretKey, "secret", "", "Session signing secret (prefer env)")
	fs.StringVar(&cfg.SetupToken, "setup-token", "", "Token for /init-db and /reset-admin (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Flags may also follow the command word
	cfg.Command = fs.Arg(0)
	if fs.NArg() > 1 {
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return Config{}, err
		}
		if fs.NArg() > 0 {
			return Config{}, fmt.Errorf("unexpected arguments after %q: %v", cfg.Command, fs.Args())
		}
	}
	switch cfg.Command {
	case "":
		cfg.Command = CommandServe
	case CommandServe, CommandInitDB, CommandResetAdmin:
	default:
		return Config{}, fmt.Errorf("unknown command %q", cfg.Command)
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = "blog.db"
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	if cfg.SessionTTL == 0 {
		if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
			ttl, err := time.ParseDuration(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid SESSION_TTL env variable")
			}
			cfg.SessionTTL = ttl
		} else {
			cfg.SessionTTL = 12 * time.Hour
		}
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, errors.New("session TTL must be positive")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = os.Getenv("LOG_FORMAT")
		if cfg.LogFormat == "" {
			cfg.LogFormat = "text"
		}
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}

	if cfg.SecretKey == "" {
		cfg.SecretKey = os.Getenv("SECRET_KEY")
		if cfg.SecretKey == "" {
			cfg.SecretKey = DefaultSecretKey
		}
	}

	if cfg.SetupToken == "" {
		cfg.SetupToken = os.Getenv("SETUP_TOKEN")
	}

	return cfg, nil
}
