package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"jadwal/internal/domain"
	"jadwal/pkg/tz"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	CORSOrigins []string

	StorageDriver  string
	DatabaseURL    string
	MigrationsPath string
	MongoURI       string
	MongoDB        string
	SeedDemo       bool
	SeedPassword   string

	JWTSecret string
	JWTExpiry time.Duration

	NATSURL string

	DiscordToken     string
	DiscordChannelID string
	DiscordGuildID   string

	DefaultLocale string
	Timezone      string
	Location      *time.Location

	SlotsFile  string
	Calendar   domain.Calendar
	DigestCron string

	ExportTitle string
	TermStart   time.Time
	TermWeeks   int
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		AppEnv:           getenv("APP_ENV", "prod"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		CORSOrigins:      splitList(os.Getenv("CORS_ORIGINS")),
		StorageDriver:    strings.ToLower(getenv("STORAGE_DRIVER", DriverMemory)),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		MigrationsPath:   getenv("MIGRATIONS_PATH", "migrations"),
		MongoURI:         getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:          getenv("MONGO_DB", "jadwal"),
		SeedPassword:     getenv("SEED_PASSWORD", "demo1234"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		NATSURL:          os.Getenv("NATS_URL"),
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		DiscordGuildID:   os.Getenv("DISCORD_GUILD_ID"),
		DefaultLocale:    getenv("DEFAULT_LOCALE", "id"),
		Timezone:         getenv("TIMEZONE", tz.DefaultName),
		SlotsFile:        os.Getenv("SLOTS_FILE"),
		DigestCron:       getenv("DIGEST_CRON", "0 7 * * 1-5"),
		ExportTitle:      getenv("EXPORT_TITLE", "Jadwal Perkuliahan"),
	}

	if err := cfg.parse(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	calendar, err := LoadCalendar(cfg.SlotsFile)
	if err != nil {
		return nil, err
	}
	cfg.Calendar = calendar

	return cfg, nil
}

// parse lit les variables typées (durées, booléens, dates).
func (c *Config) parse() error {
	hours, err := strconv.Atoi(getenv("JWT_EXPIRY_HOURS", "24"))
	if err != nil || hours <= 0 {
		return fmt.Errorf("config: JWT_EXPIRY_HOURS doit être un entier positif")
	}
	c.JWTExpiry = time.Duration(hours) * time.Hour

	seed, err := strconv.ParseBool(getenv("SEED_DEMO", strconv.FormatBool(c.StorageDriver == DriverMemory)))
	if err != nil {
		return fmt.Errorf("config: SEED_DEMO invalide: %w", err)
	}
	c.SeedDemo = seed

	weeks, err := strconv.Atoi(getenv("TERM_WEEKS", "16"))
	if err != nil || weeks <= 0 {
		return fmt.Errorf("config: TERM_WEEKS doit être un entier positif")
	}
	c.TermWeeks = weeks

	if raw := os.Getenv("TERM_START"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fmt.Errorf("config: TERM_START invalide (attendu AAAA-MM-JJ): %w", err)
		}
		c.TermStart = start
	}
	return nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET est requis et ne peut pas être vide")
	}

	switch c.StorageDriver {
	case DriverMemory:
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
			c.DatabaseURL = "postgres://localhost:5432/jadwal?sslmode=disable"
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
		}
	case DriverMongo:
		if !strings.HasPrefix(c.MongoURI, "mongodb://") && !strings.HasPrefix(c.MongoURI, "mongodb+srv://") {
			return fmt.Errorf("config: MONGO_URI invalide (%q)", c.MongoURI)
		}
		if strings.TrimSpace(c.MongoDB) == "" {
			return fmt.Errorf("config: MONGO_DB ne peut pas être vide")
		}
	default:
		return fmt.Errorf("config: STORAGE_DRIVER inconnu %q (memory, postgres ou mongo)", c.StorageDriver)
	}

	for _, r := range c.DiscordChannelID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_CHANNEL_ID doit être un ID de salon Discord (chiffres uniquement)")
		}
	}
	if c.DiscordToken != "" && c.DiscordChannelID == "" {
		return fmt.Errorf("config: DISCORD_CHANNEL_ID est requis lorsque DISCORD_TOKEN est défini")
	}

	if c.NATSURL != "" {
		if _, err := url.Parse(c.NATSURL); err != nil {
			return fmt.Errorf("config: NATS_URL invalide (%q): %w", c.NATSURL, err)
		}
	}

	loc, err := tz.Load(c.Timezone)
	if err != nil {
		return fmt.Errorf("config: TIMEZONE invalide (%q): %w", c.Timezone, err)
	}
	c.Location = loc

	if c.DigestCron != "" {
		if _, err := cron.ParseStandard(c.DigestCron); err != nil {
			return fmt.Errorf("config: DIGEST_CRON invalide (%q): %w", c.DigestCron, err)
		}
	}

	if c.TermStart.IsZero() {
		c.TermStart = nextMonday(time.Now().In(loc))
	}
	c.TermStart = time.Date(c.TermStart.Year(), c.TermStart.Month(), c.TermStart.Day(), 0, 0, 0, 0, loc)

	return nil
}

func nextMonday(t time.Time) time.Time {
	days := (int(time.Monday) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, days)
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// splitList découpe une liste séparée par des virgules en ignorant les vides.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
