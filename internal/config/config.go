package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type Config struct {
	AppPort             string
	DbDriver            string
	DbHost              string
	DbPort              string
	DbUser              string
	DbPassword          string
	DbName              string
	DbParams            string
	SqlitePath          string
	TimeZone            string
	HistoryDefaultLimit int
	HistoryMaxLimit     int
	KPIDays             int
	ResetDaySchedule    string
	ResetDayTimeout     time.Duration
	TranslationFolder   string
	TrustedProxies      []string
	CORSAllowedOrigins  []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverMySQL))
	if driver == "pgx" {
		driver = DriverPostgres
	}

	return &Config{
		AppPort:             getEnv("APP_PORT", "8080"),
		DbDriver:            driver,
		DbHost:              getEnv("DB_HOST", "db"),
		DbPort:              getEnv("DB_PORT", defaultPort(driver)),
		DbUser:              getEnv("DB_USER", "report"),
		DbPassword:          getEnv("DB_PASSWORD", "report"),
		DbName:              getEnv("DB_NAME", "report_tracking"),
		DbParams:            getEnv("DB_PARAMS", defaultParams(driver)),
		SqlitePath:          getEnv("SQLITE_PATH", "report_tracking.db"),
		TimeZone:            getEnv("TIMEZONE", "Local"),
		HistoryDefaultLimit: getEnvInt("HISTORY_DEFAULT_LIMIT", 30),
		HistoryMaxLimit:     getEnvInt("HISTORY_MAX_LIMIT", 365),
		KPIDays:             getEnvInt("KPI_DAYS", 7),
		ResetDaySchedule:    strings.TrimSpace(os.Getenv("RESET_DAY_SCHEDULE")),
		ResetDayTimeout:     getEnvDuration("RESET_DAY_TIMEOUT", 30*time.Second),
		TranslationFolder:   getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:      parseList(os.Getenv("TRUSTED_PROXIES")),
		CORSAllowedOrigins:  parseList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

// Location resolves the time zone that defines the calendar day.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || strings.EqualFold(c.TimeZone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.TimeZone)
}

func defaultPort(driver string) string {
	if driver == DriverPostgres {
		return "5432"
	}
	return "3306"
}

func defaultParams(driver string) string {
	switch driver {
	case DriverPostgres:
		return "sslmode=disable"
	case DriverSQLite:
		return "_foreign_keys=on&_busy_timeout=5000"
	default:
		return "parseTime=true&multiStatements=true"
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
