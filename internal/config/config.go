package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server ServerConfig
	Sheets SheetsConfig
	Report ReportConfig
	SMTP   SMTPConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// SheetsConfig contains configuration required to interact with Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// ReportConfig holds sales-report settings.
type ReportConfig struct {
	CronSchedule string
	PartnerEmail string
}

// SMTPConfig contains credentials for the outgoing mail account.
type SMTPConfig struct {
	Host     string
	Port     int
	Address  string
	Password string
	FromName string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	smtpPort, err := strconv.Atoi(getenvWithDefault("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("SMTP_PORT must be numeric: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: getenvWithDefault("GOOGLE_SHEETS_CREDENTIALS_PATH", "config/credentials.json"),
			SpreadsheetID:   os.Getenv("SHEET_ID"),
		},
		Report: ReportConfig{
			CronSchedule: getenvWithDefault("REPORT_CRON_SCHEDULE", "0 20 * * 5"),
			PartnerEmail: os.Getenv("SOCIO_EMAIL"),
		},
		SMTP: SMTPConfig{
			Host:     getenvWithDefault("SMTP_HOST", "smtp.gmail.com"),
			Port:     smtpPort,
			Address:  os.Getenv("EMAIL_ADDRESS"),
			Password: os.Getenv("EMAIL_PASSWORD"),
			FromName: getenvWithDefault("EMAIL_FROM_NAME", "Tremendos Libros"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided")
	}

	if c.Sheets.SpreadsheetID == "" {
		return errors.New("SHEET_ID must be provided")
	}

	if c.Report.CronSchedule == "" {
		return errors.New("REPORT_CRON_SCHEDULE must be provided")
	}

	switch {
	case c.SMTP.Address == "":
		return errors.New("EMAIL_ADDRESS must be provided")
	case c.SMTP.Password == "":
		return errors.New("EMAIL_PASSWORD must be provided")
	case c.Report.PartnerEmail == "":
		return errors.New("SOCIO_EMAIL must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
