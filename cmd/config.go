package cmd

import "time"

// Config carries every externally supplied setting. It is populated from
// the environment in main and handed to the composition root; nothing else
// reads the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	TokenSecret       string
	SessionTokenTTL   time.Duration
	ResetTokenTTL     time.Duration
	BcryptCost        int
	FrontendBaseURL   string
	AdminEmail        string
	LowStockThreshold int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}
