package config

import (
	"log"
	"os"
	"strconv"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
	"github.com/joho/godotenv"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "pix-inter-backend")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Port = GetEnvAsInt("PORT", 3001)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Supabase store config
	configs.Supabase.URL = GetEnv("SUPABASE_URL", "")
	configs.Supabase.ServiceRoleKey = GetEnv("SUPABASE_SERVICE_ROLE_KEY", "")

	// Direct Postgres config (optional, overrides the Supabase REST store)
	configs.Database.URL = GetEnv("DATABASE_URL", "")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Banco Inter config
	configs.Inter.CertB64 = GetEnv("INTER_CERT_B64", "")
	configs.Inter.KeyB64 = GetEnv("INTER_KEY_B64", "")
	configs.Inter.ClientID = GetEnv("INTER_CLIENT_ID", "")
	configs.Inter.ClientSecret = GetEnv("INTER_CLIENT_SECRET", "")
	configs.Inter.Scopes = GetEnv("INTER_SCOPES", "")
	configs.Inter.OAuthURL = GetEnv("INTER_OAUTH_URL", "")
	configs.Inter.PixBaseURL = GetEnv("INTER_PIX_BASE_URL", "")
	configs.Inter.PixKey = GetEnv("INTER_PIX_CHAVE", "")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// NewRelic config
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", configs.App.Name)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
