package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Supabase SupabaseConfig
	Database DatabaseConfig
	Inter    InterConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int
	ShutdownTimeout int // in seconds
}

// SupabaseConfig contains the hosted store endpoint and credential
type SupabaseConfig struct {
	URL            string
	ServiceRoleKey string
}

// DatabaseConfig contains direct Postgres connection configuration.
// When URL is empty the service falls back to the Supabase REST store.
type DatabaseConfig struct {
	URL       string
	MaxConns  int
	IdleConns int
}

// InterConfig contains Banco Inter API credentials and endpoints
type InterConfig struct {
	CertB64      string
	KeyB64       string
	ClientID     string
	ClientSecret string
	Scopes       string
	OAuthURL     string
	PixBaseURL   string
	PixKey       string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	ForwardLogs bool
}
