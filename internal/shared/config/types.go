package config

import "fmt"

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GetAddr returns the listen address in host:port form.
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds database connection configuration.
// Driver selects the backing store: "mysql" for deployments, "sqlite" for
// local development and tests.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"` // sqlite file path
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutes
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // "console" or "json"
	OutputPath string `mapstructure:"output_path"`
}

// CookieConfig holds cookie attributes for the admin session cookie.
type CookieConfig struct {
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

// AuthConfig holds admin session configuration.
type AuthConfig struct {
	// AdminPassword is the bootstrap admin password, used until an admin
	// password hash has been stored in settings.
	AdminPassword    string       `mapstructure:"admin_password"`
	BcryptCost       int          `mapstructure:"bcrypt_cost"`
	SessionSecret    string       `mapstructure:"session_secret"`
	SessionExpHours  int          `mapstructure:"session_exp_hours"`
	Cookie           CookieConfig `mapstructure:"cookie"`
	LoginPerMinute   int          `mapstructure:"login_per_minute"`
	LoginPerHour     int          `mapstructure:"login_per_hour"`
	RateLimitEnabled bool         `mapstructure:"rate_limit_enabled"`
}

// RedisConfig holds the optional Redis connection used for login rate limiting.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Timezone string `mapstructure:"timezone"`
}
