package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App struct {
		Name string
		Env  string
	}

	DB struct {
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		Charset  string
	}

	Check struct {
		Timeout time.Duration
	}

	Output struct {
		Format string
	}
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// App
	cfg.App.Name = getEnv("APP_NAME", "restaurant-dbcheck")
	cfg.App.Env = getEnv("APP_ENV", "development")

	// DB
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getInt("DB_PORT", 3306)
	cfg.DB.User = getEnv("DB_USER", "analytics_user")
	cfg.DB.Password = getEnv("DB_PASSWORD", "Analytics@123")
	cfg.DB.Name = getEnv("DB_NAME", "restaurant_db")
	cfg.DB.Charset = getEnv("DB_CHARSET", "utf8mb4")

	// Check
	cfg.Check.Timeout = getDuration("CHECK_TIMEOUT", 10*time.Second)

	// Output
	cfg.Output.Format = getEnv("OUTPUT_FORMAT", "table")

	return cfg
}

// MergeFlags overlays command-line flag values onto the configuration.
// Flags take precedence over environment values; zero values mean the
// flag was not set and leave the config untouched. The timeout only
// applies when positive.
func (c *Config) MergeFlags(host string, port int, user, password, name string, timeout time.Duration, format string) {
	if host != "" {
		c.DB.Host = host
	}
	if port != 0 {
		c.DB.Port = port
	}
	if user != "" {
		c.DB.User = user
	}
	if password != "" {
		c.DB.Password = password
	}
	if name != "" {
		c.DB.Name = name
	}
	if timeout > 0 {
		c.Check.Timeout = timeout
	}
	if format != "" {
		c.Output.Format = format
	}
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	// A zero or negative duration would expire the deadline before
	// the first packet, so it counts as invalid.
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// MySQLDSN renders the connection string in go-sql-driver form.
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
		c.DB.Charset,
	)
}

// Addr returns the target address in host:port/name form for logging.
// It never includes the password.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d/%s", c.DB.Host, c.DB.Port, c.DB.Name)
}
