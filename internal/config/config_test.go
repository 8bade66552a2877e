package config

import (
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every variable the config reads so the surrounding
// environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_ENV",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_CHARSET",
		"CHECK_TIMEOUT", "OUTPUT_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestNew_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := New()

	if cfg.App.Name != "restaurant-dbcheck" {
		t.Errorf("expected default app name restaurant-dbcheck, got %s", cfg.App.Name)
	}
	if cfg.DB.Host != "localhost" {
		t.Errorf("expected default host localhost, got %s", cfg.DB.Host)
	}
	if cfg.DB.Port != 3306 {
		t.Errorf("expected default port 3306, got %d", cfg.DB.Port)
	}
	if cfg.DB.User != "analytics_user" {
		t.Errorf("expected default user analytics_user, got %s", cfg.DB.User)
	}
	if cfg.DB.Password != "Analytics@123" {
		t.Errorf("unexpected default password %q", cfg.DB.Password)
	}
	if cfg.DB.Name != "restaurant_db" {
		t.Errorf("expected default database restaurant_db, got %s", cfg.DB.Name)
	}
	if cfg.DB.Charset != "utf8mb4" {
		t.Errorf("expected default charset utf8mb4, got %s", cfg.DB.Charset)
	}
	if cfg.Check.Timeout != 10*time.Second {
		t.Errorf("expected default check timeout 10s, got %s", cfg.Check.Timeout)
	}
	if cfg.Output.Format != "table" {
		t.Errorf("expected default output format table, got %s", cfg.Output.Format)
	}
}

func TestNew_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "reporting")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_NAME", "restaurant_staging")
	t.Setenv("CHECK_TIMEOUT", "2s")
	t.Setenv("OUTPUT_FORMAT", "json")

	cfg := New()

	if cfg.DB.Host != "db.internal" {
		t.Errorf("expected host db.internal, got %s", cfg.DB.Host)
	}
	if cfg.DB.Port != 3307 {
		t.Errorf("expected port 3307, got %d", cfg.DB.Port)
	}
	if cfg.DB.User != "reporting" {
		t.Errorf("expected user reporting, got %s", cfg.DB.User)
	}
	if cfg.DB.Password != "s3cret" {
		t.Errorf("unexpected password %q", cfg.DB.Password)
	}
	if cfg.DB.Name != "restaurant_staging" {
		t.Errorf("expected database restaurant_staging, got %s", cfg.DB.Name)
	}
	if cfg.Check.Timeout != 2*time.Second {
		t.Errorf("expected check timeout 2s, got %s", cfg.Check.Timeout)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected output format json, got %s", cfg.Output.Format)
	}
}

func TestNew_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PORT", "not-a-port")
	t.Setenv("CHECK_TIMEOUT", "soon")

	cfg := New()

	if cfg.DB.Port != 3306 {
		t.Errorf("expected fallback port 3306, got %d", cfg.DB.Port)
	}
	if cfg.Check.Timeout != 10*time.Second {
		t.Errorf("expected fallback timeout 10s, got %s", cfg.Check.Timeout)
	}
}

func TestNew_NonPositiveTimeoutFallsBack(t *testing.T) {
	clearEnv(t)

	t.Setenv("CHECK_TIMEOUT", "0s")
	if cfg := New(); cfg.Check.Timeout != 10*time.Second {
		t.Errorf("expected 0s to fall back to 10s, got %s", cfg.Check.Timeout)
	}

	t.Setenv("CHECK_TIMEOUT", "-5s")
	if cfg := New(); cfg.Check.Timeout != 10*time.Second {
		t.Errorf("expected -5s to fall back to 10s, got %s", cfg.Check.Timeout)
	}
}

func TestMergeFlags(t *testing.T) {
	clearEnv(t)
	cfg := New()

	cfg.MergeFlags("10.0.0.5", 3310, "ops", "", "orders_replica", 5*time.Second, "json")

	if cfg.DB.Host != "10.0.0.5" {
		t.Errorf("expected flag host 10.0.0.5, got %s", cfg.DB.Host)
	}
	if cfg.DB.Port != 3310 {
		t.Errorf("expected flag port 3310, got %d", cfg.DB.Port)
	}
	if cfg.DB.User != "ops" {
		t.Errorf("expected flag user ops, got %s", cfg.DB.User)
	}
	// Password flag was not set, the env/default value must survive.
	if cfg.DB.Password != "Analytics@123" {
		t.Errorf("unset password flag must not override, got %q", cfg.DB.Password)
	}
	if cfg.DB.Name != "orders_replica" {
		t.Errorf("expected flag database orders_replica, got %s", cfg.DB.Name)
	}
	if cfg.Check.Timeout != 5*time.Second {
		t.Errorf("expected flag timeout 5s, got %s", cfg.Check.Timeout)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected flag format json, got %s", cfg.Output.Format)
	}
}

func TestMergeFlags_NonPositiveTimeoutIgnored(t *testing.T) {
	clearEnv(t)
	cfg := New()

	cfg.MergeFlags("", 0, "", "", "", -time.Second, "")

	if cfg.Check.Timeout != 10*time.Second {
		t.Errorf("a non-positive timeout flag must not override, got %s", cfg.Check.Timeout)
	}
}

func TestMySQLDSN(t *testing.T) {
	clearEnv(t)
	cfg := New()

	want := "analytics_user:Analytics@123@tcp(localhost:3306)/restaurant_db?charset=utf8mb4&parseTime=True&loc=Local"
	if got := cfg.MySQLDSN(); got != want {
		t.Errorf("DSN mismatch:\n got:  %s\n want: %s", got, want)
	}
}

func TestAddr_OmitsPassword(t *testing.T) {
	clearEnv(t)
	cfg := New()

	addr := cfg.Addr()
	if addr != "localhost:3306/restaurant_db" {
		t.Errorf("expected localhost:3306/restaurant_db, got %s", addr)
	}
	if strings.Contains(addr, cfg.DB.Password) {
		t.Errorf("address must not contain the password: %s", addr)
	}
}
