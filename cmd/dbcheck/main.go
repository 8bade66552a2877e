package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/oggyb/restaurant-dbcheck/internal/config"
	"github.com/oggyb/restaurant-dbcheck/internal/db/gormdb"
	"github.com/oggyb/restaurant-dbcheck/internal/report"
	ordersgorm "github.com/oggyb/restaurant-dbcheck/internal/repository/gorm/orders"
	"github.com/oggyb/restaurant-dbcheck/internal/service"
	"log"
	"os"
)

var (
	version = "0.1.0"
	commit  = "unknown"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("[Main] Check failed: %v", err)
	}
}

// run owns the connection handle for the whole check so the deferred
// Close releases it on every exit path, including failures after a
// successful open.
func run(args []string) error {
	fs := flag.NewFlagSet("dbcheck", flag.ContinueOnError)

	// Flags override the corresponding environment values.
	var (
		dbHost      = fs.String("db-host", "", "Database host (overrides DB_HOST)")
		dbPort      = fs.Int("db-port", 0, "Database port (overrides DB_PORT)")
		dbName      = fs.String("db-name", "", "Database name (overrides DB_NAME)")
		dbUser      = fs.String("db-user", "", "Database user (overrides DB_USER)")
		dbPass      = fs.String("db-pass", "", "Database password (overrides DB_PASSWORD)")
		timeout     = fs.Duration("timeout", 0, "Round-trip timeout (overrides CHECK_TIMEOUT)")
		format      = fs.String("format", "", "Output format, table or json (overrides OUTPUT_FORMAT)")
		showVersion = fs.Bool("version", false, "Show version information")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		fmt.Printf("dbcheck v%s (commit: %s)\n", version, commit)
		return nil
	}

	// Load configuration from environment/.env, then let flags win.
	cfg := config.New()
	cfg.MergeFlags(*dbHost, *dbPort, *dbUser, *dbPass, *dbName, *timeout, *format)

	outFormat, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	log.Printf("[Main] %s (%s) checking %s", cfg.App.Name, cfg.App.Env, cfg.Addr())

	// One context bounds every network touch of the run: the first
	// contact is the ping below, the last is the count query.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Check.Timeout)
	defer cancel()

	// Open the handle. From here on it is released no matter how we
	// leave. Opening does not dial the server.
	database, err := gormdb.New(cfg.MySQLDSN())
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.Addr(), err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Printf("[Main] Failed to close connection: %v", cerr)
		}
	}()

	if err := database.Ping(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", cfg.Addr(), err)
	}
	log.Printf("[Main] Connected to %s", cfg.Addr())

	// Wire the repository and service, then run the single round trip.
	repo := ordersgorm.NewRepository(database)
	svc := service.NewCheckService(repo, cfg.Check.Timeout)

	count, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	// The result table is the only thing written to stdout; all logs
	// go to stderr.
	return report.Write(os.Stdout, outFormat, count)
}
