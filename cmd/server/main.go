/*
main.go - Application entry point

PURPOSE:
  Starts the federal calendar API server. Loads fact tables (compiled-in
  dataset by default, SQLite override with -db), wires the engine and
  router, and shuts down gracefully.

COMMAND-LINE FLAGS:
  -port       HTTP server port (default: 8080)
  -db         SQLite fact database path; empty uses the compiled-in dataset
  -seed       with -db: seed the database from the compiled-in dataset first
  -log-level  zerolog level (default: info)

EXAMPLES:
  # Serve the compiled-in reference data
  ./server

  # Serve revised reference data from a database
  ./server -db=./facts.db

  # Create and serve an operator database starting from the built-in data
  ./server -db=./facts.db -seed
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/govcal/fedcal-engine/api"
	"github.com/govcal/fedcal-engine/facts"
	"github.com/govcal/fedcal-engine/fedcal"
	"github.com/govcal/fedcal-engine/store/sqlite"
)

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "", "SQLite fact database path (empty = compiled-in data)")
	seed := flag.Bool("seed", false, "seed the fact database from the compiled-in dataset")
	logLevel := flag.String("log-level", "info", "log level (trace|debug|info|warn|error)")
	flag.Parse()

	logger := newLogger(*logLevel)

	tables, err := loadTables(*dbPath, *seed, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load fact tables")
	}

	engine := fedcal.NewEngine(tables)
	handler := api.NewHandler(engine)
	router := api.NewRouter(handler, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Int("port", *port).
			Str("coverage_start", tables.CoverageStart().String()).
			Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("forced shutdown")
	}
	logger.Info().Msg("server stopped")
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().Logger()
}

func loadTables(dbPath string, seed bool, logger zerolog.Logger) (*fedcal.Tables, error) {
	if dbPath == "" {
		return facts.Builtin()
	}

	src, err := sqlite.New(dbPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	ctx := context.Background()
	if seed {
		builtin, err := facts.Builtin()
		if err != nil {
			return nil, err
		}
		if err := src.Seed(ctx, builtin); err != nil {
			return nil, err
		}
		logger.Info().Str("db", dbPath).Msg("seeded fact database from compiled-in data")
	}
	return src.LoadTables(ctx)
}
