// Package main runs the liftstats MCP server over stdio (for local MCP clients).
// The same tools are mounted on the main service at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/liftstats/internal/analytics"
	analyticsmcp "github.com/2beens/liftstats/internal/analytics/mcp"
	"github.com/2beens/liftstats/internal/config"
	"github.com/2beens/liftstats/internal/db"
	"github.com/2beens/liftstats/internal/logging"
	"github.com/2beens/liftstats/internal/workouts"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	envFile := flag.String("envfile", ".env", "optional file with the secrets as env vars")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Warnf("load env file [%s]: %s", *envFile, err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// stdout carries the protocol, logs go to the log file or stderr
	if cfg.LogsPath != "" {
		logging.Setup(logging.LoggerSetupParams{
			LogFileName: cfg.LogsPath,
			LogLevel:    cfg.LogLevel,
			Environment: cfg.Environment,
		})
	} else {
		log.SetOutput(os.Stderr)
		log.SetLevel(logging.GetLevel(cfg.LogLevel))
	}

	location, err := cfg.Location()
	if err != nil {
		log.Fatalf("location: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         os.Getenv("LIFTSTATS_DB_USER"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	analyzer := analytics.NewAnalyzer(analytics.NewAnalyzerParams{
		Repo:     workouts.NewRepo(dbPool),
		Location: location,
	})
	server := analyticsmcp.NewServer(dbPool, analyzer)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %s", err)
	}
}
