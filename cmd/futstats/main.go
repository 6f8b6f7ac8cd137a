package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pviana/futstats/internal/app"
	"github.com/pviana/futstats/internal/config"
	"github.com/pviana/futstats/internal/logger"
	"github.com/pviana/futstats/web"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	dbPath := flag.String("db", cfg.DBPath, "SQLite snapshot database path")
	logLevel := flag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	httpLog := flag.Bool("httplog", cfg.HTTPLog, "Log every HTTP request")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `FutStats - match event logger and statistics board

Usage:
  futstats [options]

Options:
  -addr string      HTTP listen address (default ":8090")
  -db string        SQLite snapshot database path (default "futstats.db")
  -loglevel string  Log level: debug, info, warn, error (default "info")
  -httplog          Log every HTTP request
  -version          Show version and exit
  -help             Show this help message

Environment (flags take precedence):
  FUTSTATS_ADDR, FUTSTATS_DB, FUTSTATS_LOG_LEVEL, FUTSTATS_HTTP_LOG

Examples:
  futstats                        # Serve on :8090 with futstats.db
  futstats -addr :8080            # Different port
  futstats -db /data/match.db     # Custom snapshot location
  futstats -loglevel debug        # Verbose logging

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("futstats %s\n", version)
		os.Exit(0)
	}

	appLog := logger.NewWithLevel(logger.ParseLevel(*logLevel))
	if *httpLog {
		appLog.EnableHTTPLogging()
	}

	a, err := app.New(appLog, *dbPath, web.GetTemplatesFS(), web.GetStaticFS())
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	if err := a.Run(*addr); err != nil {
		log.Fatal(err)
	}
}
