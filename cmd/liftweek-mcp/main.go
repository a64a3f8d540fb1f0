// liftweek-mcp serves the workout plan over MCP on stdio. With -url it
// proxies a running LiftWeek server's REST API; without it, it opens the
// local SQLite store directly.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/claude/liftweek/internal/mcp"
	"github.com/claude/liftweek/internal/models"
	"github.com/claude/liftweek/internal/planstore"
	"github.com/claude/liftweek/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	url := flag.String("url", "", "base URL of a running LiftWeek server (remote mode)")
	apiKey := flag.String("api-key", "", "API key for mutating calls in remote mode")
	dbPath := flag.String("db", "liftweek.db", "path to the local SQLite store (local mode)")
	flag.Parse()

	// Logs go to stderr: stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	if *url != "" {
		ds = mcp.NewHTTPClient(*url, *apiKey)
		log.Info("liftweek-mcp starting", "version", Version, "mode", "remote", "url", *url)
	} else {
		store, err := storage.OpenSQLite(*dbPath)
		if err != nil {
			log.Error("failed to open sqlite store", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		defer store.Close()

		gateway := planstore.New(store, "", log)
		ds = mcp.NewLocal(gateway, models.DefaultCatalog)
		log.Info("liftweek-mcp starting", "version", Version, "mode", "local", "db", *dbPath)
	}

	s := mcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
