// Command server is the main entry point for the MCP SQLite Bridge
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/config"
	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/store"
	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/tools"
	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/tools/sqlite"
)

func main() {
	describe := flag.Bool("describe", false, "print the toolset JSON schema and exit")
	flag.Parse()

	// Load .env if present so DEBUG and the config env vars can come from it
	_ = godotenv.Load()

	// Logs go to stderr; stdout carries the stdio transport.
	log.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	if *describe {
		fmt.Println(sqlite.ToolsetSchema())
		return
	}

	log.Info("Starting MCP SQLite Bridge...")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Configuration error", "error", err)
	}

	// Prepare the store and seed it with the initial dataset
	db := store.New(cfg.Database.Path, cfg.DefaultDatasetPath)
	if err := db.EnsureReady(); err != nil {
		log.Fatal("Database is not usable", "error", err)
	}

	if err := db.ImportCSV(context.Background(), cfg.Seed.CSVPath, cfg.Seed.TableName); err != nil {
		log.Fatal("Seed import failed", "error", err)
	}

	// Initialize MCP server
	mcpServer := server.NewMCPServer(
		"sqlite-manager",
		"0.1.0",
		server.WithResourceCapabilities(false, false),
		server.WithLogging(),
	)

	// Register the toolset
	registry := tools.NewRegistry(mcpServer)
	for _, tool := range sqlite.RegisterSQLiteTools(db) {
		registry.Register(tool)
	}

	log.Info("Server started, waiting for requests...", "tools", registry.Names())
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatal("Server error", "error", err)
	}

	log.Info("Server shutdown complete")
}
