package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/devkami/kami-sales-dashboard/internal/config"
	"github.com/devkami/kami-sales-dashboard/internal/importer"
	"github.com/devkami/kami-sales-dashboard/internal/server"
)

var (
	port    = flag.Int("port", 0, "service port (overrides config.toml)")
	devMode = flag.Bool("dev", false, "development mode")
	dataDir = flag.String("dataDir", "", "data directory (overrides config.toml)")
	seed    = flag.String("seed", "", "order-line file imported on startup (overrides config.toml)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  KAMI Sales Dashboard - data service")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	// Command-line flags override the config file.
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if *seed != "" {
		cfg.Data.CSVPath = *seed
	}

	resolvedDataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("Failed to create data directory: %v", err)
	} else {
		fmt.Printf("Data directory: %s\n", resolvedDataDir)
	}

	srv := server.NewServer(cfg)
	defer srv.Close()

	// Seed the cache before serving so the first snapshot is complete.
	if cfg.Data.CSVPath != "" {
		coordinator := importer.NewCoordinator(srv.GetStore())
		report, err := coordinator.ImportSync(importer.ImportOptions{
			FilePath:      cfg.Data.CSVPath,
			ClearExisting: true,
		})
		if err != nil {
			log.Printf("Startup import failed: %v", err)
		} else {
			fmt.Printf("Imported %d rows from %s\n", report.ImportedRows, report.Filename)
		}
	}

	if cfg.Data.RefreshOnStart {
		if _, err := srv.GetHolder().Refresh(); err != nil {
			log.Printf("Initial snapshot failed: %v", err)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		fmt.Printf("Serving on port %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	fmt.Println("\nPress Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
}
