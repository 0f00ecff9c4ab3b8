// Command morebutton runs a toolbar with an animated more/search button.
//
// Usage:
//
//	morebutton [flags]
//
// Flags:
//
//	-config string       Path to config file (default: .morebutton/config.toml)
//	-assets string       Doublestar pattern of asset packs, relative to -assets-dir
//	-assets-dir string   Directory searched by -assets (default: .)
//	-bare                Use the bare dots icon instead of the encircled one
//	-log string          Path to debug log file
//	-init-config         Write the resolved config to -config and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/morebutton"
	bt "github.com/fwojciec/morebutton/bubbletea"
	mbtoml "github.com/fwojciec/morebutton/toml"
)

const defaultConfigPath = ".morebutton/config.toml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "morebutton: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse flags.
	var (
		configPath = flag.String("config", defaultConfigPath, "Path to config file")
		assets     = flag.String("assets", "", "Doublestar pattern of asset packs, e.g. **/*.toml")
		assetsDir  = flag.String("assets-dir", ".", "Directory searched by -assets")
		bare       = flag.Bool("bare", false, "Use the bare dots icon")
		logPath    = flag.String("log", "", "Path to debug log file")
		initConfig = flag.Bool("init-config", false, "Write the resolved config and exit")
	)
	flag.Parse()

	cfg, err := mbtoml.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *bare {
		cfg.Encircled = false
	}

	if *initConfig {
		return writeConfig(*configPath, cfg)
	}

	catalog, err := loadCatalog(*assetsDir, *assets)
	if err != nil {
		return err
	}

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "morebutton")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m, err := bt.New(bt.Config{
		Catalog:   catalog,
		Theme:     cfg.Theme,
		Size:      cfg.Size,
		Encircled: cfg.Encircled,
		OnAction:  logAction,
	})
	if err != nil {
		return err
	}
	log.Printf("started: encircled=%t size=%dx%d", cfg.Encircled, cfg.Size.Width, cfg.Size.Height)

	if err := bt.Run(ctx, m); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

// loadCatalog returns the embedded catalog, overlaid with the packs matching
// pattern under dir when pattern is set.
func loadCatalog(dir, pattern string) (morebutton.Catalog, error) {
	if pattern == "" {
		return mbtoml.DefaultCatalog(), nil
	}
	catalog, err := mbtoml.LoadCatalogs(os.DirFS(dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	return catalog, nil
}

func writeConfig(path string, cfg mbtoml.Config) error {
	data, err := mbtoml.MarshalConfig(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Config written to %s\n", path)
	return nil
}

func logAction(source *morebutton.ContextSource, gesture *morebutton.ContextGesture) {
	frame := source.Frame()
	if gesture == nil {
		log.Printf("tap: icon at %d,%d", frame.Origin.X, frame.Origin.Y)
		return
	}
	log.Printf("menu: %s at %d,%d", gesture.Source, gesture.Position.X, gesture.Position.Y)
}
