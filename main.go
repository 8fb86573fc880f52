package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"linkdeck/internal/config"
	"linkdeck/internal/eventbus"
	"linkdeck/internal/links"
	"linkdeck/internal/ui"
)

// forwardedEvents are the domain events the UI reacts to
var forwardedEvents = []eventbus.EventType{
	eventbus.EventLinksLoadStarted,
	eventbus.EventLinksLoaded,
	eventbus.EventLinksLoadFailed,
	eventbus.EventLinkOpened,
	eventbus.EventLinkCopied,
	eventbus.EventCodeExported,
	eventbus.EventError,
}

func main() {
	// Parse command line arguments
	var configPath, linksSource, logPath string
	flag.StringVar(&configPath, "config", "", "Path to config file (default ~/.config/linkdeck/config.toml)")
	flag.StringVar(&linksSource, "links", "", "Links file or http(s) URL (overrides config)")
	flag.StringVar(&linksSource, "l", "", "Links file or http(s) URL (shorthand)")
	flag.StringVar(&logPath, "log", "", "Log file (overrides config)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: linkdeck [flags] [links-file]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Browse a deck of links as business cards with QR codes.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// A bare argument names the links source
	if linksSource == "" && flag.NArg() > 0 {
		linksSource = flag.Arg(0)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	var configSvc config.ConfigService
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	} else {
		configSvc = config.NewConfigService()
	}
	configSvc = config.WithBus(configSvc, bus)

	cfg, cfgErr := configSvc.Load()
	if cfgErr != nil {
		// Use default config
		cfg = config.DefaultConfig()
	}
	if linksSource != "" {
		cfg.Links = linksSource
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}

	// Set up logging
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}
	if cfgErr != nil {
		log.Printf("Error loading config from %s: %v", configSvc.Path(), cfgErr)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Initialize services
	loader := links.NewLoader(bus, links.Options{
		Timeout:   cfg.LoadTimeout(),
		IconWidth: cfg.Loader.IconWidth,
	})

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, cfg.Links)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, eventType := range forwardedEvents {
		bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				log.Println("Event channel full, dropping event")
			}
		})
	}

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Start loading the deck
	if err := loader.Start(ctx, cfg.Links); err != nil {
		log.Printf("Failed to start loading %s: %v", cfg.Links, err)
	}

	if os.Getenv("LINKDECK_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the UI
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	loader.Stop()
	cancel()
}
