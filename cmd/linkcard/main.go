// Command linkcard prints or serves the cards of a links deck without the TUI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkdeck/internal/cardserver"
	"linkdeck/internal/config"
	"linkdeck/internal/domain"
	"linkdeck/internal/links"
	"linkdeck/internal/qr"
	"linkdeck/internal/ui/views"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: linkcard <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  print   print one card with its QR code")
	fmt.Fprintln(w, "  serve   serve the deck and its QR codes over HTTP")
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "print":
		err = runPrint(os.Args[2:], os.Stdout)
	case "serve":
		err = runServe(os.Args[2:])
	case "-h", "--help", "help":
		usage(os.Stdout)
		return
	default:
		usage(os.Stderr)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "linkcard: %v\n", err)
		os.Exit(1)
	}
}

// common holds the flags shared by every command
type common struct {
	configPath string
	source     string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "Path to config file")
	fs.StringVar(&c.source, "links", "", "Links file or http(s) URL (overrides config)")
}

// load reads the config and the deck it names
func (c *common) load(ctx context.Context) (*config.Config, []domain.Link, error) {
	svc := config.NewConfigService()
	if c.configPath != "" {
		svc = config.NewConfigServiceAt(c.configPath)
	}
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}
	if c.source != "" {
		cfg.Links = c.source
	}

	loader := links.NewLoader(nil, links.Options{
		Timeout:   cfg.LoadTimeout(),
		IconWidth: cfg.Loader.IconWidth,
	})
	res, err := loader.Load(ctx, cfg.Links)
	if err != nil {
		return nil, nil, err
	}
	if res.Skipped > 0 {
		log.Printf("skipped %d incomplete entries in %s", res.Skipped, cfg.Links)
	}
	return cfg, res.Links, nil
}

func runPrint(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	var c common
	c.register(fs)
	page := fs.Int("page", 1, "One-based page to print")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, deck, err := c.load(context.Background())
	if err != nil {
		return err
	}
	if *page < 1 || *page > len(deck) {
		return fmt.Errorf("page %d out of range (deck has %d links)", *page, len(deck))
	}

	opts, err := cfg.Code.QROptions()
	if err != nil {
		log.Printf("Invalid code settings, using defaults: %v", err)
	}
	card, err := renderCard(deck[*page-1], opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, card)
	fmt.Fprintf(out, "%d / %d\n", *page, len(deck))
	return nil
}

// renderCard draws link the way the TUI shows it
func renderCard(link domain.Link, opts qr.Options) (string, error) {
	opts.Payload = link.URL
	engine, err := qr.New(opts)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", link.URL, err)
	}

	card := views.NewCardRenderer(views.NewStyles()).Render(link, views.CodeState{
		Ready: true,
		Frame: engine.Frame(),
	}, "", 0)
	return card.View, nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	var c common
	c.register(fs)
	addr := fs.String("addr", ":8080", "Listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, deck, err := c.load(ctx)
	if err != nil {
		return err
	}
	opts, err := cfg.Code.QROptions()
	if err != nil {
		log.Printf("Invalid code settings, using defaults: %v", err)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           cardserver.New(deck, opts, cfg.Code.ExportSize).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("serving %d links on %s", len(deck), *addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
