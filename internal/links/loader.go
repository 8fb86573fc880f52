// Package links reads the ordered deck of link records from a file or URL.
package links

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"linkdeck/internal/domain"
	"linkdeck/internal/eventbus"
)

const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Loader reads decks and announces them on the event bus
type Loader interface {
	Start(ctx context.Context, source string) error
	Load(ctx context.Context, source string) (Result, error)
	Stop()
}

// Result is one successfully read deck
type Result struct {
	Source  domain.LinkSource
	Links   []domain.Link
	Skipped int
}

// Options tune the loader
type Options struct {
	Timeout   time.Duration
	IconWidth int
	Client    *http.Client
}

type loader struct {
	bus        eventbus.EventBus
	client     *http.Client
	icons      *IconResolver
	mu         sync.Mutex
	loading    bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewLoader creates a loader publishing on bus; bus may be nil for one-shot use
func NewLoader(bus eventbus.EventBus, opts Options) Loader {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &loader{
		bus:    bus,
		client: client,
		icons:  NewIconResolver(client, opts.IconWidth),
	}
}

// Start loads source in the background. Exactly one of LinksLoaded or
// LinksLoadFailed is published when it finishes.
func (l *loader) Start(ctx context.Context, source string) error {
	l.mu.Lock()
	if l.loading {
		l.mu.Unlock()
		return fmt.Errorf("load already in progress")
	}
	l.loading = true

	loadCtx, cancel := context.WithCancel(ctx)
	l.cancelFunc = cancel
	l.mu.Unlock()

	src := domain.LinkSource{Location: source, Format: DetectFormat(source)}
	l.publish(eventbus.LinksLoadStartedEvent{Source: src})

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer func() {
			l.mu.Lock()
			l.loading = false
			l.cancelFunc = nil
			l.mu.Unlock()
			cancel()
		}()

		res, err := l.Load(loadCtx, source)
		if err != nil {
			log.Printf("links: failed to load %s: %v", source, err)
			l.publish(eventbus.LinksLoadFailedEvent{Source: src, Err: err})
			return
		}
		log.Printf("links: loaded %d links from %s (%d skipped)", len(res.Links), source, res.Skipped)
		l.publish(eventbus.LinksLoadedEvent{Source: res.Source, Links: res.Links, Skipped: res.Skipped})
	}()

	return nil
}

// Stop cancels a running load and waits for it
func (l *loader) Stop() {
	l.mu.Lock()
	if l.cancelFunc != nil {
		l.cancelFunc()
	}
	l.mu.Unlock()

	l.wg.Wait()
}

// Load reads, validates and decorates one deck synchronously
func (l *loader) Load(ctx context.Context, source string) (Result, error) {
	src := domain.LinkSource{Location: source, Format: DetectFormat(source)}

	data, err := l.fetch(ctx, source)
	if err != nil {
		return Result{}, err
	}

	raw, err := Parse(data, src.Format)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse %s: %w", source, err)
	}

	valid, skipped := Validate(raw)
	base := baseOf(source)
	for i := range valid {
		if valid[i].Icon == "" {
			continue
		}
		valid[i].IconArt = l.icons.Resolve(ctx, valid[i].Icon, base)
	}

	return Result{Source: src, Links: valid, Skipped: skipped}, nil
}

func (l *loader) publish(event eventbus.DomainEvent) {
	if l.bus != nil {
		l.bus.Publish(event)
	}
}

func (l *loader) fetch(ctx context.Context, source string) ([]byte, error) {
	if isRemote(source) {
		return fetchRemote(ctx, l.client, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read local file: %w", err)
	}
	return data, nil
}

func fetchRemote(ctx context.Context, client *http.Client, rawURL string) (body []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned non-200 status: %d", resp.StatusCode)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// Parse decodes a deck in the given format without validating entries
func Parse(data []byte, format string) ([]domain.Link, error) {
	var out []domain.Link
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	case FormatMarkdown:
		out = parseMarkdown(data)
	case FormatHTML:
		return parseHTML(data)
	default:
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Validate keeps entries that have both a url and a title, in order
func Validate(in []domain.Link) ([]domain.Link, int) {
	out := make([]domain.Link, 0, len(in))
	skipped := 0
	for i, link := range in {
		link.URL = strings.TrimSpace(link.URL)
		link.Title = strings.TrimSpace(link.Title)
		if link.URL == "" || link.Title == "" {
			log.Printf("links: skipping entry %d: url and title are required", i)
			skipped++
			continue
		}
		out = append(out, link)
	}
	return out, skipped
}

// DetectFormat picks the decoder from the source extension
func DetectFormat(source string) string {
	p := source
	if isRemote(source) {
		if u, err := url.Parse(source); err == nil {
			p = u.Path
		}
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".md", ".markdown":
		return FormatMarkdown
	case ".html", ".htm":
		return FormatHTML
	}
	return FormatJSON
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// baseOf returns what relative icon paths are resolved against
func baseOf(source string) string {
	if isRemote(source) {
		u, err := url.Parse(source)
		if err != nil {
			return ""
		}
		u.Path = path.Dir(u.Path) + "/"
		u.RawQuery = ""
		return u.String()
	}
	return filepath.Dir(source)
}
