package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"linkdeck/internal/eventbus"
	"linkdeck/internal/qr"
)

const (
	// DefaultLinksFile is used when neither the config nor the command line name a source
	DefaultLinksFile = "links.json"

	// DefaultSwipeThreshold is the minimum horizontal drag, in terminal cells, that counts as a swipe
	DefaultSwipeThreshold = 6
)

// Config represents the application configuration
type Config struct {
	Version    int                `toml:"version"`
	Links      string             `toml:"links"`    // path or http(s) URL of the deck
	LogFile    string             `toml:"log_file"` // empty disables file logging
	Navigation NavigationSettings `toml:"navigation"`
	Code       CodeSettings       `toml:"code"`
	UISettings UISettings         `toml:"ui"`
	Loader     LoaderSettings     `toml:"loader"`
}

// NavigationSettings configures paging input
type NavigationSettings struct {
	SwipeThreshold int  `toml:"swipe_threshold"`
	MouseWheel     bool `toml:"mouse_wheel"` // wheel up/down pages back/forward
}

// CodeSettings configures the QR rendering engine
type CodeSettings struct {
	Width       int    `toml:"width"`  // max cells
	Height      int    `toml:"height"` // max rows
	Margin      int    `toml:"margin"` // quiet zone in modules
	Recovery    string `toml:"recovery"`
	Dots        string `toml:"dots"` // auto, half-block, full-block
	Foreground  string `toml:"foreground"`
	Background  string `toml:"background"`
	CornerColor string `toml:"corner_color"`
	ExportDir   string `toml:"export_dir"`
	ExportSize  int    `toml:"export_size"` // PNG side in pixels
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title         string `toml:"title"`
	ShowHints     bool   `toml:"show_hints"`
	StatusSeconds int    `toml:"status_seconds"`
}

// LoaderSettings configures the link loader
type LoaderSettings struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
	IconWidth      int `toml:"icon_width"` // thumbnail width in cells
}

// StatusTimeout returns how long transient status messages stay visible
func (c *Config) StatusTimeout() time.Duration {
	return time.Duration(c.UISettings.StatusSeconds) * time.Second
}

// LoadTimeout returns the deadline for reading the deck
func (c *Config) LoadTimeout() time.Duration {
	return time.Duration(c.Loader.TimeoutSeconds) * time.Second
}

// QROptions converts the code settings into engine options. Unknown recovery
// or dot names fall back to the defaults and are reported in the error.
func (c CodeSettings) QROptions() (qr.Options, error) {
	opts := qr.DefaultOptions()
	opts.Width = c.Width
	opts.Height = c.Height
	opts.Margin = c.Margin
	if c.Foreground != "" {
		opts.Foreground = c.Foreground
	}
	if c.Background != "" {
		opts.Background = c.Background
	}
	opts.CornerColor = c.CornerColor

	level, levelErr := qr.ParseRecovery(c.Recovery)
	opts.Level = level
	dots, dotsErr := qr.ParseDots(c.Dots)
	opts.Dots = dots

	if levelErr != nil {
		return opts, fmt.Errorf("code settings: %w", levelErr)
	}
	if dotsErr != nil {
		return opts, fmt.Errorf("code settings: %w", dotsErr)
	}
	return opts, nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted at the user's config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "linkdeck", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// WithBus attaches an event bus to a config service
func WithBus(svc ConfigService, bus eventbus.EventBus) ConfigService {
	if cs, ok := svc.(*configService); ok {
		cs.bus = bus
	}
	return svc
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:  cs.filePath,
			Links: cfg.Links,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Decode over the defaults so omitted keys keep their default value
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Normalize replaces out-of-range values with their defaults
func (c *Config) Normalize() {
	def := DefaultConfig()

	if c.Version == 0 {
		c.Version = def.Version
	}
	if strings.TrimSpace(c.Links) == "" {
		c.Links = def.Links
	}
	if c.Navigation.SwipeThreshold <= 0 {
		c.Navigation.SwipeThreshold = def.Navigation.SwipeThreshold
	}
	if c.Code.Width <= 0 {
		c.Code.Width = def.Code.Width
	}
	if c.Code.Height <= 0 {
		c.Code.Height = def.Code.Height
	}
	if c.Code.Margin < 0 {
		c.Code.Margin = def.Code.Margin
	}
	if c.Code.Recovery == "" {
		c.Code.Recovery = def.Code.Recovery
	}
	if c.Code.Dots == "" {
		c.Code.Dots = def.Code.Dots
	}
	if c.Code.Foreground == "" {
		c.Code.Foreground = def.Code.Foreground
	}
	if c.Code.Background == "" {
		c.Code.Background = def.Code.Background
	}
	if c.Code.ExportDir == "" {
		c.Code.ExportDir = def.Code.ExportDir
	}
	if c.Code.ExportSize <= 0 {
		c.Code.ExportSize = def.Code.ExportSize
	}
	if c.UISettings.Title == "" {
		c.UISettings.Title = def.UISettings.Title
	}
	if c.UISettings.StatusSeconds <= 0 {
		c.UISettings.StatusSeconds = def.UISettings.StatusSeconds
	}
	if c.Loader.TimeoutSeconds <= 0 {
		c.Loader.TimeoutSeconds = def.Loader.TimeoutSeconds
	}
	if c.Loader.IconWidth <= 0 {
		c.Loader.IconWidth = def.Loader.IconWidth
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Links:   DefaultLinksFile,
		LogFile: "linkdeck.log",
		Navigation: NavigationSettings{
			SwipeThreshold: DefaultSwipeThreshold,
			MouseWheel:     true,
		},
		Code: CodeSettings{
			Width:      60,
			Height:     30,
			Margin:     2,
			Recovery:   "highest",
			Dots:       "auto",
			Foreground: "#000000",
			Background: "#ffffff",
			ExportDir:  ".",
			ExportSize: 300,
		},
		UISettings: UISettings{
			Title:         "Portfolio Links",
			ShowHints:     true,
			StatusSeconds: 3,
		},
		Loader: LoaderSettings{
			TimeoutSeconds: 10,
			IconWidth:      8,
		},
	}
}
