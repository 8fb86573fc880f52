package ui

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

// clipboardWrite is swapped out in tests
var clipboardWrite = clipboard.WriteAll

// LinkOps handles what can be done with the active link outside the TUI
type LinkOps struct {
	exportDir string
	now       func() time.Time
}

// NewLinkOps creates a new LinkOps instance writing exports to exportDir
func NewLinkOps(exportDir string) *LinkOps {
	if exportDir == "" {
		exportDir = "."
	}
	return &LinkOps{
		exportDir: exportDir,
		now:       time.Now,
	}
}

// browserCommand returns the command that opens rawURL in a new browser tab or window
func browserCommand(rawURL string) (*exec.Cmd, error) {
	// Allow overriding the opener for testing via env var
	if bin := os.Getenv("LINKDECK_BROWSER"); bin != "" {
		return exec.Command(bin, rawURL), nil
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL), nil
	default:
		if _, err := exec.LookPath("xdg-open"); err != nil {
			return nil, fmt.Errorf("xdg-open not found in PATH")
		}
		return exec.Command("xdg-open", rawURL), nil
	}
}

// OpenURL hands rawURL to the system browser without waiting for it
func (l *LinkOps) OpenURL(rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}
	cmd, err := browserCommand(rawURL)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	// Reap the opener in the background
	go func() { _ = cmd.Wait() }()
	return nil
}

// CopyURL writes rawURL to the system clipboard
func (l *LinkOps) CopyURL(rawURL string) error {
	if err := clipboardWrite(rawURL); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// ExportPNG writes an encoded QR image for rawURL and returns its path
func (l *LinkOps) ExportPNG(rawURL string, data []byte) (string, error) {
	if err := os.MkdirAll(l.exportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := fmt.Sprintf("linkdeck-%s-%s.png", Slug(rawURL), l.now().Format("20060102-150405"))
	path := filepath.Join(l.exportDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid link %q: %w", rawURL, err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("invalid link %q: missing scheme", rawURL)
	}
	return nil
}

var slugRE = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a URL into a short file-name-safe token
func Slug(rawURL string) string {
	s := strings.ToLower(rawURL)
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		s = strings.ToLower(u.Host + u.Path)
	}
	s = strings.Trim(slugRE.ReplaceAllString(s, "-"), "-")
	if len(s) > 40 {
		s = strings.Trim(s[:40], "-")
	}
	if s == "" {
		s = "link"
	}
	return s
}
