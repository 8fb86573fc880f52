//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// fixtureLink is one entry of a links file
type fixtureLink struct {
	URL   string `json:"url,omitempty"`
	Title string `json:"title,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// CreateTestWorkspace creates a temporary directory for the deck, config and log
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteLinks writes links as a JSON deck into the workspace
func (tf *TUITestFramework) WriteLinks(name string, links []fixtureLink) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// SampleLinks returns n distinct links
func SampleLinks(n int) []fixtureLink {
	links := make([]fixtureLink, n)
	for i := range links {
		links[i] = fixtureLink{
			URL:   fmt.Sprintf("https://example.com/card-%d", i+1),
			Title: fmt.Sprintf("Card %d", i+1),
		}
	}
	return links
}

// StartDeck starts the app on a fresh workspace holding links
func (tf *TUITestFramework) StartDeck(links []fixtureLink) error {
	workspace, err := tf.CreateTestWorkspace()
	if err != nil {
		return err
	}
	path, err := tf.WriteLinks("links.json", links)
	if err != nil {
		return err
	}
	return tf.StartApp(
		"-links", path,
		"-config", filepath.Join(workspace, "config.toml"),
		"-log", filepath.Join(workspace, "linkdeck.log"),
	)
}
