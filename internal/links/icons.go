package links

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultIconWidth = 8
	maxGlyphRunes    = 4
)

// IconResolver turns an icon reference into something drawable in a terminal
type IconResolver struct {
	client *http.Client
	width  int
}

// NewIconResolver creates a resolver producing thumbnails width cells wide
func NewIconResolver(client *http.Client, width int) *IconResolver {
	if client == nil {
		client = http.DefaultClient
	}
	if width <= 0 {
		width = defaultIconWidth
	}
	return &IconResolver{client: client, width: width}
}

// Resolve returns the terminal art for ref, or "" when it cannot be shown
func (r *IconResolver) Resolve(ctx context.Context, ref, base string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if isGlyph(ref) {
		return ref
	}

	img, err := r.load(ctx, ref, base)
	if err != nil {
		log.Printf("links: icon %q omitted: %v", ref, err)
		return ""
	}
	return Thumbnail(img, r.width)
}

// isGlyph reports whether ref is short text (an emoji or symbol) rather than a path
func isGlyph(ref string) bool {
	if isRemote(ref) || strings.ContainsAny(ref, "/\\.") {
		return false
	}
	return utf8.RuneCountInString(ref) <= maxGlyphRunes
}

func (r *IconResolver) load(ctx context.Context, ref, base string) (image.Image, error) {
	var data []byte
	var err error

	switch {
	case isRemote(ref):
		data, err = fetchRemote(ctx, r.client, ref)
	case isRemote(base):
		var u *url.URL
		u, err = url.Parse(base)
		if err == nil {
			var rel *url.URL
			rel, err = url.Parse(ref)
			if err == nil {
				data, err = fetchRemote(ctx, r.client, u.ResolveReference(rel).String())
			}
		}
	default:
		p := ref
		if !filepath.IsAbs(p) && base != "" {
			p = filepath.Join(base, p)
		}
		data, err = os.ReadFile(p)
	}
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Thumbnail draws img with upper-half blocks: each cell shows two pixel rows,
// the top one as foreground and the bottom one as background.
func Thumbnail(img image.Image, width int) string {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || width <= 0 {
		return ""
	}

	// Keep the aspect ratio with two pixel rows per text row
	height := b.Dy() * width / b.Dx()
	if height < 2 {
		height = 2
	}
	if height%2 == 1 {
		height++
	}

	sample := func(x, y int) string {
		sx := b.Min.X + x*b.Dx()/width
		sy := b.Min.Y + y*b.Dy()/height
		return hexColor(img, sx, sy)
	}

	var sb strings.Builder
	for y := 0; y < height; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(sample(x, y))).
				Background(lipgloss.Color(sample(x, y+1)))
			sb.WriteString(style.Render("▀"))
		}
	}
	return sb.String()
}

func hexColor(img image.Image, x, y int) string {
	r, g, b, a := img.At(x, y).RGBA()
	if a == 0 {
		// Transparent pixels blend into a white card
		return "#ffffff"
	}
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
