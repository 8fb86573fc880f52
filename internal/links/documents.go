package links

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"

	"linkdeck/internal/domain"
)

// parseMarkdown turns every link of a Markdown document into a record.
// An image directly before a link becomes its icon.
func parseMarkdown(source []byte) []domain.Link {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var out []domain.Link
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Link:
			out = append(out, domain.Link{
				URL:   string(n.Destination),
				Title: inlineText(n, source),
				Icon:  iconBefore(n, source),
			})
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			u := string(n.URL(source))
			out = append(out, domain.Link{URL: u, Title: u})
		}
		return ast.WalkContinue, nil
	})
	return out
}

func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
			if c.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.Image:
			continue
		default:
			b.WriteString(inlineText(c, source))
		}
	}
	return strings.TrimSpace(b.String())
}

func iconBefore(n ast.Node, source []byte) string {
	prev := n.PreviousSibling()
	if t, ok := prev.(*ast.Text); ok && len(bytes.TrimSpace(t.Segment.Value(source))) == 0 {
		prev = t.PreviousSibling()
	}
	if img, ok := prev.(*ast.Image); ok {
		return string(img.Destination)
	}
	return ""
}

// parseHTML turns the anchors of an HTML page into records. The icon comes
// from a data-icon attribute or the first image inside the anchor.
func parseHTML(source []byte) ([]domain.Link, error) {
	doc, err := html.Parse(bytes.NewReader(source))
	if err != nil {
		return nil, err
	}

	var out []domain.Link
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			href := attr(n, "href")
			if href != "" && !strings.HasPrefix(href, "#") {
				title := strings.Join(strings.Fields(textContent(n)), " ")
				if title == "" {
					title = attr(n, "title")
				}
				icon := attr(n, "data-icon")
				if icon == "" {
					if img := findElement(n, "img"); img != nil {
						icon = attr(img, "src")
					}
				}
				out = append(out, domain.Link{URL: href, Title: title, Icon: icon})
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func findElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
		b.WriteByte(' ')
	}
	return b.String()
}
