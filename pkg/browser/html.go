package browser

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/net/html"

	"github.com/entrhq/webdrive/pkg/driver"
	"github.com/entrhq/webdrive/pkg/selector"
)

// PageHTML returns the innerHTML of the page's body tag. A page with no
// body yields an empty string without error.
func (b *Browser) PageHTML(ctx context.Context) (string, error) {
	body, err := selector.First(ctx, b.session, selector.Query{TagName: "body"})
	if errors.Is(err, driver.ErrNoSuchElement) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return body.GetAttribute(ctx, "innerHTML")
}

// PageText returns the page's readable text: body markup with script,
// style and noscript subtrees removed, text runs whitespace-collapsed,
// and block elements separated by newlines.
func (b *Browser) PageText(ctx context.Context) (string, error) {
	raw, err := b.PageHTML(ctx)
	if err != nil || raw == "" {
		return "", err
	}
	return extractText(raw)
}

func extractText(raw string) (string, error) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return "", err
	}

	var lines []string
	var line strings.Builder

	flush := func() {
		if text := strings.TrimSpace(line.String()); text != "" {
			lines = append(lines, text)
		}
		line.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
				if line.Len() > 0 {
					line.WriteString(" ")
				}
				line.WriteString(text)
			}
			return
		case html.ElementNode:
			if skippedTextElement(n.Data) {
				return
			}
		case html.CommentNode:
			return
		}
		block := n.Type == html.ElementNode && blockTextElement(n.Data)
		if block {
			flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			flush()
		}
	}
	walk(doc)
	flush()

	return strings.Join(lines, "\n"), nil
}

// skippedTextElement names subtrees that carry no readable text.
func skippedTextElement(tag string) bool {
	switch strings.ToLower(tag) {
	case "script", "style", "noscript", "template", "iframe":
		return true
	}
	return false
}

// blockTextElement names elements whose text should start a new line.
func blockTextElement(tag string) bool {
	switch strings.ToLower(tag) {
	case "div", "p", "section", "article", "header", "footer", "nav",
		"main", "aside", "h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "table", "tr", "td", "th", "form",
		"blockquote", "pre", "br":
		return true
	}
	return false
}
