package mapper

import (
	"strings"

	"golang.org/x/net/html"
)

// Elements that end a block of text when stripping rich-text markup.
var blockElements = map[string]bool{
	"p":   true,
	"div": true,
	"li":  true,
	"h1":  true,
	"h2":  true,
	"h3":  true,
	"h4":  true,
	"h5":  true,
	"h6":  true,
}

// plainToRich wraps plain text in the minimal rich-text markup Webflow
// accepts: one <p> per blank-line-separated paragraph, single newlines as
// <br>. Empty input stays empty.
func plainToRich(text string) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return ""
	}

	var b strings.Builder
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(html.EscapeString(para), "\n", "<br>"))
		b.WriteString("</p>")
	}
	return b.String()
}

// richToPlain strips rich-text markup down to its text content, turning block
// boundaries into blank lines and <br> into newlines. Input without markup is
// returned as-is.
func richToPlain(markup string) string {
	if markup == "" || !strings.ContainsRune(markup, '<') {
		return markup
	}

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return markup
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			b.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			b.WriteString("\n\n")
		}
	}
	walk(doc)

	return strings.TrimSpace(b.String())
}
