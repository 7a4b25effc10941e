// Package slug derives URL-safe identifiers from free-text titles.
package slug

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// maxBaseLen bounds the slug before the suffix so the full identifier
	// stays well under Webflow's field limit.
	maxBaseLen = 80

	// fallback is used when the title normalizes to nothing
	// (empty or all-punctuation input).
	fallback = "offre"
)

// stripMarks removes combining diacritical marks after canonical
// decomposition, so "é" → "e" and "ç" → "c" without a hand-kept table.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Generator produces slugs. The clock is injectable so tests can pin the
// disambiguation suffix.
type Generator struct {
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Make builds a slug from title: normalized base plus a base-36 fragment of
// the current clock reading. The suffix lowers collision probability but the
// collection remains the final arbiter of uniqueness.
func (g *Generator) Make(title string) string {
	base := Normalize(title)
	if base == "" {
		base = fallback
	}
	if len(base) > maxBaseLen {
		base = strings.TrimRight(base[:maxBaseLen], "-")
	}
	suffix := strconv.FormatInt(g.now().UnixMilli(), 36)
	return base + "-" + suffix
}

// Normalize lowercases the input, transliterates accented characters,
// collapses every run of characters outside [a-z0-9] into a single hyphen and
// trims hyphens from both ends. The result may be empty.
func Normalize(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var b strings.Builder
	pending := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
