package feed

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// feedDateLayout is the locale-independent envelope timestamp format.
const feedDateLayout = "2006-01-02 15:04"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// escapeXML escapes text placed into structured fields or attributes.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// cdata wraps free-text content in a literal-content section. The content is
// syntactically isolated and needs no character escaping.
func cdata(s string) string {
	return "<![CDATA[" + s + "]]>"
}

// stripHTMLTags removes markup from rich-text content for targets that only
// accept plain text.
func stripHTMLTags(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, ""))
}

// formatFeedDate renders the moment the document is finalized.
func formatFeedDate(t time.Time) string {
	return t.Format(feedDateLayout)
}

// formatPrice renders a price with no trailing zeros, matching the feed
// convention of "600" and "600.99" rather than "600.00".
func formatPrice(d decimal.Decimal) string {
	return d.String()
}
