package feed

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no special characters", "Крем для рук", "Крем для рук"},
		{"ampersand", "Johnson & Johnson", "Johnson &amp; Johnson"},
		{"angle brackets", "a<b>c", "a&lt;b&gt;c"},
		{"quotes", `"quoted" and 'single'`, "&quot;quoted&quot; and &apos;single&apos;"},
		{"ampersand first", "&<", "&amp;&lt;"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeXML(tt.input))
		})
	}
}

func TestStripHTMLTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "Опис товару", "Опис товару"},
		{"simple tags", "<p>Опис</p>", "Опис"},
		{"nested tags", "<div><b>bold</b> text</div>", "bold text"},
		{"attributes", `<a href="https://example.com">link</a>`, "link"},
		{"surrounding whitespace", "  <p>text</p>  ", "text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripHTMLTags(tt.input))
		})
	}
}

func TestFormatFeedDate(t *testing.T) {
	generatedAt := time.Date(2025, 3, 1, 9, 5, 42, 0, time.UTC)
	assert.Equal(t, "2025-03-01 09:05", formatFeedDate(generatedAt))
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"integer price", "600", "600"},
		{"trailing zeros trimmed", "600.00", "600"},
		{"dot99 kept", "600.99", "600.99"},
		{"one decimal", "10.50", "10.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatPrice(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestCdata(t *testing.T) {
	assert.Equal(t, "<![CDATA[<p>Опис & деталі</p>]]>", cdata("<p>Опис & деталі</p>"))
}
