package upstream

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlToText strips markup from an upstream description snippet, returning
// plain text with collapsed whitespace. Plain-text input passes through
// unchanged apart from whitespace normalization.
func htmlToText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	doc.Find("script, style").Remove()

	return strings.Join(strings.Fields(doc.Text()), " ")
}
