// ABOUTME: Text sanitization for provider-supplied strings
// ABOUTME: Strips markup so catalog metadata stays plain text

package text

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML removes any markup from a provider-supplied string and collapses
// runs of whitespace. Catalog APIs occasionally embed tags in term and
// uploader fields; attribution output must stay plain text.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<>&") {
		return collapseWhitespace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseWhitespace(s)
	}

	return collapseWhitespace(doc.Text())
}

// collapseWhitespace trims and squeezes internal whitespace runs to one space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
