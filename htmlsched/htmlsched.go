// Package htmlsched interprets the two publication HTML shapes — the MWB
// week document and the Watchtower table-of-contents/article pair — into
// schedule records (spec §4.6). It operates purely on parsed DOM trees;
// document discovery and decryption live in jwpubdoc and epubdoc.
package htmlsched

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// nbsp is the non-breaking space JW.org publication markup frequently uses
// in place of an ordinary space.
const nbsp = " "

func normalizeText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, nbsp, " "))
}

// StripRubyText removes every <rt> element from doc in place, per §4.4/§4.5
// ("prior to interpretation, all <rt> elements are stripped").
func StripRubyText(doc *goquery.Document) {
	doc.Find("rt").Remove()
}

// node wraps an *html.Node so its descendants can be queried with goquery
// without re-parsing a document.
func node(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

// nextElement returns n's next sibling that is an element node, skipping
// text and comment nodes, or nil if none.
func nextElement(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// IsMWBValid reports whether doc has the minimum shape of an MWB week
// document (spec §4.5).
func IsMWBValid(doc *goquery.Document) bool {
	if doc.Find("h1").Length() == 0 || doc.Find("h2").Length() == 0 {
		return false
	}
	return doc.Find(".pGroup").Length() > 0 || doc.Find("h3").Length() > 0
}

// IsWValid reports whether doc has the minimum shape of a Watchtower TOC or
// article document (spec §4.5).
func IsWValid(doc *goquery.Document) bool {
	return doc.Find("h3").Length() > 0
}
