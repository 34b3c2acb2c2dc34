package feed

import "strings"

// Paper is one candidate document from the feed.
type Paper struct {
	ID     string
	Title  string
	AbsURL string
}

// PDFURL rewrites the abstract page locator into the document locator.
func (p Paper) PDFURL() string {
	return strings.Replace(p.AbsURL, "/abs/", "/pdf/", 1) + ".pdf"
}
