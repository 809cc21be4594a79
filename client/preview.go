package client

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"resume-folio/dto"
)

// ComposePreview builds one standalone preview document from the three
// blobs: stylesheet inlined into <head>, markup as body content, script
// appended at the end of <body>. Models return anything from a bare
// fragment to a full document; parsing with html.Parse normalizes both
// since it always produces a complete html/head/body tree.
//
// Pure recomposition: no network, deterministic for fixed inputs.
func ComposePreview(site dto.SiteCode) string {
	doc, err := html.Parse(strings.NewReader(site.HTMLCode))
	if err != nil {
		// html.Parse only fails on reader errors, which strings.Reader
		// never produces; fall back to a bare skeleton anyway
		return "<!DOCTYPE html>\n<html><head><style>" + site.CSSCode +
			"</style></head><body><script>" + site.JSCode + "</script></body></html>"
	}

	if head := findElement(doc, atom.Head); head != nil {
		style := &html.Node{Type: html.ElementNode, Data: "style", DataAtom: atom.Style}
		style.AppendChild(&html.Node{Type: html.TextNode, Data: site.CSSCode})
		head.AppendChild(style)
	}
	if body := findElement(doc, atom.Body); body != nil {
		script := &html.Node{Type: html.ElementNode, Data: "script", DataAtom: atom.Script}
		script.AppendChild(&html.Node{Type: html.TextNode, Data: site.JSCode})
		body.AppendChild(script)
	}

	var b strings.Builder
	if !hasDoctype(doc) {
		b.WriteString("<!DOCTYPE html>")
	}
	if err := html.Render(&b, doc); err != nil {
		return b.String()
	}
	return b.String()
}

func findElement(n *html.Node, target atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == target {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, target); found != nil {
			return found
		}
	}
	return nil
}

func hasDoctype(doc *html.Node) bool {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.DoctypeNode {
			return true
		}
	}
	return false
}
